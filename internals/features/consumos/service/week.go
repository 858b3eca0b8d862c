package service

import (
	"fmt"
	"time"
)

// Nombres en español, índice = time.Weekday (0 = domingo).
var diasSemana = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var mesesAnio = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MondayOf devuelve el lunes (a medianoche local) de la semana que contiene t.
func MondayOf(t time.Time) time.Time {
	day := int(t.Weekday()) // 0 = domingo
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	monday := t.AddDate(0, 0, offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekID devuelve la clave canónica de la semana: la fecha del lunes como
// "{año}-{mes}-{día}" SIN cero a la izquierda (p.ej. "2024-6-3"). El formato
// sin padding viene del sistema legado y los week_id almacenados dependen de
// él, así que no debe "corregirse".
func WeekID(t time.Time) string {
	monday := MondayOf(t)
	return fmt.Sprintf("%d-%d-%d", monday.Year(), int(monday.Month()), monday.Day())
}

// DayName devuelve el nombre del día en español ("Lunes", "Martes", ...).
func DayName(t time.Time) string {
	return diasSemana[int(t.Weekday())]
}

// WeekRange devuelve la etiqueta humana de la semana de t:
// "Semana del Lunes 3 de junio al Domingo 9 de junio".
func WeekRange(t time.Time) string {
	monday := MondayOf(t)
	sunday := monday.AddDate(0, 0, 6)
	return fmt.Sprintf("Semana del Lunes %d de %s al Domingo %d de %s",
		monday.Day(), mesesAnio[int(monday.Month())-1],
		sunday.Day(), mesesAnio[int(sunday.Month())-1])
}

// TruncarFecha normaliza un instante a su fecha (medianoche local).
func TruncarFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
