package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestMondayOf(t *testing.T) {
	// 2024-06-03 es lunes; toda la semana debe mapear a él
	lunes := fecha(2024, time.June, 3, 0)

	assert.Equal(t, lunes, MondayOf(fecha(2024, time.June, 3, 9)), "el propio lunes")
	assert.Equal(t, lunes, MondayOf(fecha(2024, time.June, 5, 14)), "miércoles")
	assert.Equal(t, lunes, MondayOf(fecha(2024, time.June, 8, 23)), "sábado")
	assert.Equal(t, lunes, MondayOf(fecha(2024, time.June, 9, 1)), "domingo pertenece a la semana anterior")

	// el lunes siguiente abre otra semana
	assert.Equal(t, fecha(2024, time.June, 10, 0), MondayOf(fecha(2024, time.June, 10, 0)))
}

func TestMondayOfCruzaMes(t *testing.T) {
	// 2024-08-01 es jueves; su lunes es 29 de julio
	assert.Equal(t, fecha(2024, time.July, 29, 0), MondayOf(fecha(2024, time.August, 1, 12)))
}

func TestWeekIDSinPadding(t *testing.T) {
	// formato legado: sin ceros a la izquierda
	assert.Equal(t, "2024-6-3", WeekID(fecha(2024, time.June, 6, 13)))
	assert.Equal(t, "2026-1-5", WeekID(fecha(2026, time.January, 7, 8)))
	assert.Equal(t, "2024-12-30", WeekID(fecha(2025, time.January, 1, 0)), "semana que cruza el año")
}

func TestWeekIDMismaSemanaMismaClave(t *testing.T) {
	ids := map[string]bool{}
	for d := 3; d <= 9; d++ {
		ids[WeekID(fecha(2024, time.June, d, 12))] = true
	}
	assert.Len(t, ids, 1, "los 7 días de la semana comparten week_id")
	assert.True(t, ids["2024-6-3"])
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Lunes", DayName(fecha(2024, time.June, 3, 10)))
	assert.Equal(t, "Miércoles", DayName(fecha(2024, time.June, 5, 10)))
	assert.Equal(t, "Domingo", DayName(fecha(2024, time.June, 9, 10)))
}

func TestWeekRange(t *testing.T) {
	assert.Equal(t,
		"Semana del Lunes 3 de junio al Domingo 9 de junio",
		WeekRange(fecha(2024, time.June, 6, 15)))

	// cruce de mes en la etiqueta
	assert.Equal(t,
		"Semana del Lunes 29 de julio al Domingo 4 de agosto",
		WeekRange(fecha(2024, time.August, 1, 15)))
}

func TestTruncarFecha(t *testing.T) {
	tr := TruncarFecha(fecha(2024, time.June, 6, 23))
	assert.Equal(t, fecha(2024, time.June, 6, 0), tr)
}
