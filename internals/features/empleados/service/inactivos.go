package service

import (
	"sort"
	"time"
)

// UmbralInactividadDefault es la regla de negocio heredada: un empleado se
// considera inactivo cuando lleva MÁS de 21 días sin registrar consumo.
const UmbralInactividadDefault = 21

// EmpleadoActividad es la proyección mínima que necesita el clasificador.
type EmpleadoActividad struct {
	InternalID     string
	Nombre         string
	Numero         *string
	Tipo           *string
	ComedorID      string
	ComedorNombre  string
	LastActiveDate *time.Time
}

// EmpleadoInactivo es un empleado clasificado, con los días calculados.
type EmpleadoInactivo struct {
	EmpleadoActividad
	DiasInactivo int
}

// ClasificarInactivos devuelve los empleados cuyo last_active_date es
// estrictamente anterior al umbral, ordenados por días inactivos de mayor a
// menor. Un last_active_date nulo significa "nunca registró", no "inactivo",
// y queda fuera del resultado.
func ClasificarInactivos(empleados []EmpleadoActividad, hoy time.Time, umbralDias int) []EmpleadoInactivo {
	if umbralDias <= 0 {
		umbralDias = UmbralInactividadDefault
	}
	hoyDia := truncarADia(hoy)

	out := make([]EmpleadoInactivo, 0)
	for _, e := range empleados {
		if e.LastActiveDate == nil {
			continue
		}
		dias := int(hoyDia.Sub(truncarADia(*e.LastActiveDate)).Hours() / 24)
		if dias > umbralDias {
			out = append(out, EmpleadoInactivo{EmpleadoActividad: e, DiasInactivo: dias})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DiasInactivo > out[j].DiasInactivo
	})
	return out
}

func truncarADia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
