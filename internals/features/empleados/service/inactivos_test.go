package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hace(dias int, desde time.Time) *time.Time {
	t := desde.AddDate(0, 0, -dias)
	return &t
}

func TestClasificarInactivosUmbralEstricto(t *testing.T) {
	hoy := time.Date(2024, time.June, 28, 10, 0, 0, 0, time.Local)
	empleados := []EmpleadoActividad{
		{InternalID: "E-22", Nombre: "Apenas fuera", LastActiveDate: hace(22, hoy)},
		{InternalID: "E-21", Nombre: "Justo en el límite", LastActiveDate: hace(21, hoy)},
		{InternalID: "E-5", Nombre: "Activo", LastActiveDate: hace(5, hoy)},
	}

	out := ClasificarInactivos(empleados, hoy, UmbralInactividadDefault)

	// 21 días exactos NO es inactivo: la regla es estrictamente mayor
	require.Len(t, out, 1)
	assert.Equal(t, "E-22", out[0].InternalID)
	assert.Equal(t, 22, out[0].DiasInactivo)
}

func TestClasificarInactivosIgnoraNulos(t *testing.T) {
	hoy := time.Date(2024, time.June, 28, 10, 0, 0, 0, time.Local)
	empleados := []EmpleadoActividad{
		{InternalID: "E-NUNCA", Nombre: "Sin registros", LastActiveDate: nil},
		{InternalID: "E-90", Nombre: "Muy inactivo", LastActiveDate: hace(90, hoy)},
	}

	out := ClasificarInactivos(empleados, hoy, UmbralInactividadDefault)

	require.Len(t, out, 1, "nunca-registró no cuenta como inactivo")
	assert.Equal(t, "E-90", out[0].InternalID)
}

func TestClasificarInactivosOrdenDescendente(t *testing.T) {
	hoy := time.Date(2024, time.June, 28, 10, 0, 0, 0, time.Local)
	empleados := []EmpleadoActividad{
		{InternalID: "E-30", LastActiveDate: hace(30, hoy)},
		{InternalID: "E-60", LastActiveDate: hace(60, hoy)},
		{InternalID: "E-45", LastActiveDate: hace(45, hoy)},
	}

	out := ClasificarInactivos(empleados, hoy, UmbralInactividadDefault)

	require.Len(t, out, 3)
	assert.Equal(t, []int{60, 45, 30}, []int{out[0].DiasInactivo, out[1].DiasInactivo, out[2].DiasInactivo})
}

func TestClasificarInactivosUmbralPorDefecto(t *testing.T) {
	hoy := time.Date(2024, time.June, 28, 10, 0, 0, 0, time.Local)
	empleados := []EmpleadoActividad{
		{InternalID: "E-22", LastActiveDate: hace(22, hoy)},
	}

	// umbral <= 0 cae al valor de negocio (21)
	out := ClasificarInactivos(empleados, hoy, 0)
	require.Len(t, out, 1)
	assert.Equal(t, 22, out[0].DiasInactivo)
}

func TestClasificarInactivosDiasCalculadosSobreFechas(t *testing.T) {
	// la hora del día no altera el conteo: se truncan ambos lados
	hoy := time.Date(2024, time.June, 28, 23, 59, 0, 0, time.Local)
	ultima := time.Date(2024, time.June, 3, 0, 5, 0, 0, time.Local)
	empleados := []EmpleadoActividad{
		{InternalID: "E-1", LastActiveDate: &ultima},
	}

	out := ClasificarInactivos(empleados, hoy, UmbralInactividadDefault)
	require.Len(t, out, 1)
	assert.Equal(t, 25, out[0].DiasInactivo)
}
