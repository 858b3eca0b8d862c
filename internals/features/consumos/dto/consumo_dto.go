package dto

import (
	"strings"
	"time"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegistrarConsumoRequest — la fecha es opcional (default: hoy), formato
// YYYY-MM-DD como lo manda la tablet.
type RegistrarConsumoRequest struct {
	EmployeeID      string `json:"employee_id" validate:"required,min=1,max=50"`
	ComedorID       string `json:"comedor_id" validate:"required,min=1,max=50"`
	ConsumptionDate string `json:"consumption_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *RegistrarConsumoRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.ComedorID = strings.TrimSpace(r.ComedorID)
	r.ConsumptionDate = strings.TrimSpace(r.ConsumptionDate)
}

// Fecha resuelve la fecha pedida o la fecha de hoy (calendario local).
func (r *RegistrarConsumoRequest) Fecha(now time.Time) (time.Time, error) {
	if r.ConsumptionDate == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", r.ConsumptionDate, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

/* =======================================================
   RESULT / RESPONSE DTOs
   ======================================================= */

// RegistrarConsumoResult — resultado de sp_registrar_consumo
type RegistrarConsumoResult struct {
	EmployeeID       string `json:"employee_id"`
	ComedorID        string `json:"comedor_id"`
	ConsumptionDate  string `json:"consumption_date"`
	WeekID           string `json:"week_id"`
	DayName          string `json:"day_name"`
	ConsumptionCount int    `json:"consumption_count"`
	Mensaje          string `json:"mensaje"`
}

// ConsumoSemanaRow — una fila de sp_consumos_semana_actual (log + empleado)
type ConsumoSemanaRow struct {
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	EmployeeNumber   *string   `json:"employee_number,omitempty"`
	DayName          string    `json:"day_name"`
	ConsumptionCount int       `json:"consumption_count"`
	ConsumptionDate  time.Time `json:"consumption_date"`
	WeekID           string    `json:"week_id"`
}

// ResumenSemanaRow — una fila de v_consumos_semana (totales por día)
type ResumenSemanaRow struct {
	WeekID          string    `json:"week_id"`
	DayName         string    `json:"day_name"`
	ConsumptionDate time.Time `json:"consumption_date"`
	TotalConsumos   int64     `json:"total_consumos"`
	TotalEmpleados  int64     `json:"total_empleados"`
}
