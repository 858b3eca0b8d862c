package dto

import (
	"github.com/google/uuid"
)

// EmpleadoTotal — total semanal de un empleado, agregado desde el log.
type EmpleadoTotal struct {
	EmployeeID string `json:"employee_id"`
	Total      int    `json:"total"`
}

// ArchivoResultado — resultado por comedor de un intento de archivado.
// AlreadyArchived con Success=true: reinvocar no es un error, es un no-op.
type ArchivoResultado struct {
	ComedorID       string     `json:"comedor_id"`
	WeekID          string     `json:"week_id"`
	Success         bool       `json:"success"`
	AlreadyArchived bool       `json:"already_archived"`
	HistoryID       *uuid.UUID `json:"history_id,omitempty"`
	TotalCount      int        `json:"total_count"`
	Detalles        int        `json:"detalles"`
	Mensaje         string     `json:"mensaje"`
	Error           string     `json:"error,omitempty"`
}

// DetalleRow — detalle con el nombre del empleado ya resuelto.
type DetalleRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Number       *string `json:"employee_number,omitempty"`
	Count        int     `json:"count"`
}
