package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"comedores_backend/internals/features/consumos/dto"
	"comedores_backend/internals/features/consumos/model"
	"comedores_backend/internals/features/consumos/repository"
	"comedores_backend/internals/features/eventos/broadcaster"
	helper "comedores_backend/internals/helpers"
)

// EventoSink recibe la notificación de cada registro. La implementación real
// persiste y reparte a dashboards; en tests se sustituye por un stub.
type EventoSink interface {
	Publicar(e broadcaster.EventoConsumo)
}

// ConsumoService implementa el registrador y el libro semanal.
type ConsumoService struct {
	Repo    repository.ConsumoRepository
	Eventos EventoSink
}

func NewConsumoService(repo repository.ConsumoRepository, eventos EventoSink) *ConsumoService {
	return &ConsumoService{Repo: repo, Eventos: eventos}
}

// Registrar aplica la regla de un-consumo-por-empleado-por-día: crea la fila
// con count=1 o incrementa la existente (upsert atómico) y actualiza
// last_active_date del empleado. La notificación a dashboards es
// fire-and-forget: nunca bloquea ni hace fallar el registro.
func (s *ConsumoService) Registrar(ctx context.Context, empleadoID, comedorID string, fecha time.Time) (*dto.RegistrarConsumoResult, error) {
	if empleadoID == "" || comedorID == "" {
		return nil, fmt.Errorf("%w: employee_id y comedor_id son obligatorios", helper.ErrValidation)
	}
	fecha = TruncarFecha(fecha)

	empleado, err := s.Repo.FindEmpleado(ctx, empleadoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: empleado %s", helper.ErrNotFound, empleadoID)
		}
		return nil, err
	}
	if empleado.ComedorID != comedorID {
		return nil, fmt.Errorf("%w: el empleado %s no pertenece al comedor %s",
			helper.ErrInvalidReference, empleadoID, comedorID)
	}

	entry := &model.ConsumoLogModel{
		EmployeeID:       empleadoID,
		ComedorID:        comedorID,
		ConsumptionDate:  fecha,
		WeekID:           WeekID(fecha),
		DayName:          DayName(fecha),
		ConsumptionCount: 1,
	}
	count, err := s.Repo.UpsertConsumo(ctx, entry)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.TouchLastActive(ctx, empleadoID, fecha); err != nil {
		return nil, err
	}

	s.notificar(empleado.Name, empleado.Type, empleadoID, comedorID)

	mensaje := "Consumo registrado"
	if count > 1 {
		mensaje = fmt.Sprintf("Consumo registrado (%d del día)", count)
	}
	return &dto.RegistrarConsumoResult{
		EmployeeID:       empleadoID,
		ComedorID:        comedorID,
		ConsumptionDate:  fecha.Format("2006-01-02"),
		WeekID:           entry.WeekID,
		DayName:          entry.DayName,
		ConsumptionCount: count,
		Mensaje:          mensaje,
	}, nil
}

func (s *ConsumoService) notificar(nombre string, tipo *string, empleadoID, comedorID string) {
	if s.Eventos == nil {
		return
	}
	e := broadcaster.EventoConsumo{
		EmployeeID:   empleadoID,
		EmployeeName: nombre,
		ComedorID:    comedorID,
		Timestamp:    time.Now(),
	}
	if tipo != nil {
		e.EmployeeType = *tipo
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[EVENTOS] panic publicando evento: %v", r)
			}
		}()
		s.Eventos.Publicar(e)
	}()
}

// SemanaActual devuelve los consumos de la semana en curso del comedor,
// con nombre y número del empleado, ordenados por nombre y fecha.
func (s *ConsumoService) SemanaActual(ctx context.Context, comedorID string, hoy time.Time) ([]dto.ConsumoSemanaRow, string, error) {
	weekID := WeekID(hoy)
	rows, err := s.Repo.ConsumosSemana(ctx, comedorID, weekID)
	return rows, weekID, err
}

// LimpiarLog borra los consumos de la semana en curso del comedor (acción
// administrativa, pensada para después de archivar).
func (s *ConsumoService) LimpiarLog(ctx context.Context, comedorID string, hoy time.Time) (int64, string, error) {
	weekID := WeekID(hoy)
	n, err := s.Repo.LimpiarSemana(ctx, comedorID, weekID)
	return n, weekID, err
}

// ResumenSemana devuelve los totales por día de la semana en curso.
func (s *ConsumoService) ResumenSemana(ctx context.Context, comedorID string, hoy time.Time) ([]dto.ResumenSemanaRow, string, error) {
	weekID := WeekID(hoy)
	rows, err := s.Repo.ResumenSemana(ctx, comedorID, weekID)
	return rows, weekID, err
}
