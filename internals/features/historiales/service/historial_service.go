package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"comedores_backend/internals/features/historiales/dto"
	"comedores_backend/internals/features/historiales/model"
	"comedores_backend/internals/features/historiales/repository"
	helper "comedores_backend/internals/helpers"
)

// HistorialService implementa el archivador semanal idempotente.
type HistorialService struct {
	Repo repository.HistorialRepository
}

func NewHistorialService(repo repository.HistorialRepository) *HistorialService {
	return &HistorialService{Repo: repo}
}

// ArchivarSemana congela la semana indicada del comedor en
// consumption_histories + details. Reinvocarlo para una semana ya archivada
// devuelve AlreadyArchived sin duplicar filas. Una semana sin consumos
// produce un historial con total 0 y sin detalles.
func (s *HistorialService) ArchivarSemana(ctx context.Context, comedorID, weekID string) (*dto.ArchivoResultado, error) {
	if comedorID == "" || weekID == "" {
		return nil, fmt.Errorf("%w: comedor_id y week_id son obligatorios", helper.ErrValidation)
	}

	totales, err := s.Repo.TotalesSemana(ctx, comedorID, weekID)
	if err != nil {
		return nil, err
	}

	total := 0
	detalles := make([]model.ConsumoHistorialDetalleModel, 0, len(totales))
	for _, t := range totales {
		total += t.Total
		detalles = append(detalles, model.ConsumoHistorialDetalleModel{
			EmployeeID: t.EmployeeID,
			Count:      t.Total,
		})
	}

	h := &model.ConsumoHistorialModel{
		ComedorID:  comedorID,
		WeekID:     weekID,
		TotalCount: total,
	}
	if err := s.Repo.CrearHistorial(ctx, h, detalles); err != nil {
		if errors.Is(err, helper.ErrConflict) {
			return &dto.ArchivoResultado{
				ComedorID:       comedorID,
				WeekID:          weekID,
				Success:         true,
				AlreadyArchived: true,
				Mensaje:         "La semana ya estaba archivada",
			}, nil
		}
		return nil, err
	}

	return &dto.ArchivoResultado{
		ComedorID:  comedorID,
		WeekID:     weekID,
		Success:    true,
		HistoryID:  &h.ID,
		TotalCount: total,
		Detalles:   len(detalles),
		Mensaje:    fmt.Sprintf("Semana archivada: %d consumos de %d empleados", total, len(detalles)),
	}, nil
}

// ArchivarTodos recorre todos los comedores y archiva la semana indicada en
// cada uno. El fallo de un comedor no aborta el resto: se aísla y se anota
// en el resultado (mismo contrato que el job nocturno legado).
func (s *HistorialService) ArchivarTodos(ctx context.Context, weekID string) ([]dto.ArchivoResultado, error) {
	comedores, err := s.Repo.ListComedorIDs(ctx)
	if err != nil {
		return nil, err
	}

	resultados := make([]dto.ArchivoResultado, 0, len(comedores))
	for _, comedorID := range comedores {
		r, err := s.ArchivarSemana(ctx, comedorID, weekID)
		if err != nil {
			log.Printf("[HISTORIAL] error archivando comedor %s: %v", comedorID, err)
			resultados = append(resultados, dto.ArchivoResultado{
				ComedorID: comedorID,
				WeekID:    weekID,
				Success:   false,
				Mensaje:   "Error archivando la semana",
				Error:     err.Error(),
			})
			continue
		}
		resultados = append(resultados, *r)
	}
	return resultados, nil
}
