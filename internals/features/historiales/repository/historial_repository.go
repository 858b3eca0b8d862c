package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comedores_backend/internals/features/historiales/dto"
	"comedores_backend/internals/features/historiales/model"
	helper "comedores_backend/internals/helpers"
)

// HistorialRepository abstrae el almacenamiento del archivador.
type HistorialRepository interface {
	ListComedorIDs(ctx context.Context) ([]string, error)
	// TotalesSemana agrega el log de la semana por empleado.
	TotalesSemana(ctx context.Context, comedorID, weekID string) ([]dto.EmpleadoTotal, error)
	// CrearHistorial inserta el resumen y sus detalles en una transacción.
	// Si ya existe un historial para (comedor, semana) devuelve
	// helper.ErrConflict sin escribir nada.
	CrearHistorial(ctx context.Context, h *model.ConsumoHistorialModel, detalles []model.ConsumoHistorialDetalleModel) error
	ListHistoriales(ctx context.Context, comedorID string) ([]model.ConsumoHistorialModel, error)
	ListDetalles(ctx context.Context, historyID uuid.UUID) ([]dto.DetalleRow, error)
}

type gormHistorialRepository struct {
	db *gorm.DB
}

func NewHistorialRepository(db *gorm.DB) HistorialRepository {
	return &gormHistorialRepository{db: db}
}

func (r *gormHistorialRepository) ListComedorIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("comedores").Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *gormHistorialRepository) TotalesSemana(ctx context.Context, comedorID, weekID string) ([]dto.EmpleadoTotal, error) {
	var totales []dto.EmpleadoTotal
	err := r.db.WithContext(ctx).
		Table("consumption_logs").
		Select("employee_id, SUM(consumption_count) AS total").
		Where("comedor_id = ? AND week_id = ?", comedorID, weekID).
		Group("employee_id").
		Order("employee_id").
		Scan(&totales).Error
	return totales, err
}

func (r *gormHistorialRepository) CrearHistorial(ctx context.Context, h *model.ConsumoHistorialModel, detalles []model.ConsumoHistorialDetalleModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// el unique (comedor_id, week_id) es la señal de "ya archivado":
		// sin chequeo previo de existencia, el insert decide.
		if err := tx.Create(h).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return fmt.Errorf("%w: historial %s/%s", helper.ErrConflict, h.ComedorID, h.WeekID)
			}
			return err
		}
		if len(detalles) == 0 {
			return nil
		}
		for i := range detalles {
			detalles[i].HistoryID = h.ID
		}
		return tx.CreateInBatches(detalles, 100).Error
	})
}

func (r *gormHistorialRepository) ListHistoriales(ctx context.Context, comedorID string) ([]model.ConsumoHistorialModel, error) {
	tx := r.db.WithContext(ctx).Model(&model.ConsumoHistorialModel{})
	if comedorID != "" {
		tx = tx.Where("comedor_id = ?", comedorID)
	}
	var historiales []model.ConsumoHistorialModel
	err := tx.Order("created_at DESC").Find(&historiales).Error
	return historiales, err
}

func (r *gormHistorialRepository) ListDetalles(ctx context.Context, historyID uuid.UUID) ([]dto.DetalleRow, error) {
	var rows []dto.DetalleRow
	err := r.db.WithContext(ctx).
		Table("consumption_history_details").
		Select(`consumption_history_details.employee_id,
			empleados.name AS employee_name,
			empleados.number,
			consumption_history_details.count`).
		Joins("LEFT JOIN empleados ON consumption_history_details.employee_id = empleados.internal_id").
		Where("consumption_history_details.history_id = ?", historyID).
		Order("empleados.name").
		Scan(&rows).Error
	return rows, err
}
