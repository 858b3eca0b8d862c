package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comedores_backend/internals/features/consumos/dto"
	"comedores_backend/internals/features/consumos/model"
	empModel "comedores_backend/internals/features/empleados/model"
)

// ConsumoRepository abstrae el almacenamiento del registrador y del libro
// semanal; los tests lo sustituyen por una implementación en memoria.
type ConsumoRepository interface {
	FindEmpleado(ctx context.Context, empleadoID string) (*empModel.EmpleadoModel, error)
	// UpsertConsumo inserta la fila con count=1 o incrementa la existente,
	// de forma atómica respecto de registros concurrentes. Devuelve el
	// contador resultante.
	UpsertConsumo(ctx context.Context, entry *model.ConsumoLogModel) (int, error)
	TouchLastActive(ctx context.Context, empleadoID string, fecha time.Time) error
	ConsumosSemana(ctx context.Context, comedorID, weekID string) ([]dto.ConsumoSemanaRow, error)
	LimpiarSemana(ctx context.Context, comedorID, weekID string) (int64, error)
	ResumenSemana(ctx context.Context, comedorID, weekID string) ([]dto.ResumenSemanaRow, error)
}

type gormConsumoRepository struct {
	db *gorm.DB
}

func NewConsumoRepository(db *gorm.DB) ConsumoRepository {
	return &gormConsumoRepository{db: db}
}

func (r *gormConsumoRepository) FindEmpleado(ctx context.Context, empleadoID string) (*empModel.EmpleadoModel, error) {
	var empleado empModel.EmpleadoModel
	if err := r.db.WithContext(ctx).First(&empleado, "internal_id = ?", empleadoID).Error; err != nil {
		return nil, err
	}
	return &empleado, nil
}

func (r *gormConsumoRepository) UpsertConsumo(ctx context.Context, entry *model.ConsumoLogModel) (int, error) {
	// INSERT ... ON CONFLICT (employee_id, comedor_id, consumption_date)
	// DO UPDATE SET consumption_count = consumption_count + 1
	// RETURNING consumption_count — una sola sentencia, sin carrera.
	err := r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "comedor_id"},
				{Name: "consumption_date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"consumption_count": gorm.Expr("consumption_logs.consumption_count + 1"),
				"updated_at":        time.Now(),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "consumption_count"}}},
	).Create(entry).Error
	if err != nil {
		return 0, err
	}
	return entry.ConsumptionCount, nil
}

func (r *gormConsumoRepository) TouchLastActive(ctx context.Context, empleadoID string, fecha time.Time) error {
	return r.db.WithContext(ctx).
		Model(&empModel.EmpleadoModel{}).
		Where("internal_id = ?", empleadoID).
		Update("last_active_date", fecha).Error
}

func (r *gormConsumoRepository) ConsumosSemana(ctx context.Context, comedorID, weekID string) ([]dto.ConsumoSemanaRow, error) {
	var rows []dto.ConsumoSemanaRow
	err := r.db.WithContext(ctx).
		Table("consumption_logs").
		Select(`consumption_logs.employee_id,
			empleados.name AS employee_name,
			empleados.number AS employee_number,
			consumption_logs.day_name,
			consumption_logs.consumption_count,
			consumption_logs.consumption_date,
			consumption_logs.week_id`).
		Joins("JOIN empleados ON consumption_logs.employee_id = empleados.internal_id").
		Where("consumption_logs.comedor_id = ? AND consumption_logs.week_id = ?", comedorID, weekID).
		Order("empleados.name, consumption_logs.consumption_date").
		Scan(&rows).Error
	return rows, err
}

func (r *gormConsumoRepository) LimpiarSemana(ctx context.Context, comedorID, weekID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("comedor_id = ? AND week_id = ?", comedorID, weekID).
		Delete(&model.ConsumoLogModel{})
	return res.RowsAffected, res.Error
}

func (r *gormConsumoRepository) ResumenSemana(ctx context.Context, comedorID, weekID string) ([]dto.ResumenSemanaRow, error) {
	var rows []dto.ResumenSemanaRow
	err := r.db.WithContext(ctx).
		Table("consumption_logs").
		Select(`week_id,
			day_name,
			consumption_date,
			SUM(consumption_count) AS total_consumos,
			COUNT(DISTINCT employee_id) AS total_empleados`).
		Where("comedor_id = ? AND week_id = ?", comedorID, weekID).
		Group("week_id, day_name, consumption_date").
		Order("consumption_date").
		Scan(&rows).Error
	return rows, err
}
