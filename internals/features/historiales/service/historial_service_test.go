package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comedores_backend/internals/features/historiales/dto"
	"comedores_backend/internals/features/historiales/model"
	helper "comedores_backend/internals/helpers"
)

// repo en memoria que replica el unique (comedor_id, week_id).
type stubHistorialRepo struct {
	comedores   []string
	totales     map[string][]dto.EmpleadoTotal // comedor|week → totales
	historiales map[string]*model.ConsumoHistorialModel
	detalles    map[uuid.UUID][]model.ConsumoHistorialDetalleModel
	fallaEn     string // comedor que simula un error de storage
}

func newStubHistorialRepo() *stubHistorialRepo {
	return &stubHistorialRepo{
		totales:     make(map[string][]dto.EmpleadoTotal),
		historiales: make(map[string]*model.ConsumoHistorialModel),
		detalles:    make(map[uuid.UUID][]model.ConsumoHistorialDetalleModel),
	}
}

func claveSemana(comedorID, weekID string) string {
	return comedorID + "|" + weekID
}

func (r *stubHistorialRepo) ListComedorIDs(_ context.Context) ([]string, error) {
	return r.comedores, nil
}

func (r *stubHistorialRepo) TotalesSemana(_ context.Context, comedorID, weekID string) ([]dto.EmpleadoTotal, error) {
	if comedorID == r.fallaEn && r.fallaEn != "" {
		return nil, errors.New("storage caído")
	}
	return r.totales[claveSemana(comedorID, weekID)], nil
}

func (r *stubHistorialRepo) CrearHistorial(_ context.Context, h *model.ConsumoHistorialModel, detalles []model.ConsumoHistorialDetalleModel) error {
	key := claveSemana(h.ComedorID, h.WeekID)
	if _, ok := r.historiales[key]; ok {
		return fmt.Errorf("%w: historial %s/%s", helper.ErrConflict, h.ComedorID, h.WeekID)
	}
	h.ID = uuid.New()
	r.historiales[key] = h
	for i := range detalles {
		detalles[i].HistoryID = h.ID
	}
	r.detalles[h.ID] = detalles
	return nil
}

func (r *stubHistorialRepo) ListHistoriales(_ context.Context, _ string) ([]model.ConsumoHistorialModel, error) {
	return nil, nil
}

func (r *stubHistorialRepo) ListDetalles(_ context.Context, _ uuid.UUID) ([]dto.DetalleRow, error) {
	return nil, nil
}

func TestArchivarSemanaConConsumos(t *testing.T) {
	repo := newStubHistorialRepo()
	repo.totales[claveSemana("COM-1", "2024-6-3")] = []dto.EmpleadoTotal{
		{EmployeeID: "E1", Total: 2},
		{EmployeeID: "E2", Total: 1},
	}
	svc := NewHistorialService(repo)

	res, err := svc.ArchivarSemana(context.Background(), "COM-1", "2024-6-3")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.AlreadyArchived)
	assert.Equal(t, 3, res.TotalCount, "2 de E1 + 1 de E2")
	assert.Equal(t, 2, res.Detalles)
	require.NotNil(t, res.HistoryID)

	guardados := repo.detalles[*res.HistoryID]
	require.Len(t, guardados, 2)
	assert.Equal(t, "E1", guardados[0].EmployeeID)
	assert.Equal(t, 2, guardados[0].Count)
}

func TestArchivarSemanaIdempotente(t *testing.T) {
	repo := newStubHistorialRepo()
	repo.totales[claveSemana("COM-1", "2024-6-3")] = []dto.EmpleadoTotal{{EmployeeID: "E1", Total: 5}}
	svc := NewHistorialService(repo)

	_, err := svc.ArchivarSemana(context.Background(), "COM-1", "2024-6-3")
	require.NoError(t, err)

	// segunda pasada sobre la misma semana: no-op señalizado, no error
	res, err := svc.ArchivarSemana(context.Background(), "COM-1", "2024-6-3")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.AlreadyArchived)
	assert.Len(t, repo.historiales, 1, "no se duplica el historial")
}

func TestArchivarSemanaVacia(t *testing.T) {
	repo := newStubHistorialRepo()
	svc := NewHistorialService(repo)

	res, err := svc.ArchivarSemana(context.Background(), "COM-1", "2024-6-10")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 0, res.Detalles)
	require.NotNil(t, res.HistoryID, "la semana vacía también queda archivada")
	assert.Empty(t, repo.detalles[*res.HistoryID])
}

func TestArchivarSemanaValidacion(t *testing.T) {
	svc := NewHistorialService(newStubHistorialRepo())

	_, err := svc.ArchivarSemana(context.Background(), "", "2024-6-3")
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.ArchivarSemana(context.Background(), "COM-1", "")
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestArchivarTodosAislaFallos(t *testing.T) {
	repo := newStubHistorialRepo()
	repo.comedores = []string{"COM-1", "COM-2", "COM-3"}
	repo.fallaEn = "COM-2"
	repo.totales[claveSemana("COM-1", "2024-6-3")] = []dto.EmpleadoTotal{{EmployeeID: "E1", Total: 1}}
	svc := NewHistorialService(repo)

	resultados, err := svc.ArchivarTodos(context.Background(), "2024-6-3")
	require.NoError(t, err)
	require.Len(t, resultados, 3)

	assert.True(t, resultados[0].Success)
	assert.False(t, resultados[1].Success, "el comedor con storage caído falla solo")
	assert.NotEmpty(t, resultados[1].Error)
	assert.True(t, resultados[2].Success, "el fallo de COM-2 no aborta COM-3")
}
