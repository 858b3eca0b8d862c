package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"comedores_backend/internals/features/consumos/dto"
	"comedores_backend/internals/features/consumos/model"
	empModel "comedores_backend/internals/features/empleados/model"
	"comedores_backend/internals/features/eventos/broadcaster"
	helper "comedores_backend/internals/helpers"
)

// repo en memoria con la misma semántica que el upsert de Postgres.
type stubConsumoRepo struct {
	mu         sync.Mutex
	empleados  map[string]*empModel.EmpleadoModel
	counts     map[string]int // employee|comedor|fecha → count
	lastActive map[string]time.Time
}

func newStubConsumoRepo() *stubConsumoRepo {
	return &stubConsumoRepo{
		empleados:  make(map[string]*empModel.EmpleadoModel),
		counts:     make(map[string]int),
		lastActive: make(map[string]time.Time),
	}
}

func (r *stubConsumoRepo) addEmpleado(id, comedorID, nombre string) {
	r.empleados[id] = &empModel.EmpleadoModel{InternalID: id, ComedorID: comedorID, Name: nombre}
}

func (r *stubConsumoRepo) FindEmpleado(_ context.Context, empleadoID string) (*empModel.EmpleadoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.empleados[empleadoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubConsumoRepo) UpsertConsumo(_ context.Context, entry *model.ConsumoLogModel) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := fmt.Sprintf("%s|%s|%s", entry.EmployeeID, entry.ComedorID, entry.ConsumptionDate.Format("2006-01-02"))
	r.counts[key]++
	return r.counts[key], nil
}

func (r *stubConsumoRepo) TouchLastActive(_ context.Context, empleadoID string, fecha time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastActive[empleadoID] = fecha
	return nil
}

func (r *stubConsumoRepo) ConsumosSemana(_ context.Context, _, _ string) ([]dto.ConsumoSemanaRow, error) {
	return nil, nil
}

func (r *stubConsumoRepo) LimpiarSemana(_ context.Context, _, _ string) (int64, error) {
	return 0, nil
}

func (r *stubConsumoRepo) ResumenSemana(_ context.Context, _, _ string) ([]dto.ResumenSemanaRow, error) {
	return nil, nil
}

type stubSink struct {
	eventos chan broadcaster.EventoConsumo
}

func (s *stubSink) Publicar(e broadcaster.EventoConsumo) {
	s.eventos <- e
}

func TestRegistrarPrimeraVezYRepetido(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-1", "COM-1", "Ana Torres")
	svc := NewConsumoService(repo, nil)

	hoy := time.Date(2024, time.June, 5, 13, 30, 0, 0, time.Local)

	res, err := svc.Registrar(context.Background(), "EMP-1", "COM-1", hoy)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ConsumptionCount)
	assert.Equal(t, "2024-6-3", res.WeekID)
	assert.Equal(t, "Miércoles", res.DayName)
	assert.Equal(t, "2024-06-05", res.ConsumptionDate)

	// mismo empleado, mismo día → incrementa, no duplica
	res, err = svc.Registrar(context.Background(), "EMP-1", "COM-1", hoy.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, res.ConsumptionCount)
	assert.Len(t, repo.counts, 1)
}

func TestRegistrarEmpleadosIndependientes(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-A", "COM-1", "Ana")
	repo.addEmpleado("EMP-B", "COM-1", "Beto")
	svc := NewConsumoService(repo, nil)

	hoy := time.Date(2024, time.June, 5, 13, 0, 0, 0, time.Local)

	resA, err := svc.Registrar(context.Background(), "EMP-A", "COM-1", hoy)
	require.NoError(t, err)
	resB, err := svc.Registrar(context.Background(), "EMP-B", "COM-1", hoy)
	require.NoError(t, err)

	assert.Equal(t, 1, resA.ConsumptionCount)
	assert.Equal(t, 1, resB.ConsumptionCount)
	assert.Len(t, repo.counts, 2)
}

func TestRegistrarConcurrente(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-1", "COM-1", "Ana")
	svc := NewConsumoService(repo, nil)

	hoy := time.Date(2024, time.June, 5, 13, 0, 0, 0, time.Local)
	const n = 25

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Registrar(context.Background(), "EMP-1", "COM-1", hoy)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	key := "EMP-1|COM-1|2024-06-05"
	assert.Equal(t, n, repo.counts[key], "n registros concurrentes suman exactamente n")
}

func TestRegistrarEmpleadoInexistente(t *testing.T) {
	repo := newStubConsumoRepo()
	svc := NewConsumoService(repo, nil)

	_, err := svc.Registrar(context.Background(), "NADIE", "COM-1", time.Now())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestRegistrarComedorAjeno(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-1", "COM-1", "Ana")
	svc := NewConsumoService(repo, nil)

	_, err := svc.Registrar(context.Background(), "EMP-1", "COM-2", time.Now())
	assert.ErrorIs(t, err, helper.ErrInvalidReference)
	assert.Empty(t, repo.counts, "no se escribe nada si el comedor no coincide")
}

func TestRegistrarActualizaLastActive(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-1", "COM-1", "Ana")
	svc := NewConsumoService(repo, nil)

	hoy := time.Date(2024, time.June, 5, 13, 0, 0, 0, time.Local)
	_, err := svc.Registrar(context.Background(), "EMP-1", "COM-1", hoy)
	require.NoError(t, err)

	assert.Equal(t, TruncarFecha(hoy), repo.lastActive["EMP-1"])
}

func TestRegistrarPublicaEvento(t *testing.T) {
	repo := newStubConsumoRepo()
	repo.addEmpleado("EMP-1", "COM-1", "Ana Torres")
	sink := &stubSink{eventos: make(chan broadcaster.EventoConsumo, 1)}
	svc := NewConsumoService(repo, sink)

	_, err := svc.Registrar(context.Background(), "EMP-1", "COM-1", time.Now())
	require.NoError(t, err)

	select {
	case e := <-sink.eventos:
		assert.Equal(t, "EMP-1", e.EmployeeID)
		assert.Equal(t, "Ana Torres", e.EmployeeName)
		assert.Equal(t, "COM-1", e.ComedorID)
	case <-time.After(2 * time.Second):
		t.Fatal("el evento nunca llegó al sink")
	}
}

func TestRegistrarValidacion(t *testing.T) {
	svc := NewConsumoService(newStubConsumoRepo(), nil)

	_, err := svc.Registrar(context.Background(), "", "COM-1", time.Now())
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Registrar(context.Background(), "EMP-1", "", time.Now())
	assert.ErrorIs(t, err, helper.ErrValidation)
}
