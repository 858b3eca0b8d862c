package broadcaster

import (
	"log"
	"sync"
	"time"
)

// EventoConsumo es lo que se empuja a los dashboards cuando alguien registra
// un consumo. Reemplaza las suscripciones en tiempo real del sistema legado.
type EventoConsumo struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	EmployeeType string    `json:"employee_type,omitempty"`
	ComedorID    string    `json:"comedor_id"`
	Timestamp    time.Time `json:"timestamp"`
}

const bufferSuscriptor = 16

var (
	mu     sync.RWMutex
	subs   map[int]chan EventoConsumo
	nextID int
)

// Init prepara el hub. Idempotente.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if subs == nil {
		subs = make(map[int]chan EventoConsumo)
	}
}

// Subscribe registra un suscriptor y devuelve su id y canal de eventos.
func Subscribe() (int, <-chan EventoConsumo) {
	mu.Lock()
	defer mu.Unlock()
	if subs == nil {
		subs = make(map[int]chan EventoConsumo)
	}
	nextID++
	ch := make(chan EventoConsumo, bufferSuscriptor)
	subs[nextID] = ch
	return nextID, ch
}

// Unsubscribe da de baja al suscriptor y cierra su canal.
func Unsubscribe(id int) {
	mu.Lock()
	defer mu.Unlock()
	if ch, ok := subs[id]; ok {
		delete(subs, id)
		close(ch)
	}
}

// Publish reparte el evento sin bloquear jamás: si el buffer de un
// suscriptor está lleno, el evento se descarta para ese suscriptor.
func Publish(e EventoConsumo) {
	mu.RLock()
	defer mu.RUnlock()
	for id, ch := range subs {
		select {
		case ch <- e:
		default:
			log.Printf("[EVENTOS] suscriptor %d saturado, evento descartado", id)
		}
	}
}
