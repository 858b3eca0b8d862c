package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"comedores_backend/internals/features/eventos/broadcaster"
	"comedores_backend/internals/features/eventos/model"
)

// Sink recibe los eventos del registrador: los persiste y los reparte a los
// suscriptores en memoria. Nunca debe bloquear ni hacer fallar el registro.
type Sink struct {
	DB *gorm.DB
}

func NewSink(db *gorm.DB) *Sink {
	return &Sink{DB: db}
}

// Publicar guarda el evento y lo reparte. Los errores solo se loguean.
func (s *Sink) Publicar(e broadcaster.EventoConsumo) {
	broadcaster.Publish(e)

	if s.DB == nil {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("[EVENTOS] payload no serializable: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	row := model.ConsumoEventoModel{
		ComedorID:  e.ComedorID,
		EmployeeID: e.EmployeeID,
		Payload:    datatypes.JSON(payload),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[EVENTOS] no se pudo persistir evento: %v", err)
	}
}
