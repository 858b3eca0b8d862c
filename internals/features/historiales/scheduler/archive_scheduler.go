package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"comedores_backend/internals/configs"
	semana "comedores_backend/internals/features/consumos/service"
	"comedores_backend/internals/features/historiales/repository"
	"comedores_backend/internals/features/historiales/service"
)

// StartArchiveScheduler lanza el job semanal que congela la semana en curso
// de cada comedor en el historial. Corre los domingos a las 23:00 hora local
// (hora configurable con ARCHIVE_HOUR), igual que el job nocturno legado.
func StartArchiveScheduler(db *gorm.DB) {
	go func() {
		hora := configs.GetEnvInt("ARCHIVE_HOUR", 23)
		if hora < 0 || hora > 23 {
			hora = 23
		}
		svc := service.NewHistorialService(repository.NewHistorialRepository(db))

		for {
			next := proximoDomingo(time.Now(), hora)
			log.Printf("[HISTORIAL] próximo archivado: %s", next.Format(time.RFC3339))
			time.Sleep(time.Until(next))

			weekID := semana.WeekID(time.Now())
			log.Printf("[HISTORIAL] archivando semana %s...", weekID)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			resultados, err := svc.ArchivarTodos(ctx, weekID)
			cancel()
			if err != nil {
				log.Printf("[HISTORIAL ERROR] no se pudo listar comedores: %v", err)
				continue
			}

			ok, fallos := 0, 0
			for _, r := range resultados {
				if r.Success {
					ok++
				} else {
					fallos++
				}
			}
			log.Printf("[HISTORIAL] semana %s: %d comedores ok, %d con error", weekID, ok, fallos)
		}
	}()
}

// proximoDomingo devuelve el siguiente domingo a la hora indicada,
// estrictamente posterior a now.
func proximoDomingo(now time.Time, hora int) time.Time {
	dias := (int(time.Sunday) - int(now.Weekday()) + 7) % 7
	candidato := time.Date(now.Year(), now.Month(), now.Day(), hora, 0, 0, 0, now.Location()).
		AddDate(0, 0, dias)
	if !candidato.After(now) {
		candidato = candidato.AddDate(0, 0, 7)
	}
	return candidato
}
