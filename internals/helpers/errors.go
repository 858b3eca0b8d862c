package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===============================
   Errores de dominio (sentinelas)
=================================*/

var (
	// ErrNotFound: la entidad referida no existe.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidReference: la entidad existe pero no pertenece al ámbito indicado
	// (p.ej. empleado de otro comedor).
	ErrInvalidReference = errors.New("referencia inválida")
	// ErrConflict: clave única duplicada.
	ErrConflict = errors.New("conflicto de clave duplicada")
	// ErrValidation: falta un campo obligatorio o formato inválido.
	ErrValidation = errors.New("datos inválidos")
	// ErrStorage: la capa de persistencia no está disponible.
	ErrStorage = errors.New("almacenamiento no disponible")
)

/* ===============================
   Mapeo de errores de Postgres
=================================*/

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey detecta violación de unique de Postgres (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

// IsForeignKeyViolation detecta violación de FK (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23503" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "23503")
}

/* ===============================
   Errores de dominio → respuesta JSON
=================================*/

// JsonFromError traduce un error de servicio al envelope de error estándar.
func JsonFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidReference):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict):
		return JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrValidation):
		return JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrStorage):
		return JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	case IsDuplicateKey(err):
		return JsonError(c, fiber.StatusConflict, "Clave duplicada (unique violation)")
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusBadRequest, "Referencia no encontrada (FK violation)")
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
