package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"comedores_backend/internals/features/users/model"
	"comedores_backend/internals/features/users/service"
	helper "comedores_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "email = ? AND active = TRUE", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonFromError(c, err)
	}

	if !service.CheckPassword(user.PasswordHash, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		log.Println("[ERROR] GenerateToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error generando token")
	}

	return helper.JsonOK(c, "Login correcto", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"role":       user.Role,
			"comedor_id": user.ComedorID,
		},
	})
}

// GET /api/u/me — datos del usuario autenticado
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Usuario", user)
}
