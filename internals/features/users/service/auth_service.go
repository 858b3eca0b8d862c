package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"comedores_backend/internals/configs"
	"comedores_backend/internals/features/users/model"
)

const tokenTTL = 12 * time.Hour

// HashPassword genera el hash bcrypt (cost 10, como los scripts legados).
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara el password contra el hash almacenado.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken emite el JWT de sesión con rol y comedor del usuario.
func GenerateToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	if u.ComedorID != nil {
		claims["comedor_id"] = *u.ComedorID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
