package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // usa la cookie access_token si no hay Bearer
}

// AuthJWT valida el token Bearer (o cookie) y deja los claims en Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret es obligatorio")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)
		if v := strClaim(claims, "user_id"); v != "" {
			c.Locals("user_id", v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals("role", v)
		}
		if v := strClaim(claims, "comedor_id"); v != "" {
			c.Locals("comedor_id", v)
		}

		return c.Next()
	}
}

// RequireAdministrador exige rol administrador (grupo /api/a).
func RequireAdministrador() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != "administrador" {
			return fiber.NewError(fiber.StatusForbidden, "Se requiere rol administrador")
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
