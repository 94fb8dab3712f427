package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

// RevocationChecker reports whether a token identifier has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTProtected validates bearer tokens and rejects revoked sessions. On
// success the user id and role from the claims are bound to the request.
func JWTProtected(secret string, revocations RevocationChecker, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		if kind, _ := claims["typ"].(string); kind != "access" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		if revocations != nil {
			jti, _ := claims["jti"].(string)
			if jti != "" {
				revoked, err := revocations.IsRevoked(c.Context(), jti)
				if err != nil {
					logger.Warn().Err(err).Msg("revocation check failed")
					return utils.SendError(c, fiber.StatusServiceUnavailable, "service unavailable")
				}
				if revoked {
					return utils.SendError(c, fiber.StatusUnauthorized, "session revoked")
				}
			}
		}

		if sub, ok := claims["sub"].(float64); ok && sub >= 0 {
			c.Locals("user_id", uint(sub))
		}
		if role, ok := claims["role"].(string); ok && role != "" {
			c.Locals("user_role", strings.TrimSpace(role))
		}
		c.Locals("token_string", tokenString)

		return c.Next()
	}
}

// TokenFromContext returns the raw bearer token bound by JWTProtected.
func TokenFromContext(c *fiber.Ctx) string {
	if v := c.Locals("token_string"); v != nil {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// UserIDFromContext returns the authenticated user id, or zero.
func UserIDFromContext(c *fiber.Ctx) uint {
	if v := c.Locals("user_id"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// RoleFromContext returns the authenticated role claim, or an empty role.
func RoleFromContext(c *fiber.Ctx) models.Role {
	if v := c.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			return models.Role(role)
		}
	}
	return ""
}
