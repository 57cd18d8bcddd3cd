package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cafeshop/internal/config"
	"github.com/example/cafeshop/internal/utils"
)

const claimsContextKey = "currentClaims"

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// AuthMiddleware validates the session token and loads the caller's claims
// into the request context. The token is read from the "token" cookie or the
// Authorization Bearer header; when both are present the cookie wins. That
// precedence is deliberate, not incidental.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookieName)

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
				}
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "no authentication token provided")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authentication token")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// RequireAdmin rejects authenticated callers whose role is not admin. Must
// run after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetCurrentClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if claims.Role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// GetCurrentClaims extracts the authenticated claims from context.
func GetCurrentClaims(c *fiber.Ctx) (*utils.Claims, bool) {
	value := c.Locals(claimsContextKey)
	if value == nil {
		return nil, false
	}

	if claims, ok := value.(*utils.Claims); ok {
		return claims, true
	}

	return nil, false
}
