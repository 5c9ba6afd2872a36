package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"taskhub.com/taskhub/internal/auth"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/sessions"
)

// Auth validates the bearer token, rejects revoked ones, and stores the
// token and user id on the request context.
func Auth(jwtSecret []byte, denylist sessions.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return apperrors.ErrUnauthorized
			}

			claims, err := auth.ParseToken(token, jwtSecret)
			if err != nil {
				return apperrors.ErrUnauthorized
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if revoked {
				return apperrors.ErrUnauthorized
			}

			c.Set("userID", claims.UserID)
			c.Set("token", token)
			return next(c)
		}
	}
}
