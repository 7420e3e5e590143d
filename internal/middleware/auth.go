package middleware

import (
	goerrors "errors"

	"financial-assistant/internal/errors"
	"financial-assistant/internal/handlers"
	"financial-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminSubjectContextKey holds the subject of the validated admin token
const AdminSubjectContextKey = "admin_subject"

// RequireAdmin creates a middleware that requires a valid admin bearer token
func RequireAdmin(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAdminToken(token)
			switch {
			case err == nil:
			case goerrors.Is(err, services.ErrExpiredToken):
				return handlers.SendError(c, errors.AuthExpiredToken)
			case goerrors.Is(err, services.ErrNotAdminToken):
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			default:
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(AdminSubjectContextKey, claims.Subject)
			return next(c)
		}
	}
}
