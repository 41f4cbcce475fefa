package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "materieelbeheer/pkg/errors"
	"materieelbeheer/pkg/service"
	"materieelbeheer/pkg/utils"
)

const UserIDKey = "user_id"

// AuthMiddleware controleert de Bearer-token en zet het user-id in de echo-context.
func AuthMiddleware(jwtService service.JWTService, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, "Autorisatie-header ontbreekt", apperrors.ErrUnauthorized, nil), logger)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, "Ongeldige autorisatie-header", apperrors.ErrUnauthorized, nil), logger)
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, "Ongeldige of verlopen token", err, nil), logger)
			}
			if claims.IsRefresh {
				// Refresh-tokens zijn alleen geldig op het refresh-endpoint.
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, "Refresh-token niet toegestaan voor deze route", apperrors.ErrInvalidToken, nil), logger)
			}

			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// GetUserID haalt het user-id op dat door AuthMiddleware is gezet.
func GetUserID(c echo.Context) (uint64, error) {
	id, ok := c.Get(UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}
