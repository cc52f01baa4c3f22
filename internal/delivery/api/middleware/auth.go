package middleware

import (
	"log/slog"
	"strings"

	"bdgaraj/internal/delivery/api/response"
	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	adminContextKey = "admin"
	bearerPrefix    = "bearer "
)

// AuthMiddleware guards admin routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to a stored admin and makes it
// available to handlers through GetAdmin.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

		admin, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(adminContextKey, admin)

		req := c.Request()
		ctx := deliverycontext.WithAdmin(req.Context(), admin.Username)
		logger := deliverycontext.LoggerOrDefault(ctx, slog.Default()).With(slog.String("admin", admin.Username))
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// bearerToken returns "" when the header carries no bearer credential.
func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// GetAdmin returns the authenticated admin. Handlers must not modify it.
func GetAdmin(c echo.Context) (*entity.Admin, bool) {
	admin, ok := c.Get(adminContextKey).(*entity.Admin)

	return admin, ok && admin != nil
}
