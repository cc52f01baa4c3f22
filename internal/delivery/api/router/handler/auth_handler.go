package handler

import (
	"net/http"
	"time"

	"bdgaraj/internal/delivery/api/middleware"
	"bdgaraj/internal/delivery/api/response"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles admin login and account management
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// AdminResponse is the public view of an admin; the password hash never leaves the server
type AdminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifyResponse confirms a valid session
type VerifyResponse struct {
	Username string `json:"username"`
	Valid    bool   `json:"valid"`
}

func newAdminResponse(admin *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		CreatedAt: admin.CreatedAt,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}

// Verify reports the admin behind the presented token
func (h *AuthHandler) Verify(c echo.Context) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	return response.Success(c, http.StatusOK, VerifyResponse{Username: admin.Username, Valid: true})
}

// Register creates another admin; only admins may call it
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	admin, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAdminResponse(admin))
}
