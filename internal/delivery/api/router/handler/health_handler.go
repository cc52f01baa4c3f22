package handler

import (
	"net/http"

	"bdgaraj/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports that the API is up
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthCheck handles the liveness probe and the API root
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Message: "BD Garaj API is running",
		Status:  "ok",
	})
}
