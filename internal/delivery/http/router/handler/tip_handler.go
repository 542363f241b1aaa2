package handler

import (
	"log/slog"
	"net/http"

	"dealdigest/internal/delivery/http/response"
	"dealdigest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TipHandler holds dependencies for tip-related handlers.
type TipHandler struct {
	uc     usecase.TipUsecase
	logger *slog.Logger
}

// NewTipHandler is the constructor for TipHandler, injected by Fx.
func NewTipHandler(uc usecase.TipUsecase, logger *slog.Logger) *TipHandler {
	return &TipHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /tips with an optional ?category= filter.
func (h *TipHandler) List(c echo.Context) error {
	tips, err := h.uc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Data(c, tips)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
