package handler

import (
	"log/slog"
	"net/http"

	"dealdigest/internal/delivery/http/response"
	"dealdigest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /stores. ?active=true restricts to active stores.
func (h *StoreHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	stores, err := h.uc.List(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Data(c, stores)
}

// Get handles GET /stores/:id.
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Data(c, store)
}

// Delete handles DELETE /stores/:id. The store's deals go with it.
func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Message(c, http.StatusOK, "Store deleted successfully")
}
