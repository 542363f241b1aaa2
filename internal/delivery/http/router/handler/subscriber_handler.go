package handler

import (
	"log/slog"
	"net/http"

	"dealdigest/internal/delivery/http/response"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// subscribeRequest is the body of POST /subscribers.
type subscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// SubscriberHandler holds dependencies for subscriber-related handlers.
type SubscriberHandler struct {
	uc     usecase.SubscriberUsecase
	logger *slog.Logger
}

// NewSubscriberHandler is the constructor for SubscriberHandler, injected by Fx.
func NewSubscriberHandler(uc usecase.SubscriberUsecase, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		uc:     uc,
		logger: logger,
	}
}

// Subscribe handles POST /subscribers.
func (h *SubscriberHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, h.logger, domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), usecase.SubscribeInput{
		Email:  req.Email,
		Name:   req.Name,
		Region: req.Region,
	})
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, response.DataBody{Success: true, Data: subscriber})
}

// Unsubscribe handles DELETE /subscribers/:token.
func (h *SubscriberHandler) Unsubscribe(c echo.Context) error {
	if err := h.uc.Unsubscribe(c.Request().Context(), c.Param("token")); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Message(c, http.StatusOK, "Unsubscribed successfully")
}

// QRCode handles GET /subscribers/qr, returning a PNG linking to the
// subscribe page.
func (h *SubscriberHandler) QRCode(c echo.Context) error {
	png, err := h.uc.SubscribeQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
