// Package response defines the JSON envelopes returned by the HTTP delivery.
package response

import (
	"log/slog"
	"net/http"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorBody is the uniform failure envelope. Error carries the
// human-readable message; Detail carries best-effort diagnostics and is only
// populated for internal failures.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// NewsletterBody wraps a single newsletter. Newsletter is null when a
// "latest" lookup finds nothing stored.
type NewsletterBody struct {
	Success    bool               `json:"success"`
	Newsletter *entity.Newsletter `json:"newsletter"`
}

// GenerateBody is the envelope for a successful generation.
type GenerateBody struct {
	Success          bool               `json:"success"`
	Newsletter       *entity.Newsletter `json:"newsletter"`
	GeneratedAt      string             `json:"generatedAt"` // ISO-8601
	ProcessingTimeMs int64              `json:"processingTimeMs"`
	Message          string             `json:"message"`
}

// ListBody is the envelope for a newsletter listing.
type ListBody struct {
	Success     bool                 `json:"success"`
	Newsletters []*entity.Newsletter `json:"newsletters"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
}

// MessageBody is the envelope for operations that return only confirmation.
type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataBody is the envelope for reference data listings (stores, deals, tips).
type DataBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Data returns a 200 reference-data envelope.
func Data(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, DataBody{Success: true, Data: data})
}

// Message returns a confirmation envelope with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Success: true, Message: message})
}

// Error returns a failure envelope with the given status and message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Success: false, Error: message})
}

// HandleAppError maps an error to the failure envelope: AppError supplies
// its own status and message, anything else is reported as an internal
// failure with the error text as diagnostic detail.
func HandleAppError(c echo.Context, logger *slog.Logger, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		body := ErrorBody{Success: false, Error: appErr.Message()}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			body.Detail = appErr.Details()
		}

		return c.JSON(appErr.HTTPCode(), body)
	}

	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Success: false,
		Error:   "Internal server error.",
		Detail:  err.Error(),
	})
}
