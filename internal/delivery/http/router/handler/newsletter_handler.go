// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealdigest/internal/delivery/http/response"
	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/export"
	"dealdigest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// generateRequest is the body of POST /newsletter. StoreIDs and
// FocusCategories are typed json.RawMessage-free: a non-array storeIds fails
// binding and is reported as a 400 before the builder runs.
type generateRequest struct {
	Frequency       string   `json:"frequency"`
	StoreIDs        []string `json:"storeIds"`
	FocusCategories []string `json:"focusCategories"`
	IncludeRecipes  *bool    `json:"includeRecipes"`
	AIEnhancements  bool     `json:"aiEnhancements"`
	CustomGreeting  string   `json:"customGreeting"`
	CustomClosing   string   `json:"customClosing"`
}

// NewsletterHandler holds dependencies for newsletter-related handlers.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		uc:     uc,
		logger: logger,
	}
}

// Generate handles POST /newsletter.
func (h *NewsletterHandler) Generate(c echo.Context) error {
	start := time.Now()

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, h.logger, domainerrors.ErrInvalidStoreIDs)
	}

	newsletter, err := h.uc.Generate(c.Request().Context(), usecase.GenerateOptions{
		Frequency:       req.Frequency,
		StoreIDs:        req.StoreIDs,
		FocusCategories: req.FocusCategories,
		IncludeRecipes:  req.IncludeRecipes,
		AIEnhancements:  req.AIEnhancements,
		CustomGreeting:  req.CustomGreeting,
		CustomClosing:   req.CustomClosing,
	})
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, response.GenerateBody{
		Success:          true,
		Newsletter:       newsletter,
		GeneratedAt:      newsletter.GeneratedAt.Format(time.RFC3339),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Message:          "Newsletter generated successfully",
	})
}

// Retrieve handles GET /newsletter, dispatching on query parameters:
// ?id= for a single lookup, ?latest=true for the most recent, otherwise a
// paginated listing. ?format= selects an export rendering for single lookups.
func (h *NewsletterHandler) Retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("id"); id != "" {
		newsletter, err := h.uc.GetByID(ctx, id)
		if err != nil {
			return response.HandleAppError(c, h.logger, err)
		}

		return h.render(c, newsletter)
	}

	if c.QueryParam("latest") == "true" {
		newsletter, err := h.uc.Latest(ctx)
		if err != nil {
			return response.HandleAppError(c, h.logger, err)
		}
		if newsletter == nil {
			return c.JSON(http.StatusOK, response.NewsletterBody{Success: true, Newsletter: nil})
		}

		return h.render(c, newsletter)
	}

	limit := 0
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		limit = 0
	}
	if limit <= 0 {
		limit = usecase.DefaultListLimit
	}
	if limit > usecase.MaxListLimit {
		limit = usecase.MaxListLimit
	}

	newsletters, total, err := h.uc.List(ctx, limit)
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, response.ListBody{
		Success:     true,
		Newsletters: newsletters,
		Total:       total,
		Limit:       limit,
	})
}

// Delete handles DELETE /newsletter?id=.
func (h *NewsletterHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.HandleAppError(c, h.logger, domainerrors.ErrNewsletterIDRequired)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Message(c, http.StatusOK, "Newsletter deleted successfully")
}

// render writes the newsletter in the requested format. Unknown formats are
// rejected; json is the default.
func (h *NewsletterHandler) render(c echo.Context, newsletter *entity.Newsletter) error {
	switch c.QueryParam("format") {
	case "", "json":
		return c.JSON(http.StatusOK, response.NewsletterBody{Success: true, Newsletter: newsletter})
	case "text":
		c.Response().Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(newsletter)+`"`)

		return c.Blob(http.StatusOK, export.ContentTypePlainText, []byte(export.ToPlainText(newsletter)))
	case "html":
		return c.HTML(http.StatusOK, export.ToHTML(newsletter))
	default:
		return response.HandleAppError(c, h.logger, domainerrors.ErrInvalidExportFormat)
	}
}
