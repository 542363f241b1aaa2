package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealdigest/internal/delivery/http/response"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// createDealRequest is the body of POST /deals.
type createDealRequest struct {
	StoreID       string    `json:"storeId" validate:"required"`
	ProductName   string    `json:"productName" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	RegularPrice  float64   `json:"regularPrice"`
	SalePrice     float64   `json:"salePrice"`
	Unit          string    `json:"unit"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	LoyaltyValue  float64   `json:"loyaltyValue"`
	Description   string    `json:"description"`
	ValidFrom     time.Time `json:"validFrom"`
	ValidUntil    time.Time `json:"validUntil"`
	Featured      bool      `json:"featured"`
	Source        string    `json:"source"`
}

// DealHandler holds dependencies for deal-related handlers.
type DealHandler struct {
	uc     usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /deals with optional store, category and featured filters.
func (h *DealHandler) List(c echo.Context) error {
	opts := usecase.DealListOptions{
		StoreID:         c.QueryParam("store"),
		Category:        c.QueryParam("category"),
		FeaturedOnly:    c.QueryParam("featured") == "true",
		IncludeInactive: c.QueryParam("includeInactive") == "true",
	}

	deals, err := h.uc.List(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Data(c, deals)
}

// Create handles POST /deals.
func (h *DealHandler) Create(c echo.Context) error {
	var req createDealRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, h.logger, domainerrors.ErrInvalidDeal)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	deal, err := h.uc.Create(c.Request().Context(), usecase.CreateDealInput{
		StoreID:       req.StoreID,
		ProductName:   req.ProductName,
		Category:      req.Category,
		RegularPrice:  req.RegularPrice,
		SalePrice:     req.SalePrice,
		Unit:          req.Unit,
		LoyaltyPoints: req.LoyaltyPoints,
		LoyaltyValue:  req.LoyaltyValue,
		Description:   req.Description,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		Featured:      req.Featured,
		Source:        req.Source,
	})
	if err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, response.DataBody{Success: true, Data: deal})
}

// Deactivate handles DELETE /deals/:id. Deals are logically deactivated so
// newsletters that reference them keep their history.
func (h *DealHandler) Deactivate(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, h.logger, err)
	}

	return response.Message(c, http.StatusOK, "Deal deactivated successfully")
}
