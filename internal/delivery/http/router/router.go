// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealdigest/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NewsletterHandler *handler.NewsletterHandler
	StoreHandler      *handler.StoreHandler
	DealHandler       *handler.DealHandler
	SubscriberHandler *handler.SubscriberHandler
	TipHandler        *handler.TipHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	newsletterHandler *handler.NewsletterHandler
	storeHandler      *handler.StoreHandler
	dealHandler       *handler.DealHandler
	subscriberHandler *handler.SubscriberHandler
	tipHandler        *handler.TipHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		newsletterHandler: params.NewsletterHandler,
		storeHandler:      params.StoreHandler,
		dealHandler:       params.DealHandler,
		subscriberHandler: params.SubscriberHandler,
		tipHandler:        params.TipHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Newsletter pipeline: generation, retrieval (id/latest/list), deletion.
	// Retrieval dispatches on query parameters rather than path segments.
	e.POST("/newsletter", r.newsletterHandler.Generate)
	e.GET("/newsletter", r.newsletterHandler.Retrieve)
	e.DELETE("/newsletter", r.newsletterHandler.Delete)

	// Store reference data
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.GET("/:id", r.storeHandler.Get)
		storeGroup.DELETE("/:id", r.storeHandler.Delete)
	}

	// Deal reference data
	dealGroup := e.Group("/deals")
	{
		dealGroup.GET("", r.dealHandler.List)
		dealGroup.POST("", r.dealHandler.Create)
		dealGroup.DELETE("/:id", r.dealHandler.Deactivate)
	}

	// Subscriber management
	subscriberGroup := e.Group("/subscribers")
	{
		subscriberGroup.POST("", r.subscriberHandler.Subscribe)
		subscriberGroup.GET("/qr", r.subscriberHandler.QRCode)
		subscriberGroup.DELETE("/:token", r.subscriberHandler.Unsubscribe)
	}

	// Shopper tips
	e.GET("/tips", r.tipHandler.List)
}
