// Package shopapi implements the storefront REST API. Handlers translate
// HTTP requests into storage facade calls and serialize results to JSON;
// every write payload is validated here so the facade can trust its input.
package shopapi

import (
	"github.com/labstack/echo/v4"

	"github.com/tindahanph/bottleshop/internal/store"
)

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// Register mounts the storefront routes under /api.
func Register(e *echo.Echo, st store.Store) {
	h := NewHandler(st)

	api := e.Group("/api")
	api.GET("/health", h.health)

	api.GET("/categories", h.listCategories)
	api.GET("/categories/:id", h.getCategory)

	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	api.GET("/cart/:sessionId", h.getCart)
	api.POST("/cart", h.addToCart)
	api.PATCH("/cart/:id", h.updateCartItem)
	api.DELETE("/cart/:id", h.removeFromCart)
	api.DELETE("/cart/session/:sessionId", h.clearCart)

	api.POST("/orders", h.createOrder)
	api.GET("/orders/:id", h.getOrder)
	api.GET("/orders/session/:sessionId", h.listSessionOrders)
}
