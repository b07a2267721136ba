package shopapi

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tindahanph/bottleshop/internal/domain"
)

type orderItemPayload struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"min=0"`
}

type createOrderPayload struct {
	SessionID    string             `json:"sessionId" validate:"required"`
	CustomerName string             `json:"customerName" validate:"required"`
	Email        string             `json:"email" validate:"required,email"`
	Phone        string             `json:"phone" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	City         string             `json:"city" validate:"required"`
	State        string             `json:"state" validate:"required"`
	ZipCode      string             `json:"zipCode" validate:"required"`
	Items        []orderItemPayload `json:"items" validate:"required,min=1,dive"`
	Subtotal     float64            `json:"subtotal" validate:"min=0"`
	Tax          float64            `json:"tax" validate:"min=0"`
	Total        float64            `json:"total" validate:"min=0"`
}

func (p createOrderPayload) toInput() domain.OrderInput {
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return domain.OrderInput{
		SessionID:    p.SessionID,
		CustomerName: p.CustomerName,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Items:        items,
		Subtotal:     p.Subtotal,
		Tax:          p.Tax,
		Total:        p.Total,
	}
}

// createOrder persists the caller's cart snapshot as an order and clears
// the originating cart. The money fields are trusted from the client and
// stored verbatim; a mismatch against the item sum is logged so the trust
// boundary stays visible in operation.
func (h *Handler) createOrder(c echo.Context) error {
	var payload createOrderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid order data", err.Error())
	}

	ctx := c.Request().Context()
	input := payload.toInput()

	if calc := input.ItemsSubtotal(); math.Abs(calc-input.Subtotal) > 0.01 {
		zap.L().Warn("order subtotal does not match item sum",
			zap.String("session_id", input.SessionID),
			zap.Float64("supplied", input.Subtotal),
			zap.Float64("computed", calc))
	}

	order, err := h.store.CreateOrder(ctx, input)
	if err != nil {
		return storeFail(c, err, "order")
	}

	if err := h.store.ClearCart(ctx, input.SessionID); err != nil {
		// The order already exists; there is no compensating rollback.
		return storeFail(c, err, "cart")
	}

	return created(c, order)
}

func (h *Handler) getOrder(c echo.Context) error {
	order, err := h.store.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeFail(c, err, "order")
	}
	return ok(c, order)
}

func (h *Handler) listSessionOrders(c echo.Context) error {
	orders, err := h.store.GetOrdersBySession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return storeFail(c, err, "orders")
	}
	return ok(c, orders)
}
