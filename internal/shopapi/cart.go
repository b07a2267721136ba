package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tindahanph/bottleshop/internal/domain"
	"github.com/tindahanph/bottleshop/internal/store"
)

type addToCartPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type updateCartItemPayload struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// cartItemResponse is a cart row joined with its product, the shape the
// client renders cart lines from.
type cartItemResponse struct {
	domain.CartItem
	Product *domain.Product `json:"product,omitempty"`
}

// withProduct joins the item to its product. A missing product (possible
// only if the catalog seed changed under a live cart) leaves the field
// empty rather than failing the whole cart.
func (h *Handler) withProduct(c echo.Context, item domain.CartItem) (cartItemResponse, error) {
	out := cartItemResponse{CartItem: item}
	product, err := h.store.GetProduct(c.Request().Context(), item.ProductID)
	switch {
	case err == nil:
		out.Product = &product
	case !store.IsNotFound(err):
		return out, err
	}
	return out, nil
}

func (h *Handler) getCart(c echo.Context) error {
	items, err := h.store.GetCart(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return storeFail(c, err, "cart")
	}

	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		joined, err := h.withProduct(c, item)
		if err != nil {
			return storeFail(c, err, "cart")
		}
		out = append(out, joined)
	}
	return ok(c, out)
}

func (h *Handler) addToCart(c echo.Context) error {
	var payload addToCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid cart item data", err.Error())
	}

	item, err := h.store.AddToCart(c.Request().Context(), payload.SessionID, payload.ProductID, payload.Quantity)
	if err != nil {
		return storeFail(c, err, "cart item")
	}

	joined, err := h.withProduct(c, item)
	if err != nil {
		return storeFail(c, err, "cart item")
	}
	return created(c, joined)
}

func (h *Handler) updateCartItem(c echo.Context) error {
	var payload updateCartItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Quantity must be a positive number", err.Error())
	}

	item, err := h.store.UpdateCartItem(c.Request().Context(), c.Param("id"), payload.Quantity)
	if err != nil {
		return storeFail(c, err, "cart item")
	}

	joined, err := h.withProduct(c, item)
	if err != nil {
		return storeFail(c, err, "cart item")
	}
	return ok(c, joined)
}

func (h *Handler) removeFromCart(c echo.Context) error {
	if err := h.store.RemoveFromCart(c.Request().Context(), c.Param("id")); err != nil {
		return storeFail(c, err, "cart item")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) clearCart(c echo.Context) error {
	if err := h.store.ClearCart(c.Request().Context(), c.Param("sessionId")); err != nil {
		return storeFail(c, err, "cart")
	}
	return c.NoContent(http.StatusNoContent)
}
