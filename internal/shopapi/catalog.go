package shopapi

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) listCategories(c echo.Context) error {
	categories, err := h.store.GetCategories(c.Request().Context())
	if err != nil {
		return storeFail(c, err, "categories")
	}
	return ok(c, categories)
}

func (h *Handler) getCategory(c echo.Context) error {
	category, err := h.store.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeFail(c, err, "category")
	}
	return ok(c, category)
}

// listProducts serves /api/products with optional featured, search and
// category filters. The filters are mutually exclusive; precedence
// follows the original storefront: featured, then search, then category.
func (h *Handler) listProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("featured") == "true" {
		products, err := h.store.GetFeaturedProducts(ctx)
		if err != nil {
			return storeFail(c, err, "products")
		}
		return ok(c, products)
	}

	if query := c.QueryParam("search"); query != "" {
		products, err := h.store.SearchProducts(ctx, query)
		if err != nil {
			return storeFail(c, err, "products")
		}
		return ok(c, products)
	}

	if categoryID := c.QueryParam("category"); categoryID != "" {
		products, err := h.store.GetProductsByCategory(ctx, categoryID)
		if err != nil {
			return storeFail(c, err, "products")
		}
		return ok(c, products)
	}

	products, err := h.store.GetProducts(ctx)
	if err != nil {
		return storeFail(c, err, "products")
	}
	return ok(c, products)
}

func (h *Handler) getProduct(c echo.Context) error {
	product, err := h.store.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeFail(c, err, "product")
	}
	return ok(c, product)
}
