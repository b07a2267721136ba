package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahanph/bottleshop/internal/domain"
	"github.com/tindahanph/bottleshop/internal/store"
	"github.com/tindahanph/bottleshop/internal/store/memstore"
)

func newOrderInput(sessionID string) domain.OrderInput {
	return domain.OrderInput{
		SessionID:    sessionID,
		CustomerName: "A",
		Email:        "a@b.com",
		Phone:        "09170000000",
		Address:      "123 Rizal St",
		City:         "Makati",
		State:        "Metro Manila",
		ZipCode:      "1200",
		Items: []domain.OrderItem{
			{ProductID: "1", Quantity: 1, Price: 899.00},
		},
		Subtotal: 899.00,
		Tax:      71.92,
		Total:    970.92,
	}
}

func TestCatalogSeeded(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "tequila", categories[0].ID)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 16)

	// every product references an existing category
	byID := make(map[string]bool)
	for _, c := range categories {
		byID[c.ID] = true
	}
	for _, p := range products {
		assert.Truef(t, byID[p.CategoryID], "product %s references unknown category %s", p.ID, p.CategoryID)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	s := memstore.New()

	_, err := s.GetCategory(context.Background(), "vodka")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetProduct(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	p, err := s.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tequila Rose", p.Name)
	assert.Equal(t, 899.00, p.Price)

	_, err = s.GetProduct(ctx, "999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetProductsByCategory(t *testing.T) {
	s := memstore.New()

	products, err := s.GetProductsByCategory(context.Background(), "whiskey")
	require.NoError(t, err)
	require.Len(t, products, 4)
	for _, p := range products {
		assert.Equal(t, "whiskey", p.CategoryID)
	}
}

func TestGetFeaturedProducts(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	featured, err := s.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}

	all, err := s.GetProducts(ctx)
	require.NoError(t, err)
	want := 0
	for _, p := range all {
		if p.IsFeatured {
			want++
		}
	}
	assert.Len(t, featured, want)
}

func TestSearchProducts(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:  "matches name description and tags",
			query: "tequila",
			// 1,2,3 mention tequila in name or description, 4 in description
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "case insensitive",
			query:   "TEQUILA",
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "tag only match",
			query:   "single malt",
			wantIDs: []string{"8"},
		},
		{
			name:    "no matches",
			query:   "vodka",
			wantIDs: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, err := s.SearchProducts(ctx, tc.query)
			require.NoError(t, err)
			got := make([]string, 0, len(products))
			for _, p := range products {
				got = append(got, p.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, got)
		})
	}
}

func TestAddToCartMergesQuantity(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	first, err := s.AddToCart(ctx, "abc", "1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)
	assert.NotEmpty(t, first.ID)

	second, err := s.AddToCart(ctx, "abc", "1", 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "merge must reuse the existing row")
	assert.Equal(t, 5, second.Quantity)

	items, err := s.GetCart(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, items, 1, "never two rows for the same (session, product)")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartSeparatePerSession(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "abc", "1", 1)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "xyz", "1", 1)
	require.NoError(t, err)

	abc, err := s.GetCart(ctx, "abc")
	require.NoError(t, err)
	xyz, err := s.GetCart(ctx, "xyz")
	require.NoError(t, err)
	assert.Len(t, abc, 1)
	assert.Len(t, xyz, 1)
	assert.NotEqual(t, abc[0].ID, xyz[0].ID)
}

func TestGetCartItem(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_, err := s.GetCartItem(ctx, "abc", "1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	added, err := s.AddToCart(ctx, "abc", "1", 2)
	require.NoError(t, err)

	item, err := s.GetCartItem(ctx, "abc", "1")
	require.NoError(t, err)
	assert.Equal(t, added.ID, item.ID)
}

func TestUpdateCartItem(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	item, err := s.AddToCart(ctx, "abc", "1", 5)
	require.NoError(t, err)

	updated, err := s.UpdateCartItem(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)

	_, err = s.UpdateCartItem(ctx, "no-such-id", 3)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	item, err := s.AddToCart(ctx, "abc", "1", 2)
	require.NoError(t, err)

	require.NoError(t, s.RemoveFromCart(ctx, item.ID))

	items, err := s.GetCart(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, items)

	// idempotent: removing an unknown id is not an error
	assert.NoError(t, s.RemoveFromCart(ctx, "no-such-id"))
}

func TestClearCart(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "abc", "1", 1)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "abc", "5", 2)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "xyz", "1", 1)
	require.NoError(t, err)

	require.NoError(t, s.ClearCart(ctx, "abc"))

	abc, err := s.GetCart(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, abc)

	xyz, err := s.GetCart(ctx, "xyz")
	require.NoError(t, err)
	assert.Len(t, xyz, 1, "clearing one session must not touch another")

	// idempotent
	assert.NoError(t, s.ClearCart(ctx, "abc"))
}

func TestCreateOrder(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.SetNow(func() time.Time { return fixed })

	order, err := s.CreateOrder(ctx, newOrderInput("abc"))
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, fixed, order.CreatedAt)
	assert.Equal(t, 899.00, order.Subtotal)
	assert.Equal(t, 71.92, order.Tax)
	assert.Equal(t, 970.92, order.Total)

	fetched, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, fetched)
}

func TestGetOrderNotFound(t *testing.T) {
	s := memstore.New()

	_, err := s.GetOrder(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetOrdersBySession(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, newOrderInput("abc"))
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, newOrderInput("abc"))
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, newOrderInput("xyz"))
	require.NoError(t, err)

	orders, err := s.GetOrdersBySession(ctx, "abc")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "abc", o.SessionID)
	}

	none, err := s.GetOrdersBySession(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
