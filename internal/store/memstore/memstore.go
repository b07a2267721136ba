// Package memstore is the transient in-process backend. It keeps every
// entity in a map keyed by identifier for the life of the process; a
// restart loses all cart and order data, which is acceptable for the
// development and demo mode it exists for.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tindahanph/bottleshop/internal/domain"
	"github.com/tindahanph/bottleshop/internal/store"
	"github.com/tindahanph/bottleshop/pkg/common"
)

// MemStore implements store.Store on plain maps. The original storefront
// ran these maps unsynchronized on a single-threaded event loop; here
// requests arrive on concurrent goroutines, so a RWMutex guards them.
type MemStore struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	products   map[string]domain.Product
	cartItems  map[string]domain.CartItem
	orders     map[string]domain.Order

	// insertion order of the catalog, so listings are stable
	categoryIDs []string
	productIDs  []string

	now nowFunc
}

var _ store.Store = (*MemStore)(nil)

// New builds a MemStore pre-populated with the seed catalog.
func New() *MemStore {
	s := &MemStore{
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
		cartItems:  make(map[string]domain.CartItem),
		orders:     make(map[string]domain.Order),
		now:        defaultNow,
	}
	for _, c := range domain.SeedCategories() {
		s.categories[c.ID] = c
		s.categoryIDs = append(s.categoryIDs, c.ID)
	}
	for _, p := range domain.SeedProducts() {
		s.products[p.ID] = p
		s.productIDs = append(s.productIDs, p.ID)
	}
	return s
}

func (s *MemStore) GetCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categoryIDs))
	for _, id := range s.categoryIDs {
		out = append(out, s.categories[id])
	}
	return out, nil
}

func (s *MemStore) GetCategory(_ context.Context, id string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (s *MemStore) GetProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(domain.Product) bool { return true }), nil
}

func (s *MemStore) GetProduct(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, store.ErrNotFound
	}
	return p, nil
}

func (s *MemStore) GetProductsByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (s *MemStore) GetFeaturedProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p domain.Product) bool { return p.IsFeatured }), nil
}

func (s *MemStore) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p domain.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}), nil
}

// filterProducts must be called with at least the read lock held.
func (s *MemStore) filterProducts(keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		if p := s.products[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemStore) GetCart(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, 0)
	for _, item := range s.cartItems {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetCartItem(_ context.Context, sessionID, productID string) (domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.findCartItem(sessionID, productID)
	if !ok {
		return domain.CartItem{}, store.ErrNotFound
	}
	return item, nil
}

// findCartItem must be called with at least the read lock held.
func (s *MemStore) findCartItem(sessionID, productID string) (domain.CartItem, bool) {
	for _, item := range s.cartItems {
		if item.SessionID == sessionID && item.ProductID == productID {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

func (s *MemStore) AddToCart(_ context.Context, sessionID, productID string, quantity int) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.findCartItem(sessionID, productID); ok {
		existing.Quantity += quantity
		s.cartItems[existing.ID] = existing
		return existing, nil
	}

	item := domain.CartItem{
		ID:        common.NewID(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	s.cartItems[item.ID] = item
	return item, nil
}

func (s *MemStore) UpdateCartItem(_ context.Context, id string, quantity int) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return domain.CartItem{}, store.ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return item, nil
}

func (s *MemStore) RemoveFromCart(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cartItems, id)
	return nil
}

func (s *MemStore) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

func (s *MemStore) CreateOrder(_ context.Context, input domain.OrderInput) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := domain.Order{
		ID:           common.NewID(),
		SessionID:    input.SessionID,
		Status:       domain.OrderStatusPending,
		CreatedAt:    s.now(),
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Items:        append(domain.OrderItemList{}, input.Items...),
		Subtotal:     input.Subtotal,
		Tax:          input.Tax,
		Total:        input.Total,
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *MemStore) GetOrder(_ context.Context, id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, store.ErrNotFound
	}
	return order, nil
}

func (s *MemStore) GetOrdersBySession(_ context.Context, sessionID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.SessionID == sessionID {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
