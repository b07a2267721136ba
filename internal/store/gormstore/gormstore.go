// Package gormstore is the relational backend, Postgres through GORM.
// Every facade operation translates to a single-table statement; the API
// layer joins CartItem to Product on its own after fetching each.
package gormstore

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tindahanph/bottleshop/internal/domain"
	"github.com/tindahanph/bottleshop/internal/store"
	"github.com/tindahanph/bottleshop/pkg/common"
)

// GormStore implements store.Store over a pooled Postgres connection.
type GormStore struct {
	db *gorm.DB
}

var _ store.Store = (*GormStore)(nil)

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate maps gorm's absence error onto the facade sentinel and wraps
// everything else as an infrastructure failure.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return pkgerrors.Wrap(err, op)
}

func (s *GormStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []domain.Category
	err := s.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, translate(err, "list categories")
}

func (s *GormStore) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	var row domain.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	return row, translate(err, "get category")
}

func (s *GormStore) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := s.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, translate(err, "list products")
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var row domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	return row, translate(err, "get product")
}

func (s *GormStore) GetProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var rows []domain.Product
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&rows).Error
	return rows, translate(err, "list products by category")
}

func (s *GormStore) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := s.db.WithContext(ctx).Where("is_featured = ?", true).Order("id").Find(&rows).Error
	return rows, translate(err, "list featured products")
}

func (s *GormStore) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + query + "%"
	var rows []domain.Product
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&rows).Error
	return rows, translate(err, "search products")
}

func (s *GormStore) GetCart(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	var rows []domain.CartItem
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id").Find(&rows).Error
	return rows, translate(err, "get cart")
}

func (s *GormStore) GetCartItem(ctx context.Context, sessionID, productID string) (domain.CartItem, error) {
	var row domain.CartItem
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&row).Error
	return row, translate(err, "get cart item")
}

// AddToCart is a single conditional upsert against the unique
// (session_id, product_id) index: an existing row has its quantity
// incremented, otherwise the fresh row is inserted. Concurrent identical
// requests therefore merge instead of racing into duplicate rows.
func (s *GormStore) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (domain.CartItem, error) {
	item := domain.CartItem{
		ID:        common.NewID(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				}),
			},
			clause.Returning{},
		).
		Create(&item).Error
	return item, translate(err, "add to cart")
}

func (s *GormStore) UpdateCartItem(ctx context.Context, id string, quantity int) (domain.CartItem, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return domain.CartItem{}, translate(res.Error, "update cart item")
	}
	if res.RowsAffected == 0 {
		return domain.CartItem{}, store.ErrNotFound
	}
	var row domain.CartItem
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	return row, translate(err, "update cart item")
}

func (s *GormStore) RemoveFromCart(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CartItem{}).Error
	return translate(err, "remove from cart")
}

func (s *GormStore) ClearCart(ctx context.Context, sessionID string) error {
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&domain.CartItem{}).Error
	return translate(err, "clear cart")
}

// CreateOrder persists the caller's snapshot verbatim; subtotal, tax and
// total are trusted from the client and not recomputed here.
func (s *GormStore) CreateOrder(ctx context.Context, input domain.OrderInput) (domain.Order, error) {
	order := domain.Order{
		ID:           common.NewID(),
		SessionID:    input.SessionID,
		Status:       domain.OrderStatusPending,
		CreatedAt:    nowUTC(),
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
	err := s.db.WithContext(ctx).Create(&order).Error
	return order, translate(err, "create order")
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var row domain.Order
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	return row, translate(err, "get order")
}

func (s *GormStore) GetOrdersBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	var rows []domain.Order
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, translate(err, "list orders by session")
}
