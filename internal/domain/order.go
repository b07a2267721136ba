package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// OrderStatus tracks an order through fulfilment. The API only ever assigns
// pending; the remaining states exist for back-office status transitions.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// OrderItem is a price-frozen snapshot of one cart line at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is created once from the cart snapshot plus the submitted shipping
// and contact fields, and is immutable afterwards except for Status.
type Order struct {
	ID           string        `gorm:"primaryKey;size:64" json:"id"`
	SessionID    string        `gorm:"size:64;index;not null" json:"sessionId"`
	Status       OrderStatus   `gorm:"size:32;not null" json:"status"`
	CreatedAt    time.Time     `gorm:"not null" json:"createdAt"`
	CustomerName string        `gorm:"size:200;not null" json:"customerName"`
	Email        string        `gorm:"size:200;not null" json:"email"`
	Phone        string        `gorm:"size:64;not null" json:"phone"`
	Address      string        `gorm:"size:500;not null" json:"address"`
	City         string        `gorm:"size:128;not null" json:"city"`
	State        string        `gorm:"size:128;not null" json:"state"`
	ZipCode      string        `gorm:"size:32;not null" json:"zipCode"`
	Items        OrderItemList `gorm:"type:jsonb;not null" json:"items"`
	Subtotal     float64       `gorm:"not null" json:"subtotal"`
	Tax          float64       `gorm:"not null" json:"tax"`
	Total        float64       `gorm:"not null" json:"total"`
}

// OrderInput carries the caller-supplied fields for order creation. The
// store assigns ID, Status and CreatedAt; the money fields are persisted
// verbatim from the client's cart snapshot.
type OrderInput struct {
	SessionID    string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Items        []OrderItem
	Subtotal     float64
	Tax          float64
	Total        float64
}

// ItemsSubtotal sums quantity times unit price over the snapshot lines.
func (in OrderInput) ItemsSubtotal() float64 {
	var sum float64
	for _, item := range in.Items {
		sum += float64(item.Quantity) * item.Price
	}
	return sum
}

// OrderItemList stores the order snapshot lines as a jsonb column.
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		l = OrderItemList{}
	}
	return jsoniter.MarshalToString(l)
}

func (l *OrderItemList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return jsoniter.Unmarshal(v, l)
	case string:
		return jsoniter.UnmarshalFromString(v, l)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
