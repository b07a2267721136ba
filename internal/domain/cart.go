package domain

// CartItem is one product line in a session's cart. At most one row exists
// per (SessionID, ProductID) pair; adding the same product again increments
// Quantity instead of inserting a duplicate.
type CartItem struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	SessionID string `gorm:"size:64;index;not null;uniqueIndex:idx_cart_session_product" json:"sessionId"`
	ProductID string `gorm:"size:64;not null;uniqueIndex:idx_cart_session_product" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
