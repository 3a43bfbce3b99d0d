// internal/models/cart.go
package models

// CartItem holds one conceptual row per (user, product) pair. The pair is
// not enforced by a database constraint; the cart service upholds it with
// find-or-create-then-increment semantics.
type CartItem struct {
	RecordModel
	UserID    string `json:"user_id" gorm:"size:15;not null;index"`
	ProductID string `json:"product_id" gorm:"size:15;not null;index"`
	Quantity  int    `json:"quantity" gorm:"not null;default:1"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Wishlist existence is itself the favorited signal.
type Wishlist struct {
	RecordModel
	UserID    string `json:"user_id" gorm:"size:15;not null;index"`
	ProductID string `json:"product_id" gorm:"size:15;not null;index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
