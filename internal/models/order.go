// internal/models/order.go
package models

type Order struct {
	RecordModel
	UserID    string      `json:"user_id" gorm:"size:15;index"`
	IsGuest   bool        `json:"is_guest" gorm:"default:false"`
	FirstName string      `json:"first_name" gorm:"size:100;not null"`
	LastName  string      `json:"last_name" gorm:"size:100;not null"`
	Email     string      `json:"email" gorm:"size:255;not null"`
	Phone     string      `json:"phone" gorm:"size:30;not null"`
	Address   string      `json:"address" gorm:"size:500;not null"`
	City      string      `json:"city" gorm:"size:100;not null"`
	Notes     string      `json:"notes" gorm:"type:text"`
	Total     float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Currency  string      `json:"currency" gorm:"size:8;default:'DT'"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a snapshot taken at checkout, never a live product
// reference. Name, sku and unit price are copied so later catalog edits
// do not rewrite history.
type OrderItem struct {
	RecordModel
	OrderID   string  `json:"order_id" gorm:"size:15;not null;index"`
	ProductID string  `json:"product_id" gorm:"size:15;not null"`
	Name      string  `json:"name" gorm:"size:255;not null"`
	SKU       string  `json:"sku" gorm:"size:64"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}
