// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/utils"
)

// RecordModel is embedded by every persisted entity. Record ids are
// 15-char alphanumeric tokens, assigned on create.
type RecordModel struct {
	ID        string    `json:"id" gorm:"primaryKey;size:15"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *RecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.NewRecordID()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"
)

type OrderStatus string

// Status spellings are part of the back-office contract and must not be
// normalized.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusDelevering OrderStatus = "delevering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusOnHold     OrderStatus = "on hold"
	OrderStatusReturned   OrderStatus = "returned"
)

var orderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusConfirmed:  true,
	OrderStatusDelevering: true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusOnHold:     true,
	OrderStatusReturned:   true,
}

func (s OrderStatus) Valid() bool {
	return orderStatuses[s]
}

// DefaultCurrency is the storefront currency code.
const DefaultCurrency = "DT"
