// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	RecordModel
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	SKU         string         `json:"sku" gorm:"size:64;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	PromoPrice  *float64       `json:"promo_price" gorm:"type:decimal(10,2)"`
	Currency    string         `json:"currency" gorm:"size:8;default:'DT'"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Stock       int            `json:"stock" gorm:"default:0"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	// InView is tri-state: nil counts as visible in the catalog.
	InView     *bool  `json:"in_view"`
	CategoryID string `json:"category_id" gorm:"size:15;index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

type Category struct {
	RecordModel
	Slug        string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	ParentID    string `json:"parent_id" gorm:"size:15;index"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`
	IsPromo     bool   `json:"is_promo" gorm:"default:false"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Parent   *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
