// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

// Cart quantities are stored clamped to this window.
const (
	MinCartQuantity = 1
	MaxCartQuantity = 99
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// ClampQuantity forces a quantity into [1,99] before storage.
func ClampQuantity(q int) int {
	if q < MinCartQuantity {
		return MinCartQuantity
	}
	if q > MaxCartQuantity {
		return MaxCartQuantity
	}
	return q
}

type CartItemView struct {
	ID       string      `json:"id"`
	Quantity int         `json:"quantity"`
	Product  ProductView `json:"product"`
}

// List returns the caller's cart with live product data.
func (s *CartService) List(ctx context.Context, userID string) ([]CartItemView, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).
		Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]CartItemView, 0, len(items))
	for i := range items {
		if items[i].Product == nil {
			continue
		}
		views = append(views, CartItemView{
			ID:       items[i].ID,
			Quantity: items[i].Quantity,
			Product:  newProductView(items[i].Product, InStock(items[i].Product)),
		})
	}
	return views, nil
}

// AddToCart upserts the (user, product) row: absent creates it with the
// clamped quantity, present adds to the existing quantity and clamps the
// sum. The read-modify-write is unguarded; concurrent adds from the same
// account are last-write-wins.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if !utils.IsRecordID(productID) {
		return nil, NewValidationError("productId")
	}

	var product models.Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", productID, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  ClampQuantity(quantity),
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity = ClampQuantity(item.Quantity + quantity)
	if err := s.db.WithContext(ctx).Model(&item).Update("quantity", item.Quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem changes the quantity of a cart row after verifying the
// caller owns it.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*models.CartItem, error) {
	if !utils.IsRecordID(itemID) {
		return nil, NewValidationError("itemId")
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if item.UserID != userID {
		return nil, fmt.Errorf("cart item %s: %w", itemID, ErrForbidden)
	}

	item.Quantity = ClampQuantity(quantity)
	if err := s.db.WithContext(ctx).Model(&item).Update("quantity", item.Quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes a cart row after the ownership check. A row that is
// already gone is a no-op, not an error: concurrent removals race and the
// second one must not surface a failure.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if !utils.IsRecordID(itemID) {
		return NewValidationError("itemId")
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return fmt.Errorf("cart item %s: %w", itemID, ErrForbidden)
	}

	return s.db.WithContext(ctx).Delete(&item).Error
}
