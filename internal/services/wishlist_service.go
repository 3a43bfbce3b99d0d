// internal/services/wishlist_service.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// List returns the caller's favorited products.
func (s *WishlistService) List(ctx context.Context, userID string) ([]ProductView, error) {
	var rows []models.Wishlist
	if err := s.db.WithContext(ctx).
		Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(rows))
	for i := range rows {
		if rows[i].Product == nil {
			continue
		}
		views = append(views, newProductView(rows[i].Product, InStock(rows[i].Product)))
	}
	return views, nil
}

// Toggle flips the favorited state of (user, product) and returns the
// resulting state. The existence lookup and the mutation are not atomic;
// a concurrent double-toggle can make both callers observe the same
// state, so a delete of an already-deleted row is treated as a no-op.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if !utils.IsRecordID(productID) {
		return false, NewValidationError("productId")
	}

	var row models.Wishlist
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.Wishlist{UserID: userID, ProductID: productID}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return false, err
	}
	return false, nil
}

// Contains answers the favorited question for one product. A missing row
// is a normal negative result.
func (s *WishlistService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	if !utils.IsRecordID(productID) {
		return false, NewValidationError("productId")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
