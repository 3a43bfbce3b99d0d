// internal/services/address_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type AddressService struct {
	db *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

type AddressRequest struct {
	Label     string `json:"label" validate:"max=100"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=30"`
	Street    string `json:"street" validate:"required,max=500"`
	City      string `json:"city" validate:"required,max=100"`
	ZipCode   string `json:"zipCode" validate:"max=20"`
	IsDefault bool   `json:"isDefault"`
}

func (s *AddressService) List(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *AddressService) Create(ctx context.Context, userID string, req *AddressRequest) (*models.Address, error) {
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	address := &models.Address{
		UserID:    userID,
		Label:     req.Label,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		ZipCode:   req.ZipCode,
		IsDefault: req.IsDefault,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Update mutates one saved address after the same ownership check the
// cart uses: fetch, compare the owning user, then write.
func (s *AddressService) Update(ctx context.Context, userID, addressID string, req *AddressRequest) (*models.Address, error) {
	if !utils.IsRecordID(addressID) {
		return nil, NewValidationError("addressId")
	}
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	var address models.Address
	err := s.db.WithContext(ctx).Where("id = ?", addressID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if address.UserID != userID {
		return nil, fmt.Errorf("address %s: %w", addressID, ErrForbidden)
	}

	updates := map[string]interface{}{
		"label":      req.Label,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"street":     req.Street,
		"city":       req.City,
		"zip_code":   req.ZipCode,
		"is_default": req.IsDefault,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", userID, addressID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (s *AddressService) Delete(ctx context.Context, userID, addressID string) error {
	if !utils.IsRecordID(addressID) {
		return NewValidationError("addressId")
	}

	var address models.Address
	err := s.db.WithContext(ctx).Where("id = ?", addressID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if address.UserID != userID {
		return fmt.Errorf("address %s: %w", addressID, ErrForbidden)
	}

	return s.db.WithContext(ctx).Delete(&address).Error
}
