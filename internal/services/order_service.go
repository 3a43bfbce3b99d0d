// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type OrderService struct {
	db            *gorm.DB
	cfg           *config.Config
	notifications *NotificationService
}

func NewOrderService(db *gorm.DB, cfg *config.Config, notifications *NotificationService) *OrderService {
	return &OrderService{
		db:            db,
		cfg:           cfg,
		notifications: notifications,
	}
}

type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required,record_id"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	FirstName string           `json:"firstName" validate:"required,max=100"`
	LastName  string           `json:"lastName" validate:"required,max=100"`
	Email     string           `json:"email" validate:"required,email"`
	Phone     string           `json:"phone" validate:"required,max=30"`
	Address   string           `json:"address" validate:"required,max=500"`
	City      string           `json:"city" validate:"required,max=100"`
	Notes     string           `json:"notes" validate:"max=1000"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Products at or under this stock level when ordered get flagged to the
// back-office.
const lowStockThreshold = 5

// Create checks out a cart snapshot. Item names, skus and unit prices are
// copied from the live products at this moment; the order never references
// them again. After the transaction commits, an admin notification goes
// out best-effort in the background, with a low-stock flag for every
// ordered product running short.
func (s *OrderService) Create(ctx context.Context, userID string, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	order := &models.Order{
		UserID:    userID,
		IsGuest:   userID == "",
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Notes:     req.Notes,
		Currency:  s.cfg.Shop.Currency,
		Status:    models.OrderStatusPending,
	}

	var lowStock []models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))
		lowStock = lowStock[:0]

		for _, in := range req.Items {
			var product models.Product
			err := tx.Where("id = ? AND is_active = ?", in.ProductID, true).First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", in.ProductID, ErrNotFound)
			}
			if err != nil {
				return err
			}

			qty := ClampQuantity(in.Quantity)
			unit := EffectivePrice(&product)
			total += unit * float64(qty)

			if product.Stock <= lowStockThreshold {
				lowStock = append(lowStock, product)
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				SKU:       product.SKU,
				UnitPrice: unit,
				Quantity:  qty,
			})
		}

		order.Total = round2(total)
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		// Empty the buyer's cart once the order exists.
		if userID != "" {
			if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		go func() {
			s.notifications.NotifyNewOrder(order)
			for i := range lowStock {
				s.notifications.NotifyLowStock(&lowStock[i], lowStockThreshold)
			}
		}()
	}

	return order, nil
}

// Get returns one order; non-admin callers only see their own.
func (s *OrderService) Get(ctx context.Context, userID, orderID string, isAdmin bool) (*models.Order, error) {
	if !utils.IsRecordID(orderID) {
		return nil, NewValidationError("orderId")
	}

	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").Where("id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrForbidden)
	}
	return &order, nil
}

// ListForUser returns the caller's order history.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus is the only mutation an order accepts after creation.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !utils.IsRecordID(orderID) {
		return nil, NewValidationError("orderId")
	}
	if !status.Valid() {
		return nil, NewValidationError("status")
	}

	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}
