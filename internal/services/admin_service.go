// internal/services/admin_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/cache"
	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

// AdminService backs the back-office: catalog CRUD, order management,
// dashboard counters and the bulk slug migration.
type AdminService struct {
	db    *gorm.DB
	cache *cache.Cache // nil when Redis is not configured
}

func NewAdminService(db *gorm.DB, cache *cache.Cache) *AdminService {
	return &AdminService{db: db, cache: cache}
}

// invalidateListings drops cached catalog pages after a catalog mutation
// so visitors never see a stale listing longer than one request.
func (s *AdminService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "listing:*"); err != nil {
		logrus.WithError(err).Debug("listing cache invalidation failed")
	}
}

// DashboardStats is the landing-page counter block.
type DashboardStats struct {
	Products      int64   `json:"products"`
	Categories    int64   `json:"categories"`
	Orders        int64   `json:"orders"`
	PendingOrders int64   `json:"pendingOrders"`
	Users         int64   `json:"users"`
	Revenue       float64 `json:"revenue"`
}

func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Product{}).Count(&stats.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Model(&models.Category{}).Count(&stats.Categories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if err := db.Model(&models.Order{}).Count(&stats.Orders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}
	if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if err := db.Model(&models.Order{}).
		Where("status NOT IN ?", []models.OrderStatus{models.OrderStatusCancelled, models.OrderStatusReturned}).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.Revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return stats, nil
}

// ProductRequest carries the admin create/update payload. PromoPrice and
// InView are pointers so an absent field is left untouched on update.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required" validate:"required,min=1,max=255"`
	Description string   `json:"description"`
	SKU         string   `json:"sku" validate:"max=64"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	PromoPrice  *float64 `json:"promoPrice"`
	Currency    string   `json:"currency" validate:"omitempty,len=2|len=3"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock" validate:"gte=0"`
	IsActive    *bool    `json:"isActive"`
	InView      *bool    `json:"inView"`
	CategoryID  string   `json:"categoryId" validate:"omitempty,record_id"`
}

func (s *AdminService) ListProducts(ctx context.Context, page, limit int) ([]models.Product, utils.Pagination, error) {
	var products []models.Product
	var total int64

	db := s.db.WithContext(ctx).Model(&models.Product{})
	if err := db.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count products: %w", err)
	}

	err := utils.ApplyPagination(db.Preload("Category").Order("created_at DESC"), page, limit).
		Find(&products).Error
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list products: %w", err)
	}

	return products, utils.NewPagination(page, limit, total), nil
}

func (s *AdminService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if !utils.IsRecordID(id) {
		return nil, NewValidationError("id")
	}
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	if req.CategoryID != "" {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", req.CategoryID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if count == 0 {
			return nil, NewValidationError("categoryId")
		}
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		PromoPrice:  req.PromoPrice,
		Currency:    models.DefaultCurrency,
		Images:      pq.StringArray(req.Images),
		Stock:       req.Stock,
		IsActive:    true,
		InView:      req.InView,
		CategoryID:  req.CategoryID,
	}
	if req.Currency != "" {
		product.Currency = strings.ToUpper(req.Currency)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		used, err := usedProductSlugs(tx)
		if err != nil {
			return err
		}
		base := utils.Slugify(product.Name)
		if base == "" {
			base = utils.NewRecordID()
		}
		product.Slug = utils.UniqueSlug(base, used)
		return tx.Create(product).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateListings(ctx)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id string, req *ProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"sku":         req.SKU,
		"price":       req.Price,
		"stock":       req.Stock,
	}
	// Absent pointer fields stay as they are; a promo is cleared by
	// sending promoPrice: 0, not by omitting it.
	if req.PromoPrice != nil {
		updates["promo_price"] = req.PromoPrice
	}
	if req.InView != nil {
		updates["in_view"] = *req.InView
	}
	if req.Currency != "" {
		updates["currency"] = strings.ToUpper(req.Currency)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.CategoryID != "" {
		updates["category_id"] = req.CategoryID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Renaming a product re-derives its slug, keeping the current
		// one when it still fits.
		if strings.TrimSpace(req.Name) != product.Name {
			used, err := usedProductSlugs(tx)
			if err != nil {
				return err
			}
			assigned := utils.AssignSlugs([]utils.SlugRecord{
				{ID: product.ID, Name: req.Name, Current: product.Slug},
			}, used)
			updates["slug"] = assigned[product.ID]
		}
		return tx.Model(product).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidateListings(ctx)
	return s.GetProduct(ctx, id)
}

// DeleteProduct deactivates rather than removes: order items keep their
// snapshot and the row stays for history.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Model(product).Updates(map[string]interface{}{
		"is_active": false,
		"in_view":   false,
	}).Error
	if err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

// MigrateSlugs recomputes the slug of every product from its name in one
// transaction. Creation order fixes which duplicate gets the -2 suffix.
type MigrationResult struct {
	Total   int `json:"total"`
	Changed int `json:"changed"`
}

func (s *AdminService) MigrateSlugs(ctx context.Context) (*MigrationResult, error) {
	result := &MigrationResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		result.Total = len(products)

		used := make(map[string]bool, len(products))
		records := make([]utils.SlugRecord, 0, len(products))
		for _, p := range products {
			if p.Slug != "" {
				used[p.Slug] = true
			}
			records = append(records, utils.SlugRecord{ID: p.ID, Name: p.Name, Current: p.Slug})
		}

		assigned := utils.AssignSlugs(records, used)
		for _, p := range products {
			next := assigned[p.ID]
			if next == p.Slug {
				continue
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", p.ID).
				Update("slug", next).Error; err != nil {
				return fmt.Errorf("failed to update slug for %s: %w", p.ID, err)
			}
			result.Changed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return result, nil
}

// CategoryRequest is the admin category payload.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	ParentID    string `json:"parentId" validate:"omitempty,record_id"`
	SortOrder   int    `json:"sortOrder"`
	IsPromo     *bool  `json:"isPromo"`
	IsActive    *bool  `json:"isActive"`
}

func (s *AdminService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *AdminService) CreateCategory(ctx context.Context, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsPromo != nil {
		category.IsPromo = *req.IsPromo
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		used, err := usedCategorySlugs(tx)
		if err != nil {
			return err
		}
		base := utils.Slugify(category.Name)
		if base == "" {
			base = utils.NewRecordID()
		}
		category.Slug = utils.UniqueSlug(base, used)
		return tx.Create(category).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id string, req *CategoryRequest) (*models.Category, error) {
	if !utils.IsRecordID(id) {
		return nil, NewValidationError("id")
	}
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		fields := make([]string, 0)
		for _, ve := range utils.GetValidationErrors(err) {
			fields = append(fields, ve.Field)
		}
		return nil, NewValidationError(fields...)
	}

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"sort_order":  req.SortOrder,
	}
	if req.ParentID != "" {
		updates["parent_id"] = req.ParentID
	}
	if req.IsPromo != nil {
		updates["is_promo"] = *req.IsPromo
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if strings.TrimSpace(req.Name) != category.Name {
			used, err := usedCategorySlugs(tx)
			if err != nil {
				return err
			}
			assigned := utils.AssignSlugs([]utils.SlugRecord{
				{ID: category.ID, Name: req.Name, Current: category.Slug},
			}, used)
			updates["slug"] = assigned[category.ID]
		}
		return tx.Model(&category).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	if !utils.IsRecordID(id) {
		return NewValidationError("id")
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		return NewValidationError("id")
	}
	result := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) ListOrders(ctx context.Context, page, limit int, status string) ([]models.Order, utils.Pagination, error) {
	var orders []models.Order
	var total int64

	db := s.db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		if !models.OrderStatus(status).Valid() {
			return nil, utils.Pagination{}, NewValidationError("status")
		}
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count orders: %w", err)
	}

	err := utils.ApplyPagination(db.Preload("Items").Order("created_at DESC"), page, limit).
		Find(&orders).Error
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, utils.NewPagination(page, limit, total), nil
}

func (s *AdminService) ListNotifications(ctx context.Context, page, limit int) ([]models.AdminNotification, utils.Pagination, error) {
	var notifications []models.AdminNotification
	var total int64

	db := s.db.WithContext(ctx).Model(&models.AdminNotification{})
	if err := db.Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	err := utils.ApplyPagination(db.Order("created_at DESC"), page, limit).
		Find(&notifications).Error
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, utils.NewPagination(page, limit, total), nil
}

func (s *AdminService) MarkNotificationRead(ctx context.Context, id string) error {
	if !utils.IsRecordID(id) {
		return NewValidationError("id")
	}
	now := time.Now()
	result := s.db.WithContext(ctx).Model(&models.AdminNotification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", &now)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	return nil
}

func usedProductSlugs(tx *gorm.DB) (map[string]bool, error) {
	var slugs []string
	if err := tx.Model(&models.Product{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("failed to load product slugs: %w", err)
	}
	used := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		used[s] = true
	}
	return used, nil
}

func usedCategorySlugs(tx *gorm.DB) (map[string]bool, error) {
	var slugs []string
	if err := tx.Model(&models.Category{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("failed to load category slugs: %w", err)
	}
	used := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		used[s] = true
	}
	return used, nil
}
