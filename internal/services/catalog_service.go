// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/cache"
	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type CatalogService struct {
	db    *gorm.DB
	cache *cache.Cache // nil when Redis is not configured
	cfg   *config.Config
}

func NewCatalogService(db *gorm.DB, cache *cache.Cache, cfg *config.Config) *CatalogService {
	return &CatalogService{
		db:    db,
		cache: cache,
		cfg:   cfg,
	}
}

// ListParams is the normalized form of an untrusted listing query.
type ListParams struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Query      string `json:"q,omitempty"`
	Category   string `json:"category,omitempty"`
	Sort       string `json:"sort,omitempty"`
	Promotions bool   `json:"promotions,omitempty"`
	Nouveautes bool   `json:"nouveautes,omitempty"`
	Wishlist   bool   `json:"wishlist,omitempty"`
}

const maxQueryLength = 100

// ParseListParams validates raw query values. Violations accumulate into
// a ValidationError naming every bad field. The only silent coercions are
// the documented ones: limit clamps to maxLimit and category lowercases
// before the pattern check. Flags count as set only when equal to "1".
func ParseListParams(query url.Values, maxLimit int) (ListParams, error) {
	params := ListParams{Page: 1, Limit: maxLimit}
	var fields []string

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields = append(fields, "page")
		} else {
			params.Page = page
		}
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fields = append(fields, "limit")
		} else {
			if limit > maxLimit {
				limit = maxLimit
			}
			params.Limit = limit
		}
	}

	if raw := strings.TrimSpace(query.Get("q")); raw != "" {
		if len(raw) > maxQueryLength {
			fields = append(fields, "q")
		} else {
			params.Query = raw
		}
	}

	if raw := query.Get("category"); raw != "" {
		slug := strings.ToLower(strings.TrimSpace(raw))
		if !utils.IsCategorySlug(slug) {
			fields = append(fields, "category")
		} else {
			params.Category = slug
		}
	}

	switch query.Get("sort") {
	case "", "latest":
		params.Sort = query.Get("sort")
	default:
		fields = append(fields, "sort")
	}

	params.Promotions = query.Get("promotions") == "1"
	params.Nouveautes = query.Get("nouveautes") == "1"
	params.Wishlist = query.Get("wishlist") == "1"

	if len(fields) > 0 {
		return ListParams{}, NewValidationError(fields...)
	}
	return params, nil
}

// CategoryInfo carries the metadata a listing page needs for titling.
type CategoryInfo struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProductView struct {
	ID              string        `json:"id"`
	Slug            string        `json:"slug"`
	SKU             string        `json:"sku"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Price           float64       `json:"price"`
	PromoPrice      *float64      `json:"promoPrice"`
	EffectivePrice  float64       `json:"effectivePrice"`
	DiscountPercent int           `json:"discountPercent"`
	HasPromo        bool          `json:"hasPromo"`
	Currency        string        `json:"currency"`
	Images          []string      `json:"images"`
	InStock         bool          `json:"inStock"`
	Category        *CategoryInfo `json:"category,omitempty"`
}

type ListingResult struct {
	Products       []ProductView    `json:"products"`
	Pagination     utils.Pagination `json:"pagination"`
	ActiveCategory *CategoryInfo    `json:"activeCategory"`
}

func newProductView(p *models.Product, inStock bool) ProductView {
	v := ProductView{
		ID:              p.ID,
		Slug:            p.Slug,
		SKU:             p.SKU,
		Name:            p.Name,
		Price:           p.Price,
		PromoPrice:      p.PromoPrice,
		EffectivePrice:  EffectivePrice(p),
		DiscountPercent: DiscountPercent(p),
		HasPromo:        HasValidPromo(p),
		Currency:        p.Currency,
		Images:          []string(p.Images),
		InStock:         inStock,
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if p.Category != nil {
		v.Category = &CategoryInfo{
			ID:          p.Category.ID,
			Slug:        p.Category.Slug,
			Name:        p.Category.Name,
			Description: p.Category.Description,
		}
	}
	return v
}

// List runs a validated listing query. The visitor-facing catalog never
// hard-fails: when the database is unreachable it degrades to the last
// cached copy of this listing, or to an empty page.
func (s *CatalogService) List(ctx context.Context, params ListParams, userID string) (*ListingResult, error) {
	// Shops configured with a baseline category scope the bare listing
	// to it; this is the one documented coercion of a missing parameter.
	if params.Category == "" && s.cfg.Shop.BaselineCatSlug != "" {
		params.Category = s.cfg.Shop.BaselineCatSlug
	}

	var active *CategoryInfo
	if params.Category != "" {
		var cat models.Category
		err := s.db.WithContext(ctx).
			Where("slug = ? AND is_active = ?", params.Category, true).
			First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q: %w", params.Category, ErrNotFound)
		}
		if err != nil {
			return s.degradedListing(ctx, params, err), nil
		}
		active = &CategoryInfo{ID: cat.ID, Slug: cat.Slug, Name: cat.Name, Description: cat.Description}
	}

	// The wishlist preset shows nothing to visitors without a session.
	if params.Wishlist && userID == "" {
		return &ListingResult{
			Products:       []ProductView{},
			Pagination:     utils.NewPagination(params.Page, params.Limit, 0),
			ActiveCategory: active,
		}, nil
	}

	query := s.listQuery(ctx, params, userID, active)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return s.degradedListing(ctx, params, err), nil
	}

	var products []models.Product
	err := utils.ApplyPagination(query, params.Page, params.Limit).
		Preload("Category").
		Find(&products).Error
	if err != nil {
		return s.degradedListing(ctx, params, err), nil
	}

	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	stocks, err := StockMap(s.db.WithContext(ctx), ids)
	if err != nil {
		return s.degradedListing(ctx, params, err), nil
	}

	views := make([]ProductView, len(products))
	for i := range products {
		views[i] = newProductView(&products[i], stocks[products[i].ID])
	}

	result := &ListingResult{
		Products:       views,
		Pagination:     utils.NewPagination(params.Page, params.Limit, total),
		ActiveCategory: active,
	}

	s.storeListing(ctx, params, result)
	return result, nil
}

func (s *CatalogService) listQuery(ctx context.Context, params ListParams, userID string, active *CategoryInfo) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ?", true).
		Where("in_view IS NULL OR in_view = ?", true)

	if active != nil {
		query = query.Where("category_id = ?", active.ID)
	}

	if params.Query != "" {
		like := "%" + strings.ToLower(params.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if params.Promotions {
		query = query.Where("promo_price IS NOT NULL AND promo_price > 0 AND promo_price < price")
	}

	if params.Wishlist && userID != "" {
		query = query.Where("id IN (?)",
			s.db.Model(&models.Wishlist{}).Select("product_id").Where("user_id = ?", userID))
	}

	return query.Order("created_at DESC")
}

// GetProductBySlug returns the detail view of one visible product.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*ProductView, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, NewValidationError("slug")
	}

	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND is_active = ? AND (in_view IS NULL OR in_view = ?)", slug, true, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	view := newProductView(&product, InStock(&product))
	view.Description = product.Description
	return &view, nil
}

// Categories lists active categories in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]CategoryInfo, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	infos := make([]CategoryInfo, len(categories))
	for i, c := range categories {
		infos[i] = CategoryInfo{ID: c.ID, Slug: c.Slug, Name: c.Name, Description: c.Description}
	}
	return infos, nil
}

func listingCacheKey(params ListParams) string {
	return fmt.Sprintf("listing:p=%d:l=%d:q=%s:c=%s:promo=%t:new=%t:sort=%s",
		params.Page, params.Limit, params.Query, params.Category,
		params.Promotions, params.Nouveautes, params.Sort)
}

func (s *CatalogService) storeListing(ctx context.Context, params ListParams, result *ListingResult) {
	// Wishlist listings are per-user and never cached.
	if s.cache == nil || params.Wishlist {
		return
	}
	if err := s.cache.Set(ctx, listingCacheKey(params), result); err != nil {
		logrus.WithError(err).Debug("listing cache store failed")
	}
}

func (s *CatalogService) degradedListing(ctx context.Context, params ListParams, cause error) *ListingResult {
	logrus.WithError(cause).Error("catalog listing degraded")

	if s.cache != nil && !params.Wishlist {
		var cached ListingResult
		if hit, err := s.cache.Get(ctx, listingCacheKey(params), &cached); err == nil && hit {
			return &cached
		}
	}

	return &ListingResult{
		Products:   []ProductView{},
		Pagination: utils.NewPagination(params.Page, params.Limit, 0),
	}
}
