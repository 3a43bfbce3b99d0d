// internal/services/pricing.go
package services

import (
	"math"

	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/models"
)

// Promo and price rules are pure functions over raw numeric fields so the
// listing, detail and order paths all agree on what a product costs.

func HasValidPromo(p *models.Product) bool {
	return p.PromoPrice != nil && *p.PromoPrice > 0 && *p.PromoPrice < p.Price
}

func EffectivePrice(p *models.Product) float64 {
	if HasValidPromo(p) {
		return *p.PromoPrice
	}
	return p.Price
}

func DiscountPercent(p *models.Product) int {
	if !HasValidPromo(p) {
		return 0
	}
	return int(math.Round(((p.Price - *p.PromoPrice) / p.Price) * 100))
}

func InStock(p *models.Product) bool {
	return p.Stock > 0
}

// buildStockMap maps every requested id to its in-stock state. Ids that
// resolved to nothing are present with false; the result always covers
// each requested id exactly once.
func buildStockMap(ids []string, stocks map[string]int) map[string]bool {
	result := make(map[string]bool, len(ids))
	for _, id := range ids {
		result[id] = stocks[id] > 0
	}
	return result
}

// StockMap batch-resolves in-stock booleans for a set of product ids.
// Unknown ids come back false rather than erroring.
func StockMap(db *gorm.DB, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	var rows []struct {
		ID    string
		Stock int
	}
	if err := db.Model(&models.Product{}).
		Select("id", "stock").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	stocks := make(map[string]int, len(rows))
	for _, r := range rows {
		stocks[r.ID] = r.Stock
	}
	return buildStockMap(ids, stocks), nil
}
