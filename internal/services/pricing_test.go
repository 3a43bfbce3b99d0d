// internal/services/pricing_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminadeco/boutique-backend/internal/models"
)

func promo(v float64) *float64 { return &v }

func TestHasValidPromo(t *testing.T) {
	assert.False(t, HasValidPromo(&models.Product{Price: 100}))
	assert.False(t, HasValidPromo(&models.Product{Price: 100, PromoPrice: promo(0)}))
	assert.False(t, HasValidPromo(&models.Product{Price: 100, PromoPrice: promo(-5)}))
	assert.False(t, HasValidPromo(&models.Product{Price: 100, PromoPrice: promo(100)}))
	assert.False(t, HasValidPromo(&models.Product{Price: 100, PromoPrice: promo(150)}))
	assert.True(t, HasValidPromo(&models.Product{Price: 100, PromoPrice: promo(79.9)}))
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 100.0, EffectivePrice(&models.Product{Price: 100}))
	assert.Equal(t, 79.9, EffectivePrice(&models.Product{Price: 100, PromoPrice: promo(79.9)}))
	// An invalid promo never lowers the price.
	assert.Equal(t, 100.0, EffectivePrice(&models.Product{Price: 100, PromoPrice: promo(120)}))
	assert.Equal(t, 100.0, EffectivePrice(&models.Product{Price: 100, PromoPrice: promo(0)}))
}

func TestEffectivePriceNeverExceedsPrice(t *testing.T) {
	products := []models.Product{
		{Price: 49.5},
		{Price: 49.5, PromoPrice: promo(39.0)},
		{Price: 49.5, PromoPrice: promo(60.0)},
		{Price: 49.5, PromoPrice: promo(-1)},
	}
	for _, p := range products {
		assert.LessOrEqual(t, EffectivePrice(&p), p.Price)
	}
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 0, DiscountPercent(&models.Product{Price: 100}))
	assert.Equal(t, 0, DiscountPercent(&models.Product{Price: 100, PromoPrice: promo(120)}))
	assert.Equal(t, 20, DiscountPercent(&models.Product{Price: 100, PromoPrice: promo(80)}))
	// Rounded, not truncated.
	assert.Equal(t, 33, DiscountPercent(&models.Product{Price: 150, PromoPrice: promo(100)}))
	assert.Equal(t, 67, DiscountPercent(&models.Product{Price: 150, PromoPrice: promo(50)}))
}

func TestInStock(t *testing.T) {
	assert.False(t, InStock(&models.Product{Stock: 0}))
	assert.False(t, InStock(&models.Product{Stock: -3}))
	assert.True(t, InStock(&models.Product{Stock: 1}))
}

func TestBuildStockMapCoversEveryID(t *testing.T) {
	ids := []string{"aaa", "bbb", "ccc"}
	stocks := map[string]int{"aaa": 5, "ccc": 0}

	result := buildStockMap(ids, stocks)

	assert.Len(t, result, 3)
	assert.True(t, result["aaa"])
	// Unknown id: present, false.
	assert.False(t, result["bbb"])
	assert.False(t, result["ccc"])
}

func TestBuildStockMapEmpty(t *testing.T) {
	result := buildStockMap(nil, nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
