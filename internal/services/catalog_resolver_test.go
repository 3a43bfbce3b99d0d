// internal/services/catalog_resolver_test.go
package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveListingNoRedirect(t *testing.T) {
	target, ok := ResolveListing(url.Values{})
	assert.False(t, ok)
	assert.Empty(t, target)

	target, ok = ResolveListing(url.Values{"page": {"2"}, "q": {"lampe"}})
	assert.False(t, ok)
	assert.Empty(t, target)
}

func TestResolveListingCategory(t *testing.T) {
	target, ok := ResolveListing(url.Values{"category": {"luminaires"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/categorie/luminaires", target)
}

func TestResolveListingCategoryKeepsOtherParams(t *testing.T) {
	target, ok := ResolveListing(url.Values{"category": {"luminaires"}, "page": {"3"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/categorie/luminaires?page=3", target)
}

func TestResolveListingCategoryNormalized(t *testing.T) {
	target, ok := ResolveListing(url.Values{"category": {"  Luminaires "}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/categorie/luminaires", target)
}

func TestResolveListingWishlist(t *testing.T) {
	target, ok := ResolveListing(url.Values{"wishlist": {"1"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/wishlist", target)
}

func TestResolveListingPromotions(t *testing.T) {
	target, ok := ResolveListing(url.Values{"promotions": {"1"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/promotions", target)
}

func TestResolveListingNouveautes(t *testing.T) {
	target, ok := ResolveListing(url.Values{"nouveautes": {"1"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/nouveautes", target)

	target, ok = ResolveListing(url.Values{"sort": {"latest"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/nouveautes", target)
}

func TestResolveListingNouveautesKeepsForeignSort(t *testing.T) {
	// Only sort=latest triggers the preset; another sort value is an
	// ordinary parameter and survives the redirect untouched.
	target, ok := ResolveListing(url.Values{"nouveautes": {"1"}, "sort": {"price"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/nouveautes?sort=price", target)

	target, ok = ResolveListing(url.Values{"nouveautes": {"1"}, "sort": {"latest"}})
	assert.True(t, ok)
	assert.Equal(t, "/boutique/nouveautes", target)
}

func TestResolveListingPriority(t *testing.T) {
	// Category beats every preset.
	target, ok := ResolveListing(url.Values{
		"category": {"luminaires"}, "wishlist": {"1"}, "promotions": {"1"},
	})
	assert.True(t, ok)
	assert.Contains(t, target, "/boutique/categorie/luminaires")

	// Wishlist beats promotions.
	target, ok = ResolveListing(url.Values{"wishlist": {"1"}, "promotions": {"1"}})
	assert.True(t, ok)
	assert.Contains(t, target, "/boutique/wishlist")
	assert.Contains(t, target, "promotions=1")

	// Promotions beats nouveautes.
	target, ok = ResolveListing(url.Values{"promotions": {"1"}, "nouveautes": {"1"}})
	assert.True(t, ok)
	assert.Contains(t, target, "/boutique/promotions")
}

func TestResolveListingFlagMustBeOne(t *testing.T) {
	_, ok := ResolveListing(url.Values{"wishlist": {"true"}})
	assert.False(t, ok)

	_, ok = ResolveListing(url.Values{"promotions": {"0"}})
	assert.False(t, ok)
}

func TestDetectPreset(t *testing.T) {
	assert.Equal(t, "wishlist", DetectPreset(url.Values{"wishlist": {"1"}, "promotions": {"1"}}))
	assert.Equal(t, "promotions", DetectPreset(url.Values{"promotions": {"1"}}))
	assert.Equal(t, "nouveautes", DetectPreset(url.Values{"sort": {"latest"}}))
	assert.Equal(t, "nouveautes", DetectPreset(url.Values{"nouveautes": {"1"}}))
	assert.Equal(t, "", DetectPreset(url.Values{}))
}
