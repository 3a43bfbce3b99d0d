// internal/services/wishlist_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/models"
)

func TestToggleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	ctx := context.Background()
	user := seedUser(t, db, "fan@test.fr")
	product := seedProduct(t, db, "Suspension rotin", 89, 3)

	favorited, err := svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	contains, err := svc.Contains(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, contains)

	favorited, err = svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	contains, err = svc.Contains(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, contains)

	var count int64
	require.NoError(t, db.Model(&models.Wishlist{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestToggleIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	ctx := context.Background()
	first := seedUser(t, db, "first@test.fr")
	second := seedUser(t, db, "second@test.fr")
	product := seedProduct(t, db, "Cadre dore", 19, 6)

	_, err := svc.Toggle(ctx, first.ID, product.ID)
	require.NoError(t, err)

	contains, err := svc.Contains(ctx, second.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, contains)

	favorited, err := svc.Toggle(ctx, second.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	var count int64
	require.NoError(t, db.Model(&models.Wishlist{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestToggleRejectsMalformedProductID(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)

	_, err := svc.Toggle(context.Background(), "aaaaaaaaaaaaaaa", "not-an-id")
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "productId")
}

func TestWishlistListReturnsFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	ctx := context.Background()
	user := seedUser(t, db, "fan@test.fr")
	lamp := seedProduct(t, db, "Lampe arc", 150, 1)
	rug := seedProduct(t, db, "Tapis jute", 60, 0)

	_, err := svc.Toggle(ctx, user.ID, lamp.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, user.ID, rug.ID)
	require.NoError(t, err)

	views, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	names := []string{views[0].Name, views[1].Name}
	assert.ElementsMatch(t, []string{"Lampe arc", "Tapis jute"}, names)
	for _, v := range views {
		if v.Name == "Tapis jute" {
			assert.False(t, v.InStock)
		}
	}
}
