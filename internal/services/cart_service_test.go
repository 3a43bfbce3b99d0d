// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/models"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-10))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 50, ClampQuantity(50))
	assert.Equal(t, 99, ClampQuantity(99))
	assert.Equal(t, 99, ClampQuantity(100))
	assert.Equal(t, 99, ClampQuantity(10000))
}

func TestClampQuantityOnIncrement(t *testing.T) {
	// A cart holding 95 that receives +10 lands on the cap, not 105.
	assert.Equal(t, 99, ClampQuantity(95+10))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.0, round2(10))
	assert.Equal(t, 20.0, round2(19.999))
	assert.Equal(t, 0.1, round2(0.1+0.2-0.2))
	assert.Equal(t, 239.7, round2(3*79.9))
}

func TestAddToCartCreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()
	user := seedUser(t, db, "client@test.fr")
	product := seedProduct(t, db, "Lampe de chevet", 49.9, 10)

	item, err := svc.AddToCart(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// The same pair lands on the existing row instead of a second one.
	item, err = svc.AddToCart(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	var rows []models.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Quantity)
}

func TestAddToCartIncrementClampsAtCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()
	user := seedUser(t, db, "client@test.fr")
	product := seedProduct(t, db, "Miroir soleil", 75, 4)

	_, err := svc.AddToCart(ctx, user.ID, product.ID, 95)
	require.NoError(t, err)

	item, err := svc.AddToCart(ctx, user.ID, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 99, item.Quantity)
}

func TestAddToCartUnknownOrInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()
	user := seedUser(t, db, "client@test.fr")

	_, err := svc.AddToCart(ctx, user.ID, "aaaaaaaaaaaaaaa", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	hidden := seedProduct(t, db, "Ancien modele", 30, 2)
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)
	_, err = svc.AddToCart(ctx, user.ID, hidden.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemRejectsForeignOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.fr")
	other := seedUser(t, db, "other@test.fr")
	product := seedProduct(t, db, "Vase ceramique", 25, 5)

	item, err := svc.AddToCart(ctx, owner.ID, product.ID, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, other.ID, item.ID, 7)
	assert.ErrorIs(t, err, ErrForbidden)

	var row models.CartItem
	require.NoError(t, db.First(&row, "id = ?", item.ID).Error)
	assert.Equal(t, 2, row.Quantity)
}

func TestRemoveItemRejectsForeignOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@test.fr")
	other := seedUser(t, db, "other@test.fr")
	product := seedProduct(t, db, "Plaid laine", 40, 8)

	item, err := svc.AddToCart(ctx, owner.ID, product.ID, 1)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, other.ID, item.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The owner removes it; a second removal of the gone row is a no-op.
	require.NoError(t, svc.RemoveItem(ctx, owner.ID, item.ID))
	require.NoError(t, svc.RemoveItem(ctx, owner.ID, item.ID))
	require.NoError(t, db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.Zero(t, count)
}
