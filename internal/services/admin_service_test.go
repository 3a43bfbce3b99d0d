// internal/services/admin_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/models"
)

func TestUpdateProductKeepsPromoWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)
	ctx := context.Background()

	promo := 39.9
	created, err := svc.CreateProduct(ctx, &ProductRequest{
		Name:       "Lampe promo",
		Price:      59.9,
		PromoPrice: &promo,
		Stock:      4,
	})
	require.NoError(t, err)

	// An update without promoPrice leaves the stored promo alone.
	_, err = svc.UpdateProduct(ctx, created.ID, &ProductRequest{
		Name:  "Lampe promo",
		Price: 54.9,
		Stock: 4,
	})
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", created.ID).Error)
	require.NotNil(t, got.PromoPrice)
	assert.Equal(t, 39.9, *got.PromoPrice)
	assert.Equal(t, 54.9, got.Price)

	// Zero is the explicit way to drop a promo.
	zero := 0.0
	_, err = svc.UpdateProduct(ctx, created.ID, &ProductRequest{
		Name:       "Lampe promo",
		Price:      54.9,
		PromoPrice: &zero,
		Stock:      4,
	})
	require.NoError(t, err)
	require.NoError(t, db.First(&got, "id = ?", created.ID).Error)
	assert.False(t, HasValidPromo(&got))
}

func TestUpdateProductRenameRederivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, nil)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &ProductRequest{
		Name:  "Lampe dorée",
		Price: 45,
		Stock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "lampe-doree", created.Slug)

	updated, err := svc.UpdateProduct(ctx, created.ID, &ProductRequest{
		Name:  "Lampe argentée",
		Price: 45,
		Stock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "lampe-argentee", updated.Slug)
}
