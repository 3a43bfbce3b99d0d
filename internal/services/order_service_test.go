// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/models"
)

func testShopConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Shop.Currency = models.DefaultCurrency
	return cfg
}

func TestCreateOrderSnapshotsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, testShopConfig(), nil)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@test.fr")
	lamp := seedProduct(t, db, "Lampe sur pied", 79.9, 10)
	vase := seedProduct(t, db, "Vase opaline", 20, 3)
	require.NoError(t, db.Model(vase).Update("promo_price", 15.0).Error)

	_, err := NewCartService(db).AddToCart(ctx, user.ID, lamp.ID, 2)
	require.NoError(t, err)

	order, err := svc.Create(ctx, user.ID, &CreateOrderRequest{
		FirstName: "Amel",
		LastName:  "B",
		Email:     "buyer@test.fr",
		Phone:     "12345678",
		Address:   "5 rue des Oliviers",
		City:      "Tunis",
		Items: []OrderItemInput{
			{ProductID: lamp.ID, Quantity: 2},
			{ProductID: vase.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 174.8, order.Total, 0.001)
	assert.Equal(t, models.DefaultCurrency, order.Currency)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	// Unit prices are the effective prices at checkout, promo included.
	for _, item := range order.Items {
		if item.ProductID == vase.ID {
			assert.Equal(t, 15.0, item.UnitPrice)
			assert.Equal(t, "Vase opaline", item.Name)
		}
	}

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestCreateOrderGuest(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, testShopConfig(), nil)
	lamp := seedProduct(t, db, "Applique laiton", 35, 7)

	order, err := svc.Create(context.Background(), "", &CreateOrderRequest{
		FirstName: "Karim",
		LastName:  "T",
		Email:     "karim@test.fr",
		Phone:     "98765432",
		Address:   "12 avenue Habib Bourguiba",
		City:      "Sousse",
		Items:     []OrderItemInput{{ProductID: lamp.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, order.IsGuest)
	assert.Empty(t, order.UserID)
}

func TestCreateOrderValidatesContact(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, testShopConfig(), nil)
	lamp := seedProduct(t, db, "Lanterne", 22, 5)

	_, err := svc.Create(context.Background(), "", &CreateOrderRequest{
		FirstName: "Amel",
		LastName:  "B",
		Email:     "not-an-email",
		Address:   "5 rue des Oliviers",
		City:      "Tunis",
		Items:     []OrderItemInput{{ProductID: lamp.ID, Quantity: 1}},
	})
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "phone")
}

func TestGetOrderOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, testShopConfig(), nil)
	ctx := context.Background()
	buyer := seedUser(t, db, "buyer@test.fr")
	other := seedUser(t, db, "other@test.fr")
	lamp := seedProduct(t, db, "Guirlande", 18, 9)

	order, err := svc.Create(ctx, buyer.ID, &CreateOrderRequest{
		FirstName: "Amel", LastName: "B", Email: "buyer@test.fr",
		Phone: "12345678", Address: "5 rue des Oliviers", City: "Tunis",
		Items: []OrderItemInput{{ProductID: lamp.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other.ID, order.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins bypass the ownership check.
	got, err := svc.Get(ctx, other.ID, order.ID, true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
