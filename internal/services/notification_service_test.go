// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/models"
)

func TestNotifyLowStockWritesNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, &config.Config{})
	product := seedProduct(t, db, "Bougie parfumee", 12, 2)

	svc.NotifyLowStock(product, 5)

	var rows []models.AdminNotification
	require.NoError(t, db.Where("type = ?", "low_stock").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Stock faible", rows[0].Title)
	assert.Contains(t, rows[0].Message, "Bougie parfumee")
	assert.Contains(t, rows[0].Message, "2")
}

func TestNotifyNewOrderWritesNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, &config.Config{})

	svc.NotifyNewOrder(&models.Order{
		FirstName: "Amel",
		LastName:  "B",
		Total:     174.8,
		Currency:  models.DefaultCurrency,
		City:      "Tunis",
	})

	var rows []models.AdminNotification
	require.NoError(t, db.Where("type = ?", "new_order").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Nouvelle commande", rows[0].Title)
	assert.Contains(t, rows[0].Message, "Amel")
}
