// internal/services/notification_service.go
package services

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/models"
)

// NotificationService feeds the back-office notification list and,
// when SMTP is configured, mails the shop admin. Everything here is
// best-effort: a notification that cannot be written or sent is logged
// and dropped, it never fails the operation that triggered it.
type NotificationService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewNotificationService(db *gorm.DB, cfg *config.Config) *NotificationService {
	return &NotificationService{
		db:  db,
		cfg: cfg,
	}
}

// NotifyNewOrder announces a fresh order to the back-office. Runs in its
// own goroutine after checkout commits.
func (s *NotificationService) NotifyNewOrder(order *models.Order) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("order_id", order.ID).Errorf("order notification panicked: %v", r)
		}
	}()

	notification := &models.AdminNotification{
		Type:    "new_order",
		Title:   "Nouvelle commande",
		Message: fmt.Sprintf("Commande de %s %s, total %.2f %s", order.FirstName, order.LastName, order.Total, order.Currency),
		Data: models.JSONB{
			"order_id": order.ID,
			"total":    order.Total,
			"city":     order.City,
		},
	}

	if err := s.db.Create(notification).Error; err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("failed to write admin notification")
	}

	if s.cfg.Email.SMTPHost != "" && s.cfg.Email.AdminEmail != "" {
		subject := fmt.Sprintf("Nouvelle commande %s", order.ID)
		body := fmt.Sprintf("Commande %s de %s %s (%s)\nTotal: %.2f %s\nVille: %s\n",
			order.ID, order.FirstName, order.LastName, order.Email, order.Total, order.Currency, order.City)
		if err := s.sendEmail(s.cfg.Email.AdminEmail, subject, body); err != nil {
			logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to email admin about order")
		}
	}
}

// NotifyLowStock flags a product whose stock dropped under the threshold.
func (s *NotificationService) NotifyLowStock(product *models.Product, threshold int) {
	notification := &models.AdminNotification{
		Type:    "low_stock",
		Title:   "Stock faible",
		Message: fmt.Sprintf("Le produit %s n'a plus que %d en stock", product.Name, product.Stock),
		Data: models.JSONB{
			"product_id": product.ID,
			"stock":      product.Stock,
			"threshold":  threshold,
		},
	}

	if err := s.db.Create(notification).Error; err != nil {
		logrus.WithError(err).WithField("product_id", product.ID).Error("failed to write low stock notification")
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	addr := s.cfg.Email.SMTPHost + ":" + s.cfg.Email.SMTPPort

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.cfg.Email.FromEmail, to, subject, body))

	var auth smtp.Auth
	if s.cfg.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.Email.SMTPUser, s.cfg.Email.SMTPPass, s.cfg.Email.SMTPHost)
	}

	return smtp.SendMail(addr, auth, s.cfg.Email.FromEmail, []string{to}, msg)
}
