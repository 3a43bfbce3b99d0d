// internal/models/admin.go
package models

import "time"

// AdminNotification backs the back-office notification feed. Order
// creation writes one row best-effort; losing one never fails an order.
type AdminNotification struct {
	RecordModel
	Type    string     `json:"type" gorm:"size:50;not null;index"`
	Title   string     `json:"title" gorm:"size:255;not null"`
	Message string     `json:"message" gorm:"type:text"`
	Data    JSONB      `json:"data" gorm:"type:jsonb"`
	ReadAt  *time.Time `json:"read_at"`
}

// AuditLog records non-GET requests for the back-office.
type AuditLog struct {
	RecordModel
	UserID       string `json:"user_id" gorm:"size:15;index"`
	Action       string `json:"action" gorm:"size:255;not null"`
	ResourceType string `json:"resource_type" gorm:"size:100;index"`
	ResourceID   string `json:"resource_id" gorm:"size:15"`
	IPAddress    string `json:"ip_address" gorm:"size:64"`
	UserAgent    string `json:"user_agent" gorm:"size:500"`
	NewValues    JSONB  `json:"new_values" gorm:"type:jsonb"`
}
