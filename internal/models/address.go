// internal/models/address.go
package models

// Address rows live in the historical "adresses" collection.
type Address struct {
	RecordModel
	UserID    string `json:"user_id" gorm:"size:15;not null;index"`
	Label     string `json:"label" gorm:"size:100"`
	FirstName string `json:"first_name" gorm:"size:100"`
	LastName  string `json:"last_name" gorm:"size:100"`
	Phone     string `json:"phone" gorm:"size:30"`
	Street    string `json:"street" gorm:"size:500;not null"`
	City      string `json:"city" gorm:"size:100;not null"`
	ZipCode   string `json:"zip_code" gorm:"size:20"`
	IsDefault bool   `json:"is_default" gorm:"default:false"`
}

func (Address) TableName() string {
	return "adresses"
}
