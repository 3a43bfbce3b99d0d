// internal/models/post.go
package models

import "time"

type Post struct {
	RecordModel
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Excerpt     string     `json:"excerpt" gorm:"size:500"`
	Body        string     `json:"body" gorm:"type:text"`
	Cover       string     `json:"cover" gorm:"size:500"`
	Published   bool       `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at"`
}
