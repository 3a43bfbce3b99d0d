// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicPageLimit caps the per-page size of the public product API.
// Admin listings tolerate larger windows.
const (
	PublicPageLimit = 12
	AdminPageLimit  = 100
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// GetAdminPagination reads page/limit for back-office listings, coercing
// out-of-range values to defaults the way internal tooling expects.
func GetAdminPagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > AdminPageLimit {
		limit = 20
	}
	return page, limit
}

func ApplyPagination(db *gorm.DB, page, limit int) *gorm.DB {
	return db.Offset((page - 1) * limit).Limit(limit)
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
