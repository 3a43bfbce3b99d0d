// internal/handlers/blog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type BlogHandler struct {
	postService *services.PostService
}

func NewBlogHandler(postService *services.PostService) *BlogHandler {
	return &BlogHandler{postService: postService}
}

// GET /api/blog/articles
func (h *BlogHandler) ListArticles(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p >= 1 {
			page = p
		}
	}

	posts, pagination, err := h.postService.ListPublished(c.Request.Context(), page, utils.PublicPageLimit)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Success(c, gin.H{"articles": posts, "pagination": pagination})
}

// GET /api/blog/articles/:slug
func (h *BlogHandler) GetArticle(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Success(c, gin.H{"article": post})
}
