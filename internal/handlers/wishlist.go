// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /api/boutique/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	products, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"products": products})
}

// POST /api/boutique/wishlist
func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	favorited, err := h.wishlistService.Toggle(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "favorited": favorited})
}
