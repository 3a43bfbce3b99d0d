// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /api/boutique/panier
func (h *CartHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	items, err := h.cartService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCartItemNotFound)
		return
	}
	utils.Success(c, gin.H{"items": items})
}

// POST /api/boutique/panier
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "item": item})
}

// PUT /api/boutique/panier/:id
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	item, err := h.cartService.UpdateItem(c.Request.Context(), userID, c.Param("id"), req.Quantity)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCartItemNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "item": item})
}

// DELETE /api/boutique/panier/:id
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyCartItemNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}
