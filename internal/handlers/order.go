// internal/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/boutique/commandes
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	// The empty-cart answer is a storefront contract: a message, not an
	// error object, so the frontend can show it verbatim.
	if len(req.Items) == 0 {
		lang := utils.GetLangFromContext(c)
		c.JSON(http.StatusBadRequest, gin.H{
			"message": i18n.T(lang, i18n.KeyCartEmpty),
		})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	order, err := h.orderService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.Created(c, gin.H{"ok": true, "orderId": order.ID})
}

// GET /api/boutique/commandes
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	orders, err := h.orderService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyOrderNotFound)
		return
	}
	utils.Success(c, gin.H{"orders": orders})
}

// GET /api/boutique/commandes/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	role, _ := utils.GetRoleFromContext(c)
	isAdmin := role == string(models.UserRoleAdmin)

	order, err := h.orderService.Get(c.Request.Context(), userID, c.Param("id"), isAdmin)
	if err != nil {
		handleServiceError(c, err, i18n.KeyOrderNotFound)
		return
	}
	utils.Success(c, gin.H{"order": order})
}
