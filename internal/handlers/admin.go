// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/models"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	orderService   *services.OrderService
	postService    *services.PostService
	storageService *services.StorageService
}

func NewAdminHandler(adminService *services.AdminService, orderService *services.OrderService, postService *services.PostService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		orderService:   orderService,
		postService:    postService,
		storageService: storageService,
	}
}

// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}
	utils.Success(c, gin.H{"stats": stats})
}

// GET /api/admin/produits
func (h *AdminHandler) ListProducts(c *gin.Context) {
	page, limit := utils.GetAdminPagination(c)
	products, pagination, err := h.adminService.ListProducts(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"products": products, "pagination": pagination})
}

// GET /api/admin/produits/:id
func (h *AdminHandler) GetProduct(c *gin.Context) {
	product, err := h.adminService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"product": product})
}

// POST /api/admin/produits
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	product, err := h.adminService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Created(c, gin.H{"ok": true, "product": product})
}

// PUT /api/admin/produits/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	product, err := h.adminService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "product": product})
}

// DELETE /api/admin/produits/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.adminService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}

// POST /api/admin/produits/migrate-slugs
func (h *AdminHandler) MigrateSlugs(c *gin.Context) {
	result, err := h.adminService.MigrateSlugs(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "total": result.Total, "changed": result.Changed})
}

// POST /api/admin/produits/upload
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "", []string{"image"})
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, "products")
	if err != nil {
		utils.BadRequest(c, err.Error(), []string{"image"})
		return
	}
	utils.Created(c, gin.H{"ok": true, "upload": result})
}

// GET /api/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.Success(c, gin.H{"categories": categories})
}

// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	category, err := h.adminService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.Created(c, gin.H{"ok": true, "category": category})
}

// PUT /api/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	category, err := h.adminService.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "category": category})
}

// DELETE /api/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.adminService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}

// GET /api/admin/commandes
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page, limit := utils.GetAdminPagination(c)
	orders, pagination, err := h.adminService.ListOrders(c.Request.Context(), page, limit, c.Query("status"))
	if err != nil {
		handleServiceError(c, err, i18n.KeyOrderNotFound)
		return
	}
	utils.Success(c, gin.H{"orders": orders, "pagination": pagination})
}

// PUT /api/admin/commandes/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", []string{"status"})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		handleServiceError(c, err, i18n.KeyOrderNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "order": order})
}

// GET /api/admin/notifications
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	page, limit := utils.GetAdminPagination(c)
	notifications, pagination, err := h.adminService.ListNotifications(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}
	utils.Success(c, gin.H{"notifications": notifications, "pagination": pagination})
}

// PUT /api/admin/notifications/:id/read
func (h *AdminHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.adminService.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyValidationInvalid)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}

// GET /api/admin/articles
func (h *AdminHandler) ListPosts(c *gin.Context) {
	page, limit := utils.GetAdminPagination(c)
	posts, pagination, err := h.postService.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Success(c, gin.H{"articles": posts, "pagination": pagination})
}

// POST /api/admin/articles
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var req services.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Created(c, gin.H{"ok": true, "article": post})
}

// PUT /api/admin/articles/:id
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	var req services.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "article": post})
}

// DELETE /api/admin/articles/:id
func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyPostNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}
