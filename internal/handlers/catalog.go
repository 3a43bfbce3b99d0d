// internal/handlers/catalog.go
package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService  *services.CatalogService
	wishlistService *services.WishlistService
}

func NewCatalogHandler(catalogService *services.CatalogService, wishlistService *services.WishlistService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:  catalogService,
		wishlistService: wishlistService,
	}
}

// GET /api/boutique/produits
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.serveListing(c, c.Request.URL.Query())
}

// GET /api/boutique/produits/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	// The detail page shows the wishlist heart for signed-in visitors.
	favorited := false
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		fav, err := h.wishlistService.Contains(c.Request.Context(), userID, product.ID)
		if err == nil {
			favorited = fav
		}
	}

	utils.Success(c, gin.H{"product": product, "favorited": favorited})
}

// GET /api/boutique/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.Success(c, gin.H{"categories": categories})
}

// GET /boutique
//
// The generic shop URL is the resolver entry point: queries that belong
// at a canonical preset location get a permanent redirect, everything
// else is served in place.
func (h *CatalogHandler) Shop(c *gin.Context) {
	query := c.Request.URL.Query()
	if target, ok := services.ResolveListing(query); ok {
		c.Redirect(http.StatusMovedPermanently, target)
		return
	}
	h.serveListing(c, query)
}

// GET /boutique/categorie/:slug
func (h *CatalogHandler) ShopCategory(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("category", c.Param("slug"))
	h.serveListing(c, query)
}

// GET /boutique/wishlist
func (h *CatalogHandler) ShopWishlist(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("wishlist", "1")
	h.serveListing(c, query)
}

// GET /boutique/promotions
func (h *CatalogHandler) ShopPromotions(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("promotions", "1")
	h.serveListing(c, query)
}

// GET /boutique/nouveautes
func (h *CatalogHandler) ShopNouveautes(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("nouveautes", "1")
	h.serveListing(c, query)
}

func (h *CatalogHandler) serveListing(c *gin.Context, query url.Values) {
	params, err := services.ParseListParams(query, utils.PublicPageLimit)
	if err != nil {
		handleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	result, err := h.catalogService.List(c.Request.Context(), params, userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.Success(c, gin.H{
		"products":       result.Products,
		"pagination":     result.Pagination,
		"activeCategory": result.ActiveCategory,
	})
}
