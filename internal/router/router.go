// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminadeco/boutique-backend/internal/cache"
	"github.com/luminadeco/boutique-backend/internal/config"
	"github.com/luminadeco/boutique-backend/internal/handlers"
	"github.com/luminadeco/boutique-backend/internal/middleware"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

func Initialize(db *gorm.DB, listingCache *cache.Cache, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db, listingCache, cfg)
	cartService := services.NewCartService(db)
	wishlistService := services.NewWishlistService(db)
	orderService := services.NewOrderService(db, cfg, notificationService)
	addressService := services.NewAddressService(db)
	postService := services.NewPostService(db)
	adminService := services.NewAdminService(db, listingCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, wishlistService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	orderHandler := handlers.NewOrderHandler(orderService)
	addressHandler := handlers.NewAddressHandler(addressService)
	blogHandler := handlers.NewBlogHandler(postService)
	adminHandler := handlers.NewAdminHandler(adminService, orderService, postService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Locale())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLog(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Shop resolver / preset pages. These are the canonical listing URLs;
	// the resolver issues permanent redirects for queries that belong on a
	// preset, and the preset pages re-inject their defining parameters.
	shop := r.Group("/boutique")
	shop.Use(middleware.OptionalAuth())
	{
		shop.GET("", catalogHandler.Shop)
		shop.GET("/categorie/:slug", catalogHandler.ShopCategory)
		shop.GET("/wishlist", catalogHandler.ShopWishlist)
		shop.GET("/promotions", catalogHandler.ShopPromotions)
		shop.GET("/nouveautes", catalogHandler.ShopNouveautes)
	}

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Public catalog
		boutique := api.Group("/boutique")
		{
			boutique.GET("/produits", middleware.OptionalAuth(), catalogHandler.ListProducts)
			boutique.GET("/produits/:slug", middleware.OptionalAuth(), catalogHandler.GetProduct)
			boutique.GET("/categories", catalogHandler.ListCategories)

			// Guest checkout stays open; the session only attaches the
			// order to an account when present.
			boutique.POST("/commandes", middleware.OptionalAuth(), orderHandler.Create)

			// Authenticated shop
			protected := boutique.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.GET("/wishlist", wishlistHandler.List)
				protected.POST("/wishlist", wishlistHandler.Toggle)

				protected.GET("/panier", cartHandler.List)
				protected.POST("/panier", cartHandler.Add)
				protected.PUT("/panier/:id", cartHandler.Update)
				protected.DELETE("/panier/:id", cartHandler.Remove)

				protected.GET("/adresses", addressHandler.List)
				protected.POST("/adresses", addressHandler.Create)
				protected.PATCH("/adresses/:id", addressHandler.Update)
				protected.DELETE("/adresses/:id", addressHandler.Delete)

				protected.GET("/commandes", orderHandler.ListMine)
				protected.GET("/commandes/:id", orderHandler.Get)
			}
		}

		// Blog
		blog := api.Group("/blog")
		{
			blog.GET("/articles", blogHandler.ListArticles)
			blog.GET("/articles/:slug", blogHandler.GetArticle)
		}

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)

			produits := admin.Group("/produits")
			{
				produits.GET("", adminHandler.ListProducts)
				produits.POST("", adminHandler.CreateProduct)
				produits.POST("/migrate-slugs", adminHandler.MigrateSlugs)
				produits.POST("/upload", middleware.UploadRateLimit(), adminHandler.UploadProductImage)
				produits.GET("/:id", adminHandler.GetProduct)
				produits.PUT("/:id", adminHandler.UpdateProduct)
				produits.DELETE("/:id", adminHandler.DeleteProduct)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", adminHandler.ListCategories)
				categories.POST("", adminHandler.CreateCategory)
				categories.PUT("/:id", adminHandler.UpdateCategory)
				categories.DELETE("/:id", adminHandler.DeleteCategory)
			}

			commandes := admin.Group("/commandes")
			{
				commandes.GET("", adminHandler.ListOrders)
				commandes.PUT("/:id/status", adminHandler.UpdateOrderStatus)
			}

			notifications := admin.Group("/notifications")
			{
				notifications.GET("", adminHandler.ListNotifications)
				notifications.PUT("/:id/read", adminHandler.MarkNotificationRead)
			}

			articles := admin.Group("/articles")
			{
				articles.GET("", adminHandler.ListPosts)
				articles.POST("", adminHandler.CreatePost)
				articles.PUT("/:id", adminHandler.UpdatePost)
				articles.DELETE("/:id", adminHandler.DeletePost)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
