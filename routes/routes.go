package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"school-store/config"
	"school-store/controllers"
	"school-store/middleware"
	"school-store/repositories"
	"school-store/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()
	settingsRepo := repositories.NewSettingsRepository()

	var cartStore services.CartStore
	if config.RedisClient != nil {
		cartStore = repositories.NewRedisCartStore(config.RedisClient)
	} else {
		cartStore = repositories.NewMemoryCartStore()
		log.Println("Redis unavailable, using in-memory cart store")
	}

	var mailer services.Mailer
	if emailSvc, err := services.NewEmailService(); err != nil {
		log.Println("Email disabled:", err)
	} else {
		mailer = emailSvc
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, productRepo, cartStore, mailer))
	settingsCtrl := controllers.NewSettingsController(services.NewSettingsService(settingsRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(cartStore, productRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/api/auth/register", authCtrl.Register)
	router.POST("/api/auth/login", authCtrl.Login)
	router.GET("/api/products", productCtrl.List)
	router.GET("/api/products/:id", productCtrl.Get)
	router.GET("/api/settings", settingsCtrl.Get)

	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.PUT("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/orders", orderCtrl.List)
		auth.POST("/orders", orderCtrl.Create)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PUT("/cart/items", cartCtrl.UpdateItem)
		auth.DELETE("/cart", cartCtrl.Clear)
	}

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.POST("/products/:id/image", productCtrl.UploadImage)

		admin.PUT("/orders/:id/status", orderCtrl.UpdateStatus)

		admin.PUT("/settings", settingsCtrl.Update)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}
