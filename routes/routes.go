package routes

import (
	"estore-api/config"
	"estore-api/controllers"
	"estore-api/middleware"
	"estore-api/repositories"
	"estore-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)
	statsRepo := repositories.NewStatsRepository(config.DB)

	catalog := services.NewCatalogClient(
		config.AppConfig.CatalogURL,
		config.RedisClient,
		config.AppConfig.CatalogCacheTTL,
	)

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo))
	adminCtrl := controllers.NewAdminController(services.NewStatsService(statsRepo, catalog))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(userRepo))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetMyOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(userRepo), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminCtrl.GetDashboard)
		admin.GET("/analytics", adminCtrl.GetAnalytics)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.PATCH("/users/:id/role", userCtrl.UpdateUserRole)
		admin.PATCH("/users/:id/toggle-status", userCtrl.ToggleUserStatus)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}
}
