package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/controllers"
	"github.com/campuscanteen/canteen-app/middlewares"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/services"
)

// SetupRouter wires the repository, services and controllers onto a gin
// engine. taxRateBP is the order tax rate in basis points.
func SetupRouter(db *gorm.DB, taxRateBP int) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	store := repository.NewGormStore(db)
	dispatcher := services.NewDispatcher(store)
	lifecycle := services.NewLifecycle(store, dispatcher)
	orderSvc := services.NewOrderService(store, store, lifecycle, dispatcher, taxRateBP)

	userCtrl := controllers.NewUserController(store)
	menuCtrl := controllers.NewMenuController(store)
	orderCtrl := controllers.NewOrderController(orderSvc)
	notifCtrl := controllers.NewNotificationController(dispatcher, store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/menu", menuCtrl.ListMenu)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		auth.GET("/notifications", notifCtrl.GetNotifications)
		auth.PATCH("/notifications", notifCtrl.MarkAllRead)
		auth.PATCH("/notifications/:notif_id/read", notifCtrl.MarkRead)

		staff := auth.Group("/")
		staff.Use(middlewares.RequireStaff())
		{
			staff.POST("/menu", menuCtrl.CreateMenuItem)
			staff.PATCH("/menu/:menu_id", menuCtrl.UpdateMenuItem)
			staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		}
	}

	return r
}
