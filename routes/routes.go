package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

var allStaff = []models.StaffRole{
	models.RoleAdmin, models.RoleManager, models.RoleWaiter,
	models.RoleKitchen, models.RoleBar, models.RoleButchery, models.RoleCashier,
}

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Staff accounts ─────────────────────────────────────────────
	users := r.Group("/api/users")
	users.Use(middleware.AuthRequired())
	{
		admin := users.Group("")
		admin.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
		{
			admin.GET("", handlers.ListUsers)
			admin.POST("", handlers.CreateUser)
			admin.PUT("/:id", handlers.UpdateUser)
			admin.DELETE("/:id", handlers.DeleteUser)
		}
		// Any staff role may fetch a user; the handler restricts
		// non-managers to their own record.
		users.GET("/:id", middleware.RoleRequired(allStaff...), handlers.GetUser)
	}

	// ── Tables ─────────────────────────────────────────────────────
	tables := r.Group("/api/tables")
	tables.Use(middleware.AuthRequired())
	{
		view := tables.Group("")
		view.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleWaiter))
		{
			view.GET("", handlers.ListTables)
			view.GET("/:id", handlers.GetTable)
		}
		manage := tables.Group("")
		manage.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
		{
			manage.POST("", handlers.CreateTable)
			manage.PUT("/:id", handlers.UpdateTable)
			manage.DELETE("/:id", handlers.DeleteTable)
		}
	}

	// ── Menu items ─────────────────────────────────────────────────
	menu := r.Group("/api/menu-items")
	menu.Use(middleware.AuthRequired())
	{
		view := menu.Group("")
		view.Use(middleware.RoleRequired(allStaff...))
		{
			view.GET("", handlers.ListMenuItems)
			view.GET("/:id", handlers.GetMenuItem)
		}
		manage := menu.Group("")
		manage.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
		{
			manage.POST("", handlers.CreateMenuItem)
			manage.PUT("/:id", handlers.UpdateMenuItem)
			manage.DELETE("/:id", handlers.DeleteMenuItem)
		}
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired())
	{
		view := orders.Group("")
		view.Use(middleware.RoleRequired(allStaff...))
		{
			view.GET("", handlers.ListOrders)
			view.GET("/:id", handlers.GetOrder)
		}

		create := orders.Group("")
		create.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleWaiter))
		{
			create.POST("", handlers.CreateOrder)
			create.POST("/:id/items", handlers.AddOrderItem)
		}

		// The endpoint gate is broad; the state machine decides which
		// role may perform which transition.
		orders.PUT("/:id/status",
			middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleWaiter, models.RoleCashier),
			handlers.UpdateOrderStatus)
		orders.PUT("/items/:id/status",
			middleware.RoleRequired(models.RoleKitchen, models.RoleBar, models.RoleButchery),
			handlers.UpdateOrderItemStatus)
	}
}
