package routes

import (
	"github.com/RubensDuarte2025/Julius-rmd/controllers"
	"github.com/RubensDuarte2025/Julius-rmd/repository"
	"github.com/RubensDuarte2025/Julius-rmd/services"
	"github.com/RubensDuarte2025/Julius-rmd/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	tableRepo := repository.NewTableRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	kitchenRepo := repository.NewKitchenRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Kitchen board feed
	hub := ws.NewKitchenHub()
	go hub.Run()

	// Services
	tableSvc := services.NewTableService(db, tableRepo)
	catalogSvc := services.NewCatalogService(db, catalogRepo)
	kitchenSvc := services.NewKitchenService(db, kitchenRepo, hub)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, catalogRepo, kitchenSvc)
	paymentSvc := services.NewPaymentService(db, orderRepo, tableRepo)
	reportSvc := services.NewReportService(reportRepo)
	settingSvc := services.NewSettingService(settingRepo)

	// Controllers
	tableCtrl := controllers.NewTableController(tableSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	kitchenCtrl := controllers.NewKitchenController(kitchenSvc)
	adminCtrl := controllers.NewAdminController(settingSvc, reportSvc)

	// Tables (attendant dashboard)
	r.GET("/tables", tableCtrl.List)
	r.GET("/tables/:id", tableCtrl.Detail)
	r.POST("/tables", tableCtrl.Create)
	r.PATCH("/tables/:id", tableCtrl.Update)
	r.DELETE("/tables/:id", tableCtrl.Delete)
	r.POST("/tables/:id/orders", orderCtrl.Open)

	// Orders
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PATCH("/orders/:id", orderCtrl.Update)
	r.POST("/orders/:id/items", orderCtrl.AddItem)
	r.DELETE("/orders/:id/items/:itemId", orderCtrl.RemoveItem)
	r.POST("/orders/:id/payments", paymentCtrl.Register)
	r.GET("/orders/:id/payments", paymentCtrl.ListForOrder)

	// Catalog (read side used by the attendant UI)
	r.GET("/categories", catalogCtrl.ListCategories)
	r.GET("/products", catalogCtrl.ListProducts)
	r.GET("/products/:id", catalogCtrl.ProductDetail)

	// Kitchen
	kitchen := r.Group("/kitchen")
	{
		kitchen.GET("/tickets", kitchenCtrl.List)
		kitchen.POST("/tickets", kitchenCtrl.Intake)
		kitchen.PATCH("/tickets/:sourceType/:sourceId/status", kitchenCtrl.UpdateStatus)
	}
	r.GET("/ws/kitchen", hub.HandleWebSocket)

	// Admin (catalog management, settings, reports)
	admin := r.Group("/admin")
	{
		admin.POST("/categories", catalogCtrl.CreateCategory)
		admin.PUT("/categories/:id", catalogCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)

		admin.POST("/products", catalogCtrl.CreateProduct)
		admin.PUT("/products/:id", catalogCtrl.UpdateProduct)
		admin.DELETE("/products/:id", catalogCtrl.DeleteProduct)

		admin.GET("/settings", adminCtrl.ListSettings)
		admin.GET("/settings/:key", adminCtrl.GetSetting)
		admin.POST("/settings", adminCtrl.CreateSetting)
		admin.PUT("/settings/:key", adminCtrl.UpdateSetting)
		admin.DELETE("/settings/:key", adminCtrl.DeleteSetting)

		admin.GET("/reports/sales", adminCtrl.SalesReport)
		admin.GET("/reports/products", adminCtrl.ProductsReport)
	}
}
