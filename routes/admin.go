package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/auth"
	adminController "github.com/lalith66-code/RevWheels.co/controllers/admin"
	orderControllers "github.com/lalith66-code/RevWheels.co/controllers/order"
	"github.com/lalith66-code/RevWheels.co/middleware"
	"github.com/lalith66-code/RevWheels.co/store"
)

// SetupAdminRoutes registers the login endpoints and the token-protected
// admin console.
func SetupAdminRoutes(r *gin.Engine, st *store.Store, admins auth.Admins, uploadsDir string) {
	// Login and logout live outside the guarded group.
	r.GET("/admin", adminController.LoginState())
	r.POST("/admin", adminController.Login(admins))
	r.GET("/logout", adminController.Logout())

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// Product management
		adminGroup.GET("/dashboard", adminController.Dashboard(st))
		adminGroup.POST("/dashboard", adminController.CreateProduct(st, uploadsDir))
		adminGroup.GET("/edit/:index", adminController.GetProduct(st))
		adminGroup.POST("/edit/:index", adminController.UpdateProduct(st, uploadsDir))
		adminGroup.GET("/delete/:index", adminController.DeleteProduct(st))

		// Order management
		adminGroup.GET("/orders", adminController.ListOrders(st))
		adminGroup.POST("/order/status/:index", adminController.UpdateOrderStatus(st))
		adminGroup.GET("/orders/ws", orderControllers.OrderFeed())

		// Exports
		adminGroup.GET("/export/products", adminController.ExportProductsToExcel(st))
		adminGroup.GET("/export/orders", adminController.ExportOrdersToExcel(st))
	}
}
