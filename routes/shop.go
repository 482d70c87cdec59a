package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/lalith66-code/RevWheels.co/controllers/cart"
	orderControllers "github.com/lalith66-code/RevWheels.co/controllers/order"
	shopControllers "github.com/lalith66-code/RevWheels.co/controllers/shop"
	"github.com/lalith66-code/RevWheels.co/store"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(r *gin.Engine, st *store.Store) {
	r.GET("/", shopControllers.Home())
	r.GET("/shop", shopControllers.ListProducts(st))
	r.GET("/shop/:category", shopControllers.ListByCategory(st))
}

// SetupCartRoutes registers the session cart, the T-shirt configurator,
// and checkout.
func SetupCartRoutes(r *gin.Engine, st *store.Store, uploadsDir string) {
	r.GET("/cart", cartControllers.ViewCart(st))
	r.POST("/cart/add/:index", cartControllers.AddToCart())
	r.POST("/cart/update/:index", cartControllers.UpdateCart())

	r.GET("/custom-t-shirt", cartControllers.CustomTShirtInfo())
	r.POST("/custom-t-shirt", cartControllers.AddCustomTShirt(uploadsDir))

	r.GET("/checkout", orderControllers.CheckoutSummary(st))
	r.POST("/checkout", orderControllers.PlaceOrder(st, uploadsDir))
}
