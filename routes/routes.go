package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/auth"
	"github.com/lalith66-code/RevWheels.co/store"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart/checkout, and admin route groups.
func SetupRoutes(r *gin.Engine, st *store.Store, admins auth.Admins, uploadsDir string) {
	// Public storefront (no middleware)
	SetupShopRoutes(r, st)

	// Session-backed cart and checkout
	SetupCartRoutes(r, st, uploadsDir)

	// Admin console (token-protected)
	SetupAdminRoutes(r, st, admins, uploadsDir)
}
