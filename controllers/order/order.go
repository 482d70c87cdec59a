package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/session"
	"github.com/lalith66-code/RevWheels.co/store"
	"github.com/lalith66-code/RevWheels.co/utils"
)

// GET /checkout
//
// Returns what POST would turn into an order: the joined cart lines and
// the total as priced right now.
func CheckoutSummary(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := session.Cart(c)
		custom := session.CustomCart(c)

		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}

		items, total := models.CartView(cart, custom, products)
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// POST /checkout
//
// The total is computed from catalog prices at submission time, not the
// prices at add-to-cart time. Cart entries whose index no longer resolves
// contribute nothing.
func PlaceOrder(st *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		phone := c.PostForm("phone")
		email := c.PostForm("email")
		address := c.PostForm("address")
		if name == "" || phone == "" || email == "" || address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone, email, and address are required"})
			return
		}

		cart := session.Cart(c)
		custom := session.CustomCart(c)
		if custom == nil {
			custom = []models.CustomCartItem{}
		}

		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		_, total := models.CartView(cart, custom, products)

		var screenshot *string
		if file, err := c.FormFile("payment_screenshot"); err == nil && file.Filename != "" {
			saved, err := utils.SaveUpload(c, file, uploadsDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment screenshot"})
				return
			}
			screenshot = &saved
		}

		order := models.Order{
			Name:              name,
			Phone:             phone,
			Email:             email,
			Address:           address,
			Items:             cart,
			CustomItems:       custom,
			Total:             total,
			PaymentScreenshot: screenshot,
			Status:            models.OrderStatusPending,
		}

		if err := st.UpdateOrders(func(orders []models.Order) ([]models.Order, error) {
			return append(orders, order), nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
			return
		}

		if err := session.ClearCart(c); err != nil {
			log.Printf("⚠️ Failed to clear cart after checkout: %v", err)
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "total": total})
	}
}
