package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/session"
	"github.com/lalith66-code/RevWheels.co/store"
)

// GET /cart
func ViewCart(st *store.Store) gin.HandlerFunc {
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

// POST /cart/add/:index
//
// The index is not checked against the catalog; a stale one surfaces as
// an omission at render time, nothing more.
func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product index"})
			return
		}

		cart := session.Cart(c)
		cart.Add(index)

		if err := session.SaveCart(c, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// POST /cart/update/:index
func UpdateCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product index"})
			return
		}

		qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid qty"})
			return
		}

		cart := session.Cart(c)
		cart.SetQuantity(index, qty)

		if err := session.SaveCart(c, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}
