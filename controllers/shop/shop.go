package shopControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/store"
)

// GET /
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":       "RevWheels.co",
			"categories": models.Categories(),
		})
	}
}

// GET /shop
func ListProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": models.IndexAll(products)})
	}
}

// GET /shop/:category
func ListByCategory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		if !models.ValidCategory(category) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
			return
		}

		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": models.FilterByCategory(products, category),
		})
	}
}
