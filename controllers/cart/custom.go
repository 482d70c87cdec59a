package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/session"
	"github.com/lalith66-code/RevWheels.co/utils"
)

var shirtSizes = []string{"S", "M", "L", "XL", "XXL"}

// GET /custom-t-shirt
func CustomTShirtInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sizes": shirtSizes,
			"price": models.CustomTShirtPrice,
		})
	}
}

// POST /custom-t-shirt
//
// Appends a self-contained line to the custom cart. There is no cap on
// quantity or list length.
func AddCustomTShirt(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		size := c.PostForm("size")
		if size == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size is required"})
			return
		}

		qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
		if err != nil || qty < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid qty"})
			return
		}

		var frontName, backName string
		if file, err := c.FormFile("front_image"); err == nil && file.Filename != "" {
			frontName, err = utils.SaveUpload(c, file, uploadsDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save front image"})
				return
			}
		}
		if file, err := c.FormFile("back_image"); err == nil && file.Filename != "" {
			backName, err = utils.SaveUpload(c, file, uploadsDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save back image"})
				return
			}
		}

		item := models.CustomCartItem{
			Name:       fmt.Sprintf("Custom T-shirt (%s)", size),
			Size:       size,
			FrontImage: frontName,
			BackImage:  backName,
			Qty:        qty,
			Price:      models.CustomTShirtPrice,
		}

		customCart := append(session.CustomCart(c), item)
		if err := session.SaveCustomCart(c, customCart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"custom_cart": customCart})
	}
}
