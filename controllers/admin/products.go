package adminController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/store"
	"github.com/lalith66-code/RevWheels.co/utils"
)

// defaultProductImage is used when a created product arrives without one.
const defaultProductImage = "default.png"

// GET /admin/dashboard
func Dashboard(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": models.IndexAll(products)})
	}
}

// POST /admin/dashboard
func CreateProduct(st *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.PostForm("category")
		name := c.PostForm("name")
		price := c.PostForm("price")
		offer := c.PostForm("offer")
		deal := c.PostForm("deal")

		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		if err := validatePrices(price, offer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filename := defaultProductImage
		if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
			saved, err := utils.SaveUpload(c, file, uploadsDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			filename = saved
		}

		product := models.Product{
			Category: category,
			Name:     name,
			Image:    filename,
			Price:    price,
			Offer:    offer,
			Deal:     deal,
		}

		if err := st.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
			return append(products, product), nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// GET /admin/edit/:index
func GetProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product index"})
			return
		}

		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		if index >= len(products) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, models.IndexedProduct{Index: index, Product: products[index]})
	}
}

// POST /admin/edit/:index
//
// Overwrites name, price, offer and deal in place. The image is replaced
// only when a new one arrives; the category never changes after creation.
func UpdateProduct(st *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product index"})
			return
		}

		name := c.PostForm("name")
		price := c.PostForm("price")
		offer := c.PostForm("offer")
		deal := c.PostForm("deal")

		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if err := validatePrices(price, offer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var filename string
		if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
			filename, err = utils.SaveUpload(c, file, uploadsDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		err = st.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
			if index >= len(products) {
				return nil, store.ErrNotFound
			}
			p := &products[index]
			p.Name = name
			p.Price = price
			p.Offer = offer
			p.Deal = deal
			if filename != "" {
				p.Image = filename
			}
			return products, nil
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// GET /admin/delete/:index
//
// Splices the product out of the array. Every product after it shifts
// down one position, so carts and orders holding later indices now point
// at the wrong product. Known hazard of position-as-identity.
func DeleteProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product index"})
			return
		}

		err = st.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
			if index >= len(products) {
				return nil, store.ErrNotFound
			}
			return append(products[:index], products[index+1:]...), nil
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// validatePrices rejects malformed prices here so checkout arithmetic
// never sees one.
func validatePrices(price, offer string) error {
	if _, err := strconv.Atoi(price); err != nil {
		return errors.New("price must be a whole number")
	}
	if _, err := strconv.Atoi(offer); err != nil {
		return errors.New("offer must be a whole number")
	}
	return nil
}
