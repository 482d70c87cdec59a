package adminController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/models"
	"github.com/lalith66-code/RevWheels.co/store"
)

// IndexedOrder carries an order with its array position, the only handle
// the status endpoint accepts.
type IndexedOrder struct {
	Index int          `json:"index"`
	Order models.Order `json:"order"`
}

// GET /admin/orders
//
// Orders are partitioned into one bucket per catalog category plus a
// bucket for orders carrying custom items. An order lands in a category
// bucket when any of its item indices resolves to that category against
// the catalog as it is now; unresolvable indices are skipped.
func ListOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.Orders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}

		categoryByIndex := models.CategoryIndex(products)

		buckets := gin.H{}
		for _, category := range models.Categories() {
			matched := []IndexedOrder{}
			for i, order := range orders {
				if order.HasCategory(categoryByIndex, category) {
					matched = append(matched, IndexedOrder{Index: i, Order: order})
				}
			}
			buckets[category] = matched
		}

		custom := []IndexedOrder{}
		for i, order := range orders {
			if len(order.CustomItems) > 0 {
				custom = append(custom, IndexedOrder{Index: i, Order: order})
			}
		}
		buckets["custom"] = custom

		c.JSON(http.StatusOK, buckets)
	}
}

// POST /admin/order/status/:index
//
// Overwrites the status field in place. Any text is accepted; there is no
// enumerated status set.
func UpdateOrderStatus(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order index"})
			return
		}

		status := c.PostForm("status")
		if status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		err = st.UpdateOrders(func(orders []models.Order) ([]models.Order, error) {
			if index >= len(orders) {
				return nil, store.ErrNotFound
			}
			orders[index].Status = status
			return orders, nil
		})
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
