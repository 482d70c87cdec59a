package adminController

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/lalith66-code/RevWheels.co/store"
)

// GET /admin/export/products
func ExportProductsToExcel(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"Index", "Category", "Name", "Image", "Price", "Offer", "Deal"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(i)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Offer)
			row.AddCell().SetValue(p.Deal)
		}

		writeWorkbook(c, file, "products.xlsx")
	}
}

// GET /admin/export/orders
func ExportOrdersToExcel(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.Orders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"Index", "Name", "Phone", "Email", "Address", "Items", "CustomItems", "Total", "Status"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i, o := range orders {
			var items []string
			for _, key := range sortedKeys(o.Items) {
				items = append(items, fmt.Sprintf("%s x%d", key, o.Items[key]))
			}
			var customItems []string
			for _, item := range o.CustomItems {
				customItems = append(customItems, fmt.Sprintf("%s x%d", item.Name, item.Qty))
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(i)
			row.AddCell().SetValue(o.Name)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(strings.Join(items, ", "))
			row.AddCell().SetValue(strings.Join(customItems, ", "))
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.Status)
		}

		writeWorkbook(c, file, "orders.xlsx")
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
