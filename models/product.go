package models

import "strconv"

// Catalog categories. These double as the storefront's section pages.
const (
	CategoryHotwheels   = "hotwheels"
	CategoryDiecastCars = "diecast-cars"
	CategoryRCCars      = "rc-cars"
)

// Categories returns the fixed set of catalog sections.
func Categories() []string {
	return []string{CategoryHotwheels, CategoryDiecastCars, CategoryRCCars}
}

func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Product is one record of products.json. Its identity is its array
// position in the document. There is no stable id, so deleting a product
// shifts every later index.
type Product struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Offer    string `json:"offer"`
	Deal     string `json:"deal"`
}

// OfferValue is the effective sale price used in every total computation.
// Numeric-ness is enforced when a product is created or edited, so a
// failed parse here reads as zero.
func (p Product) OfferValue() int {
	v, _ := strconv.Atoi(p.Offer)
	return v
}

// IndexedProduct carries a product together with its array position, since
// the position is what carts and orders reference.
type IndexedProduct struct {
	Index   int     `json:"index"`
	Product Product `json:"product"`
}

func IndexAll(products []Product) []IndexedProduct {
	out := make([]IndexedProduct, 0, len(products))
	for i, p := range products {
		out = append(out, IndexedProduct{Index: i, Product: p})
	}
	return out
}

func FilterByCategory(products []Product, category string) []IndexedProduct {
	out := []IndexedProduct{}
	for i, p := range products {
		if p.Category == category {
			out = append(out, IndexedProduct{Index: i, Product: p})
		}
	}
	return out
}

// CategoryIndex maps array positions to categories. Rebuilt from the
// loaded catalog whenever it is needed, since the catalog may have
// changed since the orders referencing it were written.
func CategoryIndex(products []Product) map[int]string {
	idx := make(map[int]string, len(products))
	for i, p := range products {
		idx[i] = p.Category
	}
	return idx
}
