package models

import (
	"sort"
	"strconv"
)

// Cart maps a product's array position (as text) to a positive quantity.
// It lives in the client session, never in a document.
type Cart map[string]int

// CustomTShirtPrice is the fixed unit price of a configured shirt.
const CustomTShirtPrice = 500

// CustomCartItem is an ad-hoc cart line from the T-shirt configurator.
// Unlike indexed entries it is self-contained and survives catalog edits.
type CustomCartItem struct {
	Name       string `json:"name"`
	Size       string `json:"size"`
	FrontImage string `json:"front_image"`
	BackImage  string `json:"back_image"`
	Qty        int    `json:"qty"`
	Price      int    `json:"price"`
}

// NormalizeCart coerces whatever shape the session holds into the map
// form. Early clients stored the cart as a plain list of repeated
// indices; each index's quantity is its occurrence count, so the total
// item count is conserved. The second return reports whether the value
// changed shape and needs writing back to the session.
func NormalizeCart(raw interface{}) (Cart, bool) {
	switch v := raw.(type) {
	case nil:
		return Cart{}, false
	case Cart:
		return v, false
	case map[string]int:
		return Cart(v), false
	case []int:
		cart := Cart{}
		for _, i := range v {
			cart[strconv.Itoa(i)]++
		}
		return cart, true
	case []string:
		cart := Cart{}
		for _, key := range v {
			cart[key]++
		}
		return cart, true
	default:
		return Cart{}, true
	}
}

// Add puts one more of the product at index into the cart. The index is
// not checked against the catalog; a stale index simply never renders.
func (c Cart) Add(index int) {
	c[strconv.Itoa(index)]++
}

// SetQuantity overwrites the quantity for index; zero or less removes it.
func (c Cart) SetQuantity(index, qty int) {
	key := strconv.Itoa(index)
	if qty <= 0 {
		delete(c, key)
		return
	}
	c[key] = qty
}

// Units is the total number of items across all entries.
func (c Cart) Units() int {
	n := 0
	for _, qty := range c {
		n += qty
	}
	return n
}

// CartLine is one row of the rendered cart or checkout summary.
type CartLine struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Qty      int    `json:"qty"`
	Subtotal int    `json:"subtotal"`
	Index    int    `json:"index"`
	Custom   bool   `json:"custom,omitempty"`
}

// CartView joins the cart against the catalog by index and appends the
// custom items. Entries whose index is out of catalog bounds (or not
// numeric) are dropped from both the lines and the total. That is the
// only guard against indices invalidated by product deletion.
func CartView(cart Cart, custom []CustomCartItem, products []Product) ([]CartLine, int) {
	type entry struct {
		index int
		qty   int
	}
	entries := make([]entry, 0, len(cart))
	for key, qty := range cart {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{index: index, qty: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	lines := []CartLine{}
	total := 0

	for _, e := range entries {
		if e.index < 0 || e.index >= len(products) {
			continue
		}
		product := products[e.index]
		qty := e.qty
		subtotal := product.OfferValue() * qty
		total += subtotal

		lines = append(lines, CartLine{
			Name:     product.Name,
			Image:    product.Image,
			Price:    product.OfferValue(),
			Qty:      qty,
			Subtotal: subtotal,
			Index:    e.index,
		})
	}

	for _, item := range custom {
		subtotal := item.Price * item.Qty
		total += subtotal

		lines = append(lines, CartLine{
			Name:     item.Name,
			Image:    item.FrontImage,
			Price:    item.Price,
			Qty:      item.Qty,
			Subtotal: subtotal,
			Custom:   true,
		})
	}

	return lines, total
}
