package models

import "strconv"

// OrderStatusPending is the status every new order starts with. Statuses
// are free text after that; the admin console accepts whatever it is
// given.
const OrderStatusPending = "Pending"

// Order is one record of orders.json. Its identity is its array position.
// Orders are append-only; only the status field is ever overwritten.
//
// Items is the raw cart snapshot, not resolved product details, so a
// later catalog change silently changes what the snapshot points at.
type Order struct {
	Name              string           `json:"name"`
	Phone             string           `json:"phone"`
	Email             string           `json:"email"`
	Address           string           `json:"address"`
	Items             Cart             `json:"items"`
	CustomItems       []CustomCartItem `json:"custom_items"`
	Total             int              `json:"total"`
	PaymentScreenshot *string          `json:"payment_screenshot"`
	Status            string           `json:"status"`
}

// HasCategory reports whether any indexed item of the order resolves to
// the given category. Non-numeric keys and indices missing from the
// category index are skipped.
func (o Order) HasCategory(categoryByIndex map[int]string, category string) bool {
	for key := range o.Items {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if categoryByIndex[index] == category {
			return true
		}
	}
	return false
}
