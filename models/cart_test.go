package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Product {
	return []Product{
		{Category: CategoryHotwheels, Name: "Twin Mill", Image: "twinmill.png", Price: "150", Offer: "100"},
		{Category: CategoryDiecastCars, Name: "Skyline GT-R", Image: "skyline.png", Price: "300", Offer: "250"},
		{Category: CategoryRCCars, Name: "Rock Crawler", Image: "crawler.png", Price: "60", Offer: "40"},
	}
}

func TestNormalizeCart(t *testing.T) {
	tests := []struct {
		name        string
		raw         interface{}
		want        Cart
		wantChanged bool
	}{
		{
			name:        "nil yields empty cart",
			raw:         nil,
			want:        Cart{},
			wantChanged: false,
		},
		{
			name:        "map shape passes through",
			raw:         Cart{"0": 2, "5": 1},
			want:        Cart{"0": 2, "5": 1},
			wantChanged: false,
		},
		{
			name:        "legacy list counts occurrences",
			raw:         []int{0, 0, 2, 5, 0},
			want:        Cart{"0": 3, "2": 1, "5": 1},
			wantChanged: true,
		},
		{
			name:        "legacy string list counts occurrences",
			raw:         []string{"1", "1", "3"},
			want:        Cart{"1": 2, "3": 1},
			wantChanged: true,
		},
		{
			name:        "unknown shape resets to empty",
			raw:         "garbage",
			want:        Cart{},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NormalizeCart(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestNormalizeCartConservesUnits(t *testing.T) {
	legacy := []int{4, 4, 4, 1, 0, 1, 9}

	cart, changed := NormalizeCart(legacy)

	require.True(t, changed)
	assert.Equal(t, len(legacy), cart.Units())
}

func TestCartAdd(t *testing.T) {
	cart := Cart{}

	cart.Add(3)
	cart.Add(3)
	cart.Add(7)

	assert.Equal(t, Cart{"3": 2, "7": 1}, cart)
}

func TestCartSetQuantity(t *testing.T) {
	cart := Cart{"2": 1}

	cart.SetQuantity(2, 5)
	assert.Equal(t, 5, cart["2"])

	cart.SetQuantity(2, 0)
	assert.NotContains(t, cart, "2")

	cart.SetQuantity(4, -3)
	assert.NotContains(t, cart, "4")
}

func TestCartViewTotals(t *testing.T) {
	products := testCatalog()

	tests := []struct {
		name      string
		cart      Cart
		custom    []CustomCartItem
		wantTotal int
		wantLines int
	}{
		{
			name:      "in-bounds entries only",
			cart:      Cart{"0": 2, "1": 1},
			wantTotal: 2*100 + 250,
			wantLines: 2,
		},
		{
			name:      "out-of-range index contributes nothing",
			cart:      Cart{"0": 2, "5": 1},
			wantTotal: 200,
			wantLines: 1,
		},
		{
			name:      "negative index contributes nothing",
			cart:      Cart{"-1": 4},
			wantTotal: 0,
			wantLines: 0,
		},
		{
			name:      "non-numeric key contributes nothing",
			cart:      Cart{"abc": 3, "2": 1},
			wantTotal: 40,
			wantLines: 1,
		},
		{
			name: "custom items add price times qty",
			cart: Cart{"0": 1},
			custom: []CustomCartItem{
				{Name: "Custom T-shirt (M)", Size: "M", Qty: 2, Price: CustomTShirtPrice},
			},
			wantTotal: 100 + 2*CustomTShirtPrice,
			wantLines: 2,
		},
		{
			name:      "empty cart",
			cart:      Cart{},
			wantTotal: 0,
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, total := CartView(tt.cart, tt.custom, products)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestCartViewLineFields(t *testing.T) {
	products := testCatalog()

	lines, total := CartView(Cart{"1": 3}, nil, products)

	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "Skyline GT-R", line.Name)
	assert.Equal(t, "skyline.png", line.Image)
	assert.Equal(t, 250, line.Price)
	assert.Equal(t, 3, line.Qty)
	assert.Equal(t, 750, line.Subtotal)
	assert.Equal(t, 1, line.Index)
	assert.False(t, line.Custom)
	assert.Equal(t, 750, total)
}

func TestCartViewCustomLine(t *testing.T) {
	custom := []CustomCartItem{
		{Name: "Custom T-shirt (XL)", Size: "XL", FrontImage: "front.png", Qty: 1, Price: CustomTShirtPrice},
	}

	lines, total := CartView(Cart{}, custom, testCatalog())

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Custom)
	assert.Equal(t, "front.png", lines[0].Image)
	assert.Equal(t, CustomTShirtPrice, total)
}
