package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalith66-code/RevWheels.co/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir())
	require.NoError(t, err)
	return st
}

func seedProducts() []models.Product {
	return []models.Product{
		{Category: models.CategoryHotwheels, Name: "Bone Shaker", Image: "bone.png", Price: "150", Offer: "100"},
		{Category: models.CategoryDiecastCars, Name: "Supra Mk4", Image: "supra.png", Price: "350", Offer: "300"},
		{Category: models.CategoryRCCars, Name: "Desert Buggy", Image: "buggy.png", Price: "900", Offer: "850"},
	}
}

func TestMissingDocumentsAreEmpty(t *testing.T) {
	st := newTestStore(t)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Empty(t, products)

	orders, err := st.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestProductsRoundTrip(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveProducts(seedProducts()))

	got, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, seedProducts(), got)
}

func TestDocumentsArePrettyPrinted(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveProducts(seedProducts()))

	data, err := os.ReadFile(filepath.Join(st.Dir(), "products.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"))

	// no temp files left behind
	entries, err := os.ReadDir(st.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}

func TestMalformedDocumentIsStorageError(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), "orders.json"), []byte("{not json"), 0o644))

	_, err := st.Orders()
	assert.Error(t, err)
}

func TestUpdateOrdersAppend(t *testing.T) {
	st := newTestStore(t)

	order := models.Order{Name: "Arun", Phone: "98765", Email: "arun@example.com", Address: "12 Track Rd",
		Items: models.Cart{"0": 2}, Total: 200, Status: models.OrderStatusPending}

	require.NoError(t, st.UpdateOrders(func(orders []models.Order) ([]models.Order, error) {
		return append(orders, order), nil
	}))

	orders, err := st.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Arun", orders[0].Name)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
}

func TestOrderStatusSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, st.SaveOrders([]models.Order{
		{Name: "A", Items: models.Cart{}, Status: models.OrderStatusPending},
		{Name: "B", Items: models.Cart{}, Status: models.OrderStatusPending},
	}))

	require.NoError(t, st.UpdateOrders(func(orders []models.Order) ([]models.Order, error) {
		orders[1].Status = "Shipped"
		return orders, nil
	}))

	// fresh store over the same directory, as after a restart
	reloaded, err := New(dir)
	require.NoError(t, err)
	orders, err := reloaded.Orders()
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.Equal(t, "Shipped", orders[1].Status)
}

func TestDeleteShiftsLaterIndices(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveProducts(seedProducts()))

	require.NoError(t, st.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		return append(products[:1], products[2:]...), nil
	}))

	products, err := st.Products()
	require.NoError(t, err)
	require.Len(t, products, 2)
	// the record formerly at index 2 now answers to index 1
	assert.Equal(t, "Desert Buggy", products[1].Name)
}

func TestUpdateErrorAbortsWrite(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveProducts(seedProducts()))

	boom := errors.New("boom")
	err := st.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, seedProducts(), products)
}
