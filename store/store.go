package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/lalith66-code/RevWheels.co/models"
)

const (
	productsFile = "products.json"
	ordersFile   = "orders.json"
)

// ErrNotFound marks an index that does not resolve to a record. Update
// callbacks return it to turn an out-of-range target into a 404 instead
// of a fault.
var ErrNotFound = errors.New("record not found")

// Store persists the two storefront documents as flat, pretty-printed
// JSON arrays. A record's identity is its array position.
//
// One mutex per document is held across every read-modify-write span, so
// writers inside this process are serialized. A second process writing
// the same files still races (last write wins); that limitation is
// accepted.
type Store struct {
	dir string

	productsMu sync.Mutex
	ordersMu   sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Products loads the full catalog. A missing document is empty, not an
// error.
func (s *Store) Products() ([]models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	return loadProducts(s.productsPath())
}

func (s *Store) SaveProducts(products []models.Product) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	return saveDoc(s.productsPath(), products)
}

// UpdateProducts runs fn on the loaded catalog and writes back whatever
// it returns, all under the products lock. An error from fn aborts the
// write and is returned as-is.
func (s *Store) UpdateProducts(fn func([]models.Product) ([]models.Product, error)) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := loadProducts(s.productsPath())
	if err != nil {
		return err
	}
	updated, err := fn(products)
	if err != nil {
		return err
	}
	return saveDoc(s.productsPath(), updated)
}

// Orders loads the full order history. A missing document is empty, not
// an error.
func (s *Store) Orders() ([]models.Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return loadOrders(s.ordersPath())
}

func (s *Store) SaveOrders(orders []models.Order) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return saveDoc(s.ordersPath(), orders)
}

// UpdateOrders is the orders-document counterpart of UpdateProducts.
func (s *Store) UpdateOrders(fn func([]models.Order) ([]models.Order, error)) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := loadOrders(s.ordersPath())
	if err != nil {
		return err
	}
	updated, err := fn(orders)
	if err != nil {
		return err
	}
	return saveDoc(s.ordersPath(), updated)
}

func (s *Store) productsPath() string { return filepath.Join(s.dir, productsFile) }
func (s *Store) ordersPath() string   { return filepath.Join(s.dir, ordersFile) }

func loadProducts(path string) ([]models.Product, error) {
	var products []models.Product
	if err := loadDoc(path, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func loadOrders(path string) ([]models.Order, error) {
	var orders []models.Order
	if err := loadDoc(path, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func loadDoc(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveDoc overwrites the whole document: marshal, write to a uniquely
// named temp file, then rename into place, so a crash mid-write never
// leaves a truncated document behind.
func saveDoc(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
