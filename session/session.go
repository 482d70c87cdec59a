package session

import (
	"encoding/gob"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/lalith66-code/RevWheels.co/models"
)

const (
	sessionName = "revwheels_session"

	cartKey   = "cart"
	customKey = "custom_cart"
)

var store *sessions.CookieStore

func init() {
	gob.Register(models.Cart{})
	gob.Register([]models.CustomCartItem{})
	// legacy list-shaped carts written by earlier clients
	gob.Register([]int{})
	gob.Register([]string{})
	gob.Register(map[string]int{})
}

// Init configures the cookie-backed session store. Call once from main
// before serving.
func Init(secret string) {
	store = sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = false
}

// current never fails: a missing or undecodable cookie yields a fresh
// session.
func current(c *gin.Context) *sessions.Session {
	s, _ := store.Get(c.Request, sessionName)
	return s
}

// Cart returns the session cart. A legacy list-shaped cart is normalized
// into the map form once and the normalized form is written back.
func Cart(c *gin.Context) models.Cart {
	s := current(c)
	cart, migrated := models.NormalizeCart(s.Values[cartKey])
	if migrated {
		s.Values[cartKey] = cart
		if err := s.Save(c.Request, c.Writer); err != nil {
			log.Printf("⚠️ Failed to persist migrated cart: %v", err)
		}
	}
	return cart
}

func SaveCart(c *gin.Context, cart models.Cart) error {
	s := current(c)
	s.Values[cartKey] = cart
	return s.Save(c.Request, c.Writer)
}

func CustomCart(c *gin.Context) []models.CustomCartItem {
	s := current(c)
	items, _ := s.Values[customKey].([]models.CustomCartItem)
	return items
}

func SaveCustomCart(c *gin.Context, items []models.CustomCartItem) error {
	s := current(c)
	s.Values[customKey] = items
	return s.Save(c.Request, c.Writer)
}

// ClearCart empties both cart parts. Invoked only on successful checkout.
func ClearCart(c *gin.Context) error {
	s := current(c)
	s.Values[cartKey] = models.Cart{}
	s.Values[customKey] = []models.CustomCartItem{}
	return s.Save(c.Request, c.Writer)
}

// Destroy drops the whole session (logout).
func Destroy(c *gin.Context) error {
	s := current(c)
	s.Options.MaxAge = -1
	s.Values = make(map[interface{}]interface{})
	return s.Save(c.Request, c.Writer)
}
