package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidLogin covers both an unknown username and a wrong password;
// the login surface never says which.
var ErrInvalidLogin = errors.New("invalid login")

// Admins maps usernames to bcrypt password hashes. The table is injected
// through configuration, never hardcoded.
type Admins map[string]string

// LoadAdmins parses ADMIN_CREDENTIALS, a comma-separated list of
// user:bcrypt-hash pairs. An empty or absent value yields an empty
// table: nobody can log in until credentials are provisioned.
func LoadAdmins() Admins {
	table := Admins{}
	for _, pair := range strings.Split(os.Getenv("ADMIN_CREDENTIALS"), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		user, hash, ok := strings.Cut(pair, ":")
		if !ok || user == "" || hash == "" {
			continue
		}
		table[user] = hash
	}
	return table
}

// Verify checks a credential pair against the table.
func (a Admins) Verify(username, password string) error {
	hash, ok := a[username]
	if !ok {
		return ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidLogin
	}
	return nil
}

// HashPassword produces a hash suitable for ADMIN_CREDENTIALS.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IssueAdminToken signs a session token for a logged-in admin.
func IssueAdminToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"admin": username,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
