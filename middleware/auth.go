package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenCookie carries the signed admin session token.
const AdminTokenCookie = "admin_token"

// ParseAdminToken verifies a token string and returns the admin username
// it was issued to.
func ParseAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected token claims")
	}

	admin, _ := claims["admin"].(string)
	return admin, nil
}

// RequireAdmin guards the admin console. An unauthenticated request is
// redirected to the login page, not answered with an error.
func RequireAdmin(c *gin.Context) {
	tokenString, err := c.Cookie(AdminTokenCookie)
	if err != nil || tokenString == "" {
		c.Redirect(http.StatusFound, "/admin")
		c.Abort()
		return
	}

	admin, err := ParseAdminToken(tokenString)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		c.Abort()
		return
	}

	c.Set("admin_user", admin)

	c.Next()
}
