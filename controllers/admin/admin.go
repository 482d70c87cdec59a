package adminController

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lalith66-code/RevWheels.co/auth"
	"github.com/lalith66-code/RevWheels.co/middleware"
	"github.com/lalith66-code/RevWheels.co/session"
)

// GET /admin
//
// Login-state probe for the console frontend.
func LoginState() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(middleware.AdminTokenCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		if _, err := middleware.ParseAdminToken(token); err != nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
	}
}

// POST /admin
func Login(admins auth.Admins) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if username == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
			return
		}

		if err := admins.Verify(username, password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login"})
			return
		}

		token, err := auth.IssueAdminToken(username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.SetCookie(middleware.AdminTokenCookie, token, int((12 * time.Hour).Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)
		if err := session.Destroy(c); err != nil {
			log.Printf("⚠️ Failed to clear session on logout: %v", err)
		}
		c.Redirect(http.StatusFound, "/")
	}
}
