package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
)

// SessionCookieName is the name of the session cookie
const SessionCookieName = "session_id"

// Session resolves the session cookie on every request and stores the
// session and, when logged in, the current user in the Gin context.
// Requests without a valid session simply proceed as anonymous.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := services.GetSessionStore()
		if store == nil {
			c.Next()
			return
		}

		cookie, err := c.Cookie(SessionCookieName)
		if err == nil && cookie != "" {
			if sess, ok := store.Get(cookie); ok {
				c.Set("session", sess)

				if sess.UserID != 0 {
					var user models.User
					db := config.GetDB()
					if err := db.Preload("Profile").First(&user, sess.UserID).Error; err == nil {
						c.Set("current_user", &user)
					}
				}
			}
		}

		c.Next()
	}
}

// EnsureSession returns the request's session, creating one (and setting the
// cookie) if none exists yet. Anonymous sessions carry per-session state such
// as the dashboard visit counter.
func EnsureSession(c *gin.Context) (*services.Session, error) {
	if sess, ok := CurrentSession(c); ok {
		return sess, nil
	}

	store := services.GetSessionStore()
	sess, err := store.Create()
	if err != nil {
		return nil, err
	}

	c.SetCookie(SessionCookieName, sess.ID, int(store.TTL().Seconds()), "/", "", false, true)
	c.Set("session", sess)
	return sess, nil
}

// CurrentSession extracts the session from the Gin context
func CurrentSession(c *gin.Context) (*services.Session, bool) {
	v, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	sess, ok := v.(*services.Session)
	return sess, ok
}

// CurrentUser extracts the authenticated user from the Gin context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// RequireAuth rejects unauthenticated requests with a 401 envelope.
// This is the JSON equivalent of the redirect-to-login flow: user-scoped
// views are never served empty to anonymous callers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required. Please log in.",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff rejects callers without the staff flag. Record management
// (the original admin surface) is staff-only.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required. Please log in.",
				},
			})
			c.Abort()
			return
		}
		if !user.IsStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Staff access required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
