package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/utils"
)

const sessionKey = "session"

// SessionMiddleware resolves the :id path parameter to a session and puts it
// on the gin context. The session id also goes on the request context for logging.
func SessionMiddleware(registry *models.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		session, ok := registry.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			c.Abort()
			return
		}

		ctx := utils.SetSessionIdInContext(c.Request.Context(), session.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the session resolved by SessionMiddleware.
func GetSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}
