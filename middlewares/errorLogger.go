package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/utils"
	"github.com/sirupsen/logrus"
)

// CustomErrorLogger is a custom Gin middleware that logs only errors
func CustomErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only log when there are errors
		if len(c.Errors) > 0 {
			cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
			logger.WithFields(logrus.Fields{
				"path":           c.FullPath(),
				"status":         c.Writer.Status(),
				"correlation_id": cid,
			}).Error(c.Errors.String())
		}
	}
}
