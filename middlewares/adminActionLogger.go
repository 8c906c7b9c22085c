package middlewares

import (
	"log"
	"time"

	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
)

// LogAdminAction records who performed an admin action. Runs after
// RequireAdmin so the admin document is available on the context.
func LogAdminAction(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if value, ok := c.Get("admin"); ok {
			if admin, ok := value.(models.Admin); ok {
				log.Printf("Admin Action: %s (%s) - %s - %s", admin.Name, admin.Role, action, time.Now().Format(time.RFC3339))
			}
		}
		c.Next()
	}
}
