package routes

import (
	"villageconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// VillageRoutes sets up the public village information route
func VillageRoutes(r *gin.Engine) {
	r.GET("/api/village", controllers.GetVillageInfo)
}
