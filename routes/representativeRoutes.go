package routes

import (
	"villageconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// RepresentativeRoutes sets up the public political representative routes
func RepresentativeRoutes(r *gin.Engine) {
	political := r.Group("/api/political")
	{
		political.GET("", controllers.GetRepresentatives)
		political.GET("/:id", controllers.GetRepresentative)
	}
}
