package routes

import (
	"villageconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// LeaderRoutes sets up the public leader routes
func LeaderRoutes(r *gin.Engine) {
	leaders := r.Group("/api/leaders")
	{
		leaders.GET("", controllers.GetLeaders)
		leaders.POST("", controllers.CreateLeader)
		leaders.GET("/:id", controllers.GetLeader)
	}
}
