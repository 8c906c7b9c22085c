package routes

import (
	"villageconnect-be/controllers"
	"villageconnect-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the user authentication routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middlewares.Protect(), controllers.GetMe)
		auth.PUT("/profile", middlewares.Protect(), controllers.UpdateProfile)
	}
}
