package routes

import (
	"villageconnect-be/controllers"
	"villageconnect-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the public issue routes
func IssueRoutes(r *gin.Engine) {
	issues := r.Group("/api/issues")
	{
		issues.GET("", controllers.GetIssues)
		issues.POST("", middlewares.IssueRateLimiter(10), controllers.CreateIssue)
		issues.GET("/:id", controllers.GetIssue)
		issues.PUT("/:id", controllers.UpdateIssue)
		issues.DELETE("/:id", controllers.DeleteIssue)
		issues.PATCH("/:id/status", controllers.UpdateIssueStatus)
		issues.POST("/:id/upload-issue-images", controllers.UploadIssueImages)
		issues.POST("/:id/upload-resolution-images", controllers.UploadResolutionImages)
		issues.DELETE("/:id/images/:imageId", controllers.DeleteImage)
	}
}
