package routes

import (
	"villageconnect-be/controllers"
	"villageconnect-be/controllers/admin"
	"villageconnect-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the admin namespace. Everything except login sits
// behind Protect + Authorize + RequireAdmin.
func AdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")

	adminGroup.POST("/auth/login", admin.Login)

	protected := adminGroup.Group("")
	protected.Use(middlewares.Protect())
	protected.Use(middlewares.Authorize("admin", "superadmin"))
	protected.Use(middlewares.RequireAdmin())

	auth := protected.Group("/auth")
	{
		auth.GET("/me", admin.GetProfile)
		auth.PUT("/updatedetails", admin.UpdateDetails)
		auth.POST("/register", middlewares.RequireSuperAdmin(), admin.Register)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", admin.GetDashboardStats)
		dashboard.GET("/recent-activity", admin.GetRecentActivity)
		dashboard.GET("/system-health", admin.GetSystemHealth)
	}

	issues := protected.Group("/issues")
	{
		issues.GET("", middlewares.LogAdminAction("View issues"), admin.GetIssues)
		issues.PUT("/:id", middlewares.LogAdminAction("Update issue"), controllers.UpdateIssue)
		issues.DELETE("/:id", middlewares.LogAdminAction("Delete issue"), controllers.DeleteIssue)
		issues.PATCH("/:id/status", middlewares.LogAdminAction("Update issue status"), controllers.UpdateIssueStatus)
		issues.PATCH("/bulk-status", middlewares.LogAdminAction("Bulk update issue status"), admin.BulkUpdateIssueStatus)
		issues.DELETE("/bulk-delete", middlewares.LogAdminAction("Bulk delete issues"), admin.BulkDeleteIssues)
	}

	leaders := protected.Group("/leaders")
	{
		leaders.GET("", middlewares.LogAdminAction("View leaders"), admin.GetLeaders)
		leaders.POST("", middlewares.LogAdminAction("Create leader"), admin.CreateLeader)
		leaders.PUT("/:id", middlewares.LogAdminAction("Update leader"), admin.UpdateLeader)
		leaders.DELETE("/:id", middlewares.LogAdminAction("Delete leader"), admin.DeleteLeader)
		leaders.PATCH("/:id/toggle-active", middlewares.LogAdminAction("Toggle leader active"), admin.ToggleLeaderActive)
		leaders.DELETE("/bulk/delete", middlewares.LogAdminAction("Bulk delete leaders"), admin.BulkDeleteLeaders)
	}

	representatives := protected.Group("/representatives")
	{
		representatives.GET("", middlewares.LogAdminAction("View representatives"), admin.GetRepresentatives)
		representatives.GET("/stats", middlewares.LogAdminAction("View representative stats"), admin.GetRepresentativeStats)
		representatives.POST("", middlewares.LogAdminAction("Create representative"), admin.CreateRepresentative)
		representatives.PUT("/:id", middlewares.LogAdminAction("Update representative"), admin.UpdateRepresentative)
		representatives.DELETE("/:id", middlewares.LogAdminAction("Delete representative"), admin.DeleteRepresentative)
		representatives.PATCH("/:id/toggle-active", middlewares.LogAdminAction("Toggle representative active"), admin.ToggleRepresentativeActive)
		representatives.DELETE("/bulk/delete", middlewares.LogAdminAction("Bulk delete representatives"), admin.BulkDeleteRepresentatives)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/overview", middlewares.LogAdminAction("View platform analytics"), admin.GetPlatformAnalytics)
		analytics.GET("/engagement", middlewares.LogAdminAction("View engagement analytics"), admin.GetEngagementAnalytics)
		analytics.GET("/export", middlewares.LogAdminAction("Export analytics data"), admin.ExportAnalyticsData)
	}

	protected.PUT("/village", middlewares.LogAdminAction("Update village info"), admin.UpdateVillageInfo)
}
