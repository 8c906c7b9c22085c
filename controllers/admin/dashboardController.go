package admin

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"runtime"
	"sort"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var processStart = time.Now()

// resolutionRate is the resolved share in percent, one decimal, 0 when the
// platform has no issues yet.
func resolutionRate(resolved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(resolved)/float64(total)*1000) / 10
}

type dashboardCounts struct {
	TotalIssues          int64
	PendingIssues        int64
	InProgressIssues     int64
	ResolvedIssues       int64
	TotalLeaders         int64
	TotalRepresentatives int64
	ActiveAdmins         int64
	RecentIssues         int64
	RecentLeaders        int64
}

// documentCounter matches (*mongo.Collection).CountDocuments.
type documentCounter func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)

// gatherDashboardCounts collects every dashboard counter, failing on the
// first error. A partially failing backend must not report zeroes as real
// counts.
func gatherDashboardCounts(ctx context.Context, issues, leaders, representatives, admins documentCounter, since time.Time) (dashboardCounts, error) {
	var counts dashboardCounts
	var err error

	if counts.TotalIssues, err = issues(ctx, bson.M{}); err != nil {
		return counts, fmt.Errorf("counting issues: %w", err)
	}
	if counts.PendingIssues, err = issues(ctx, bson.M{"status": models.StatusPending}); err != nil {
		return counts, fmt.Errorf("counting pending issues: %w", err)
	}
	if counts.InProgressIssues, err = issues(ctx, bson.M{"status": models.StatusInProgress}); err != nil {
		return counts, fmt.Errorf("counting in-progress issues: %w", err)
	}
	if counts.ResolvedIssues, err = issues(ctx, bson.M{"status": models.StatusResolved}); err != nil {
		return counts, fmt.Errorf("counting resolved issues: %w", err)
	}
	if counts.TotalLeaders, err = leaders(ctx, bson.M{"isActive": true}); err != nil {
		return counts, fmt.Errorf("counting leaders: %w", err)
	}
	if counts.TotalRepresentatives, err = representatives(ctx, bson.M{"isActive": true}); err != nil {
		return counts, fmt.Errorf("counting representatives: %w", err)
	}
	if counts.ActiveAdmins, err = admins(ctx, bson.M{"isActive": true}); err != nil {
		return counts, fmt.Errorf("counting admins: %w", err)
	}
	if counts.RecentIssues, err = issues(ctx, bson.M{"createdAt": bson.M{"$gte": since}}); err != nil {
		return counts, fmt.Errorf("counting recent issues: %w", err)
	}
	if counts.RecentLeaders, err = leaders(ctx, bson.M{"createdAt": bson.M{"$gte": since}}); err != nil {
		return counts, fmt.Errorf("counting recent leaders: %w", err)
	}

	return counts, nil
}

// GetDashboardStats computes the snapshot counts for the admin dashboard
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	counts, err := gatherDashboardCounts(
		ctx,
		issueCollection.CountDocuments,
		config.GetCollection("leaders").CountDocuments,
		config.GetCollection("representatives").CountDocuments,
		config.GetCollection("admins").CountDocuments,
		time.Now().AddDate(0, 0, -7),
	)
	if err != nil {
		log.Println("Error gathering dashboard counts:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve dashboard stats"})
		return
	}

	categoryPipeline := []bson.M{
		{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}

	issuesByCategory := []bson.M{}
	if cursor, err := issueCollection.Aggregate(ctx, categoryPipeline); err == nil {
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &issuesByCategory); err != nil {
			log.Println("Error decoding category breakdown:", err)
		}
	} else {
		log.Println("Error aggregating category breakdown:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalIssues":          counts.TotalIssues,
			"pendingIssues":        counts.PendingIssues,
			"inProgressIssues":     counts.InProgressIssues,
			"resolvedIssues":       counts.ResolvedIssues,
			"totalLeaders":         counts.TotalLeaders,
			"totalRepresentatives": counts.TotalRepresentatives,
			"activeAdmins":         counts.ActiveAdmins,

			"recentIssues":     counts.RecentIssues,
			"recentLeaders":    counts.RecentLeaders,
			"issuesByCategory": issuesByCategory,
			"resolutionRate":   resolutionRate(counts.ResolvedIssues, counts.TotalIssues),

			"stats": gin.H{
				"issues": gin.H{
					"total":      counts.TotalIssues,
					"pending":    counts.PendingIssues,
					"inProgress": counts.InProgressIssues,
					"resolved":   counts.ResolvedIssues,
				},
				"content": gin.H{
					"leaders":         counts.TotalLeaders,
					"representatives": counts.TotalRepresentatives,
					"total":           counts.TotalLeaders + counts.TotalRepresentatives,
				},
			},
		},
	})
}

type activityEntry struct {
	Type        string      `json:"type"`
	Action      string      `json:"action"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
	Data        interface{} `json:"data"`
}

// GetRecentActivity merges the five most recent issues, leaders and
// representatives into one feed, newest first, capped at ten entries.
func GetRecentActivity(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	recentOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)

	activity := []activityEntry{}

	issues := []models.Issue{}
	if cursor, err := config.GetCollection("issues").Find(ctx, bson.M{}, recentOpts); err == nil {
		if err := cursor.All(ctx, &issues); err != nil {
			log.Println("Error decoding recent issues:", err)
		}
	}
	for _, issue := range issues {
		activity = append(activity, activityEntry{
			Type:        "issue",
			Action:      "created",
			Title:       issue.Title,
			Description: "New " + issue.Category + " issue reported",
			Timestamp:   issue.CreatedAt,
			Data:        issue,
		})
	}

	leaders := []models.Leader{}
	if cursor, err := config.GetCollection("leaders").Find(ctx, bson.M{}, recentOpts); err == nil {
		if err := cursor.All(ctx, &leaders); err != nil {
			log.Println("Error decoding recent leaders:", err)
		}
	}
	for _, leader := range leaders {
		activity = append(activity, activityEntry{
			Type:        "leader",
			Action:      "added",
			Title:       leader.Name,
			Description: "New " + leader.Position + " added",
			Timestamp:   leader.CreatedAt,
			Data:        leader,
		})
	}

	representatives := []models.Representative{}
	if cursor, err := config.GetCollection("representatives").Find(ctx, bson.M{}, recentOpts); err == nil {
		if err := cursor.All(ctx, &representatives); err != nil {
			log.Println("Error decoding recent representatives:", err)
		}
	}
	for _, rep := range representatives {
		activity = append(activity, activityEntry{
			Type:        "representative",
			Action:      "added",
			Title:       rep.Name,
			Description: "New " + rep.Position + " added",
			Timestamp:   rep.CreatedAt,
			Data:        rep,
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Timestamp.After(activity[j].Timestamp)
	})
	if len(activity) > 10 {
		activity = activity[:10]
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": activity})
}

// GetSystemHealth reports process stats and flags issues pending for more
// than 30 days as critical.
func GetSystemHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	issueCollection := config.GetCollection("issues")

	criticalIssues, err := issueCollection.CountDocuments(ctx, bson.M{
		"status":    models.StatusPending,
		"createdAt": bson.M{"$lte": thirtyDaysAgo},
	})
	if err != nil {
		log.Println("Error counting critical issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve system health"})
		return
	}

	inactiveLeaders, err := config.GetCollection("leaders").CountDocuments(ctx, bson.M{"isActive": false})
	if err != nil {
		inactiveLeaders = 0
	}
	inactiveRepresentatives, err := config.GetCollection("representatives").CountDocuments(ctx, bson.M{"isActive": false})
	if err != nil {
		inactiveRepresentatives = 0
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	status := "healthy"
	if criticalIssues > 0 {
		status = "warning"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"database": "connected",
			"server": gin.H{
				"uptime": int(time.Since(processStart).Seconds()),
				"memory": gin.H{
					"used":  mem.HeapAlloc / 1024 / 1024,
					"total": mem.HeapSys / 1024 / 1024,
				},
				"timestamp": time.Now().Format(time.RFC3339),
			},
			"alerts": gin.H{
				"criticalIssues":          criticalIssues,
				"inactiveLeaders":         inactiveLeaders,
				"inactiveRepresentatives": inactiveRepresentatives,
				"hasCriticalAlerts":       criticalIssues > 0,
			},
			"status": status,
		},
	})
}
