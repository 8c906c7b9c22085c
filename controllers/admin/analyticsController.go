package admin

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func aggregateAll(ctx context.Context, collection *mongo.Collection, pipeline []bson.M) ([]bson.M, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

var byPositionPipeline = []bson.M{
	{"$group": bson.M{
		"_id":   "$position",
		"count": bson.M{"$sum": 1},
		"active": bson.M{"$sum": bson.M{
			"$cond": []interface{}{bson.M{"$eq": []interface{}{"$isActive", true}}, 1, 0},
		}},
	}},
	{"$sort": bson.M{"count": -1}},
}

// GetPlatformAnalytics assembles the full analytics overview: counts, status
// and category breakdowns, six-month trends, position breakdowns, popular
// locations and resolution-time stats.
func GetPlatformAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")
	leaderCollection := config.GetCollection("leaders")
	repCollection := config.GetCollection("representatives")

	totalIssues, err := issueCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Error counting issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve analytics"})
		return
	}
	totalLeaders, err := leaderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		totalLeaders = 0
	}
	totalRepresentatives, err := repCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		totalRepresentatives = 0
	}

	issueStats, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		log.Println("Error aggregating status breakdown:", err)
	}

	issuesByCategory, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$group": bson.M{
			"_id":      "$category",
			"count":    bson.M{"$sum": 1},
			"avgVotes": bson.M{"$avg": "$votes"},
		}},
		{"$sort": bson.M{"count": -1}},
	})
	if err != nil {
		log.Println("Error aggregating category breakdown:", err)
	}

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	monthlyTrends, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": sixMonthsAgo}}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"count": bson.M{"$sum": 1},
			"resolved": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$status", models.StatusResolved}}, 1, 0},
			}},
		}},
		{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
		{"$limit": 6},
	})
	if err != nil {
		log.Println("Error aggregating monthly trends:", err)
	}

	leaderStats, err := aggregateAll(ctx, leaderCollection, byPositionPipeline)
	if err != nil {
		log.Println("Error aggregating leader stats:", err)
	}
	representativeStats, err := aggregateAll(ctx, repCollection, byPositionPipeline)
	if err != nil {
		log.Println("Error aggregating representative stats:", err)
	}

	popularLocations, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$group": bson.M{"_id": "$location", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": 10},
	})
	if err != nil {
		log.Println("Error aggregating popular locations:", err)
	}

	resolutionStats, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$match": bson.M{"status": models.StatusResolved}},
		{"$project": bson.M{
			"resolutionTime": bson.M{"$divide": []interface{}{
				bson.M{"$subtract": []interface{}{"$updatedAt", "$createdAt"}},
				1000 * 60 * 60 * 24,
			}},
		}},
		{"$group": bson.M{
			"_id":               nil,
			"avgResolutionTime": bson.M{"$avg": "$resolutionTime"},
			"minResolutionTime": bson.M{"$min": "$resolutionTime"},
			"maxResolutionTime": bson.M{"$max": "$resolutionTime"},
		}},
	})
	if err != nil {
		log.Println("Error aggregating resolution stats:", err)
	}

	resolution := bson.M{"avgResolutionTime": 0, "minResolutionTime": 0, "maxResolutionTime": 0}
	if len(resolutionStats) > 0 {
		resolution = resolutionStats[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"overview": gin.H{
				"totalIssues":          totalIssues,
				"totalLeaders":         totalLeaders,
				"totalRepresentatives": totalRepresentatives,
				"totalContent":         totalIssues + totalLeaders + totalRepresentatives,
			},
			"issues": gin.H{
				"byStatus":         issueStats,
				"byCategory":       issuesByCategory,
				"monthlyTrends":    monthlyTrends,
				"popularLocations": popularLocations,
				"resolutionStats":  resolution,
			},
			"leaders":         gin.H{"byPosition": leaderStats},
			"representatives": gin.H{"byPosition": representativeStats},
		},
	})
}

// GetEngagementAnalytics reports voting behavior and creation patterns
func GetEngagementAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	votingStats, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$group": bson.M{
			"_id":              nil,
			"totalVotes":       bson.M{"$sum": "$votes"},
			"avgVotesPerIssue": bson.M{"$avg": "$votes"},
			"maxVotes":         bson.M{"$max": "$votes"},
			"issuesWithVotes": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$gt": []interface{}{"$votes", 0}}, 1, 0},
			}},
		}},
	})
	if err != nil {
		log.Println("Error aggregating voting stats:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve engagement analytics"})
		return
	}

	voting := bson.M{"totalVotes": 0, "avgVotesPerIssue": 0, "maxVotes": 0, "issuesWithVotes": 0}
	if len(votingStats) > 0 {
		voting = votingStats[0]
	}

	popularOpts := options.Find().
		SetSort(bson.D{{Key: "votes", Value: -1}}).
		SetLimit(10).
		SetProjection(bson.M{"title": 1, "votes": 1, "status": 1, "category": 1, "createdAt": 1})

	popularIssues := []bson.M{}
	if cursor, err := issueCollection.Find(ctx, bson.M{}, popularOpts); err == nil {
		if err := cursor.All(ctx, &popularIssues); err != nil {
			log.Println("Error decoding popular issues:", err)
		}
	}

	creationByHour, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$project": bson.M{"hour": bson.M{"$hour": "$createdAt"}}},
		{"$group": bson.M{"_id": "$hour", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		log.Println("Error aggregating creation by hour:", err)
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	weeklyActivity, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": thirtyDaysAgo}}},
		{"$group": bson.M{"_id": bson.M{"$week": "$createdAt"}, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		log.Println("Error aggregating weekly activity:", err)
	}

	categoryEngagement, err := aggregateAll(ctx, issueCollection, []bson.M{
		{"$group": bson.M{
			"_id":        "$category",
			"totalVotes": bson.M{"$sum": "$votes"},
			"issueCount": bson.M{"$sum": 1},
			"avgVotes":   bson.M{"$avg": "$votes"},
		}},
		{"$sort": bson.M{"totalVotes": -1}},
	})
	if err != nil {
		log.Println("Error aggregating category engagement:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"voting":        voting,
			"popularIssues": popularIssues,
			"creationPatterns": gin.H{
				"byHour": creationByHour,
				"weekly": weeklyActivity,
			},
			"categoryEngagement": categoryEngagement,
		},
	})
}

type platformSummary struct {
	TotalIssues          int64   `json:"totalIssues"`
	PendingIssues        int64   `json:"pendingIssues"`
	InProgressIssues     int64   `json:"inProgressIssues"`
	ResolvedIssues       int64   `json:"resolvedIssues"`
	TotalLeaders         int64   `json:"totalLeaders"`
	TotalRepresentatives int64   `json:"totalRepresentatives"`
	ResolutionRate       float64 `json:"resolutionRate"`
}

func getPlatformSummary(ctx context.Context) (platformSummary, error) {
	issueCollection := config.GetCollection("issues")

	var summary platformSummary
	var err error

	if summary.TotalIssues, err = issueCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return summary, err
	}
	if summary.PendingIssues, err = issueCollection.CountDocuments(ctx, bson.M{"status": models.StatusPending}); err != nil {
		return summary, err
	}
	if summary.InProgressIssues, err = issueCollection.CountDocuments(ctx, bson.M{"status": models.StatusInProgress}); err != nil {
		return summary, err
	}
	if summary.ResolvedIssues, err = issueCollection.CountDocuments(ctx, bson.M{"status": models.StatusResolved}); err != nil {
		return summary, err
	}
	if summary.TotalLeaders, err = config.GetCollection("leaders").CountDocuments(ctx, bson.M{}); err != nil {
		return summary, err
	}
	if summary.TotalRepresentatives, err = config.GetCollection("representatives").CountDocuments(ctx, bson.M{}); err != nil {
		return summary, err
	}

	summary.ResolutionRate = resolutionRate(summary.ResolvedIssues, summary.TotalIssues)
	return summary, nil
}

func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(header)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
}

// ExportAnalyticsData exports issues, leaders, representatives or the
// analytics summary as a JSON or CSV attachment.
func ExportAnalyticsData(c *gin.Context) {
	exportType := c.Query("type")
	format := c.DefaultQuery("format", "json")
	dateSuffix := time.Now().Format("2006-01-02")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch exportType {
	case "issues":
		issues := []models.Issue{}
		cursor, err := config.GetCollection("issues").Find(ctx, bson.M{})
		if err == nil {
			err = cursor.All(ctx, &issues)
		}
		if err != nil {
			log.Println("Error exporting issues:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export data"})
			return
		}

		filename := "issues-export-" + dateSuffix
		if format == "csv" {
			rows := make([][]string, 0, len(issues))
			for _, issue := range issues {
				rows = append(rows, []string{
					issue.ID.Hex(), issue.Title, issue.Category, issue.Location,
					string(issue.Status), strconv.Itoa(issue.Votes),
					issue.CreatedAt.Format(time.RFC3339),
				})
			}
			writeCSV(c, filename, []string{"id", "title", "category", "location", "status", "votes", "createdAt"}, rows)
			return
		}
		sendJSONAttachment(c, filename, issues)

	case "leaders":
		leaders := []models.Leader{}
		cursor, err := config.GetCollection("leaders").Find(ctx, bson.M{})
		if err == nil {
			err = cursor.All(ctx, &leaders)
		}
		if err != nil {
			log.Println("Error exporting leaders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export data"})
			return
		}

		filename := "leaders-export-" + dateSuffix
		if format == "csv" {
			rows := make([][]string, 0, len(leaders))
			for _, leader := range leaders {
				rows = append(rows, []string{
					leader.ID.Hex(), leader.Name, leader.Position, leader.Area,
					leader.Party, strconv.FormatBool(leader.IsActive),
				})
			}
			writeCSV(c, filename, []string{"id", "name", "position", "area", "party", "isActive"}, rows)
			return
		}
		sendJSONAttachment(c, filename, leaders)

	case "representatives":
		representatives := []models.Representative{}
		cursor, err := config.GetCollection("representatives").Find(ctx, bson.M{})
		if err == nil {
			err = cursor.All(ctx, &representatives)
		}
		if err != nil {
			log.Println("Error exporting representatives:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export data"})
			return
		}

		filename := "representatives-export-" + dateSuffix
		if format == "csv" {
			rows := make([][]string, 0, len(representatives))
			for _, rep := range representatives {
				rows = append(rows, []string{
					rep.ID.Hex(), rep.Name, rep.Position, rep.Constituency,
					rep.Party, strconv.FormatBool(rep.IsActive),
				})
			}
			writeCSV(c, filename, []string{"id", "name", "position", "constituency", "party", "isActive"}, rows)
			return
		}
		sendJSONAttachment(c, filename, representatives)

	case "analytics":
		summary, err := getPlatformSummary(ctx)
		if err != nil {
			log.Println("Error exporting analytics summary:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export data"})
			return
		}

		filename := "analytics-export-" + dateSuffix
		if format == "csv" {
			rows := [][]string{
				{"totalIssues", strconv.FormatInt(summary.TotalIssues, 10)},
				{"pendingIssues", strconv.FormatInt(summary.PendingIssues, 10)},
				{"inProgressIssues", strconv.FormatInt(summary.InProgressIssues, 10)},
				{"resolvedIssues", strconv.FormatInt(summary.ResolvedIssues, 10)},
				{"totalLeaders", strconv.FormatInt(summary.TotalLeaders, 10)},
				{"totalRepresentatives", strconv.FormatInt(summary.TotalRepresentatives, 10)},
				{"resolutionRate", strconv.FormatFloat(summary.ResolutionRate, 'f', 1, 64)},
			}
			writeCSV(c, filename, []string{"metric", "value"}, rows)
			return
		}
		sendJSONAttachment(c, filename, gin.H{
			"summary":   summary,
			"timestamp": time.Now().Format(time.RFC3339),
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid export type"})
	}
}

func sendJSONAttachment(c *gin.Context, filename string, data interface{}) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
	c.JSON(http.StatusOK, data)
}
