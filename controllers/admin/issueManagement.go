package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildAdminIssueFilter mirrors the public issue filter with date-range and
// free-text search support.
func buildAdminIssueFilter(c *gin.Context) bson.M {
	filter := bson.M{}

	if status := c.Query("status"); status != "" && status != "all" {
		filter["status"] = status
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter["category"] = category
	}

	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")
	if dateFrom != "" || dateTo != "" {
		createdAt := bson.M{}
		if t, ok := parseQueryDate(dateFrom); ok {
			createdAt["$gte"] = t
		}
		if t, ok := parseQueryDate(dateTo); ok {
			createdAt["$lte"] = t
		}
		if len(createdAt) > 0 {
			filter["createdAt"] = createdAt
		}
	}

	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"location": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter
}

func parseQueryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func issueSortOptions(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "most-voted":
		return bson.D{{Key: "votes", Value: -1}}
	case "recently-updated":
		return bson.D{{Key: "updatedAt", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// GetIssues lists issues with the full admin filter set and pagination
func GetIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := buildAdminIssueFilter(c)
	page, limit := parsePagination(c)

	issueCollection := config.GetCollection("issues")

	total, err := issueCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve issues"})
		return
	}

	findOptions := options.Find().
		SetSort(issueSortOptions(c.Query("sort"))).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := issueCollection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println("Error finding issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		log.Println("Error decoding issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    issues,
		"pagination": gin.H{
			"current": page,
			"total":   totalPages(total, limit),
			"results": total,
		},
	})
}

// bulkIssueFilter targets only ids that parse; malformed or unknown ids are
// absorbed into the aggregate counts rather than failing the request.
func bulkIssueFilter(ids []string) bson.M {
	return bson.M{"_id": bson.M{"$in": parseObjectIDs(ids)}}
}

func bulkStatusUpdate(status, updatedBy string, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"status": status, "updatedAt": now},
		"$push": bson.M{"updates": models.IssueUpdate{
			Text:      fmt.Sprintf("Status changed to %s (Bulk update)", status),
			Date:      now,
			UpdatedBy: updatedBy,
		}},
	}
}

// BulkUpdateIssueStatus sets the status on every matching issue in one
// operation, appending an update-log entry to each. Reports the modified
// count only.
func BulkUpdateIssueStatus(c *gin.Context) {
	var input struct {
		IssueIDs []string `json:"issueIds"`
		Status   string   `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || len(input.IssueIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide issue IDs"})
		return
	}

	if !models.ValidIssueStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
		return
	}

	updatedBy := "Admin"
	if admin, ok := currentAdmin(c); ok {
		updatedBy = admin.Name
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("issues").UpdateMany(
		ctx,
		bulkIssueFilter(input.IssueIDs),
		bulkStatusUpdate(input.Status, updatedBy, time.Now()),
	)
	if err != nil {
		log.Println("Error bulk updating issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Updated %d issues to %s", result.ModifiedCount, input.Status),
		"data":    gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount},
	})
}

// BulkDeleteIssues removes every matching issue and reports the deleted count
func BulkDeleteIssues(c *gin.Context) {
	var input struct {
		IssueIDs []string `json:"issueIds"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || len(input.IssueIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide issue IDs to delete"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("issues").DeleteMany(ctx, bulkIssueFilter(input.IssueIDs))
	if err != nil {
		log.Println("Error bulk deleting issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d issues", result.DeletedCount),
		"data":    gin.H{"deletedCount": result.DeletedCount},
	})
}
