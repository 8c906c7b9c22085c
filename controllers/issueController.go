package controllers

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultBaseLatitude  = 28.6129
	defaultBaseLongitude = 77.2295
)

// issueFilterParams are the list-endpoint query parameters.
type issueFilterParams struct {
	Status   string
	Category string
	Search   string
	DateFrom string
	DateTo   string
}

// buildIssueFilter combines status, category, date-range and substring search
// into a single AND filter. "all" and empty values add no constraint.
func buildIssueFilter(p issueFilterParams) bson.M {
	filter := bson.M{}

	if p.Status != "" && p.Status != "all" {
		filter["status"] = p.Status
	}
	if p.Category != "" && p.Category != "all" {
		filter["category"] = p.Category
	}

	if p.DateFrom != "" || p.DateTo != "" {
		createdAt := bson.M{}
		if from, ok := parseQueryDate(p.DateFrom); ok {
			createdAt["$gte"] = from
		}
		if to, ok := parseQueryDate(p.DateTo); ok {
			createdAt["$lte"] = to
		}
		if len(createdAt) > 0 {
			filter["createdAt"] = createdAt
		}
	}

	if p.Search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": p.Search, "$options": "i"}},
			{"description": bson.M{"$regex": p.Search, "$options": "i"}},
			{"location": bson.M{"$regex": p.Search, "$options": "i"}},
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

// issueSortOptions maps a sort key to Mongo sort order.
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

// parsePagination clamps page and limit query values to sane bounds.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func totalPages(count int64, limit int) int {
	return int((count + int64(limit) - 1) / int64(limit))
}

// autoAssignCoordinates reports whether missing coordinates get assigned a
// jittered default location. Disabled deployments reject them instead.
func autoAssignCoordinates() bool {
	return os.Getenv("AUTO_ASSIGN_COORDINATES") != "false"
}

// defaultCoordinates jitters the configured base point by up to ±0.005°, so
// unlocated reports still spread out on the village map.
func defaultCoordinates() models.Coordinates {
	baseLat := defaultBaseLatitude
	baseLng := defaultBaseLongitude
	if v, err := strconv.ParseFloat(os.Getenv("BASE_LATITUDE"), 64); err == nil {
		baseLat = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("BASE_LONGITUDE"), 64); err == nil {
		baseLng = v
	}

	return models.Coordinates{
		Lat: baseLat + (rand.Float64()-0.5)*0.01,
		Lng: baseLng + (rand.Float64()-0.5)*0.01,
	}
}

// GetIssues handles the public filtered/sorted/paginated listing
func GetIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := buildIssueFilter(issueFilterParams{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	})

	page, limit := parsePagination(c)
	skip := (page - 1) * limit

	issueCollection := config.GetCollection("issues")

	total, err := issueCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting issues:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve issues"})
		return
	}

	findOptions := options.Find().
		SetSort(issueSortOptions(c.Query("sort"))).
		SetSkip(int64(skip)).
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
		"count":   len(issues),
		"data":    issues,
		"pagination": gin.H{
			"current": page,
			"total":   totalPages(total, limit),
			"results": total,
		},
	})
}

// GetIssue retrieves a single issue by its ID
func GetIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = config.GetCollection("issues").FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		} else {
			log.Println("Error retrieving issue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issue})
}

// CreateIssue handles public issue submission
func CreateIssue(c *gin.Context) {
	var input struct {
		Title       string              `json:"title" binding:"required,max=100"`
		Description string              `json:"description" binding:"required,max=1000"`
		Category    string              `json:"category" binding:"required"`
		Location    string              `json:"location" binding:"required,max=200"`
		Coordinates *models.Coordinates `json:"coordinates,omitempty"`
		Reporter    *models.Reporter    `json:"reporter,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	if !models.ValidIssueCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please select a valid category"}})
		return
	}

	coordinates := input.Coordinates
	if coordinates == nil {
		if !autoAssignCoordinates() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please provide coordinates"}})
			return
		}
		assigned := defaultCoordinates()
		coordinates = &assigned
	}

	reporter := models.Reporter{Name: "Anonymous"}
	if input.Reporter != nil {
		reporter = *input.Reporter
		if reporter.Name == "" {
			reporter.Name = "Anonymous"
		}
	}

	now := time.Now()
	issue := models.Issue{
		ID:               primitive.NewObjectID(),
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		Location:         input.Location,
		Status:           models.StatusPending,
		Coordinates:      *coordinates,
		Reporter:         reporter,
		IssueImages:      []models.IssueImage{},
		ResolutionImages: []models.IssueImage{},
		Updates:          []models.IssueUpdate{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection("issues").InsertOne(ctx, issue); err != nil {
		log.Println("Error creating issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": issue})
}

// UpdateIssue applies a partial update to an issue
func UpdateIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	var input struct {
		Title       *string             `json:"title,omitempty"`
		Description *string             `json:"description,omitempty"`
		Category    *string             `json:"category,omitempty"`
		Location    *string             `json:"location,omitempty"`
		Coordinates *models.Coordinates `json:"coordinates,omitempty"`
		Reporter    *models.Reporter    `json:"reporter,omitempty"`
		Votes       *int                `json:"votes,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Category != nil {
		if !models.ValidIssueCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please select a valid category"}})
			return
		}
		update["category"] = *input.Category
	}
	if input.Location != nil {
		update["location"] = *input.Location
	}
	if input.Coordinates != nil {
		update["coordinates"] = *input.Coordinates
	}
	if input.Reporter != nil {
		update["reporter"] = *input.Reporter
	}
	if input.Votes != nil {
		update["votes"] = *input.Votes
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = config.GetCollection("issues").FindOneAndUpdate(
		ctx,
		bson.M{"_id": issueID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		} else {
			log.Println("Error updating issue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issue})
}

// UpdateIssueStatus transitions an issue between pending, in-progress and
// resolved, appending an update-log entry.
func UpdateIssueStatus(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidIssueStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"status": input.Status, "updatedAt": time.Now()},
		"$push": bson.M{"updates": models.IssueUpdate{
			Text:      "Status changed to " + input.Status,
			Date:      time.Now(),
			UpdatedBy: "System",
		}},
	}

	var issue models.Issue
	err = config.GetCollection("issues").FindOneAndUpdate(
		ctx,
		bson.M{"_id": issueID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		} else {
			log.Println("Error updating issue status:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update issue status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issue})
}

// DeleteIssue hard-deletes an issue
func DeleteIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("issues").DeleteOne(ctx, bson.M{"_id": issueID})
	if err != nil {
		log.Println("Error deleting issue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete issue"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Issue deleted successfully"})
}
