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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetRepresentatives lists representatives with admin filters and pagination
func GetRepresentatives(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}

	if position := c.Query("position"); position != "" && position != "all" {
		filter["position"] = models.NormalizeRepresentativePosition(position)
	}
	if party := c.Query("party"); party != "" && party != "all" {
		filter["party"] = bson.M{"$regex": party, "$options": "i"}
	}
	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"position": bson.M{"$regex": search, "$options": "i"}},
			{"constituency": bson.M{"$regex": search, "$options": "i"}},
			{"party": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if isActive := c.Query("isActive"); isActive != "" {
		filter["isActive"] = isActive == "true"
	}

	page, limit := parsePagination(c)

	repCollection := config.GetCollection("representatives")

	total, err := repCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting representatives:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representatives"})
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repCollection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println("Error finding representatives:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representatives"})
		return
	}
	defer cursor.Close(ctx)

	representatives := []models.Representative{}
	if err := cursor.All(ctx, &representatives); err != nil {
		log.Println("Error decoding representatives:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representatives"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    representatives,
		"pagination": gin.H{
			"current": page,
			"total":   totalPages(total, limit),
			"results": total,
		},
	})
}

// CreateRepresentative adds a political representative
func CreateRepresentative(c *gin.Context) {
	var input struct {
		Name               string             `json:"name" binding:"required"`
		Position           string             `json:"position" binding:"required"`
		Constituency       string             `json:"constituency" binding:"required"`
		Party              string             `json:"party" binding:"required"`
		PartyColor         string             `json:"partyColor"`
		Photo              string             `json:"photo"`
		Contact            models.ContactInfo `json:"contact" binding:"required"`
		Bio                string             `json:"bio" binding:"required"`
		Responsibilities   []string           `json:"responsibilities"`
		Achievements       []string           `json:"achievements"`
		CurrentInitiatives []string           `json:"currentInitiatives"`
		ElectionYear       int                `json:"electionYear"`
		IsActive           *bool              `json:"isActive,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	if !models.ValidRepresentativePosition(input.Position) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please add a valid position"}})
		return
	}
	if input.Contact.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please add a contact phone"}})
		return
	}

	if input.Responsibilities == nil {
		input.Responsibilities = []string{}
	}
	if input.Achievements == nil {
		input.Achievements = []string{}
	}
	if input.CurrentInitiatives == nil {
		input.CurrentInitiatives = []string{}
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	representative := models.Representative{
		ID:                 primitive.NewObjectID(),
		Name:               input.Name,
		Position:           input.Position,
		Constituency:       input.Constituency,
		Party:              input.Party,
		PartyColor:         input.PartyColor,
		Photo:              input.Photo,
		Contact:            input.Contact,
		Bio:                input.Bio,
		Responsibilities:   input.Responsibilities,
		Achievements:       input.Achievements,
		CurrentInitiatives: input.CurrentInitiatives,
		ElectionYear:       input.ElectionYear,
		IsActive:           isActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection("representatives").InsertOne(ctx, representative); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Representative with this name already exists"})
			return
		}
		log.Println("Error creating representative:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create representative"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Representative created successfully", "data": representative})
}

// UpdateRepresentative applies a partial update to a representative
func UpdateRepresentative(c *gin.Context) {
	repID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid representative ID"})
		return
	}

	var input struct {
		Name               *string             `json:"name,omitempty"`
		Position           *string             `json:"position,omitempty"`
		Constituency       *string             `json:"constituency,omitempty"`
		Party              *string             `json:"party,omitempty"`
		PartyColor         *string             `json:"partyColor,omitempty"`
		Photo              *string             `json:"photo,omitempty"`
		Contact            *models.ContactInfo `json:"contact,omitempty"`
		Bio                *string             `json:"bio,omitempty"`
		Responsibilities   *[]string           `json:"responsibilities,omitempty"`
		Achievements       *[]string           `json:"achievements,omitempty"`
		CurrentInitiatives *[]string           `json:"currentInitiatives,omitempty"`
		ElectionYear       *int                `json:"electionYear,omitempty"`
		IsActive           *bool               `json:"isActive,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	if input.Position != nil && !models.ValidRepresentativePosition(*input.Position) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please add a valid position"}})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Position != nil {
		update["position"] = *input.Position
	}
	if input.Constituency != nil {
		update["constituency"] = *input.Constituency
	}
	if input.Party != nil {
		update["party"] = *input.Party
	}
	if input.PartyColor != nil {
		update["partyColor"] = *input.PartyColor
	}
	if input.Photo != nil {
		update["photo"] = *input.Photo
	}
	if input.Contact != nil {
		update["contact"] = *input.Contact
	}
	if input.Bio != nil {
		update["bio"] = *input.Bio
	}
	if input.Responsibilities != nil {
		update["responsibilities"] = *input.Responsibilities
	}
	if input.Achievements != nil {
		update["achievements"] = *input.Achievements
	}
	if input.CurrentInitiatives != nil {
		update["currentInitiatives"] = *input.CurrentInitiatives
	}
	if input.ElectionYear != nil {
		update["electionYear"] = *input.ElectionYear
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var representative models.Representative
	err = config.GetCollection("representatives").FindOneAndUpdate(
		ctx,
		bson.M{"_id": repID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&representative)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Representative not found"})
		} else {
			log.Println("Error updating representative:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update representative"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Representative updated successfully", "data": representative})
}

// DeleteRepresentative removes a representative
func DeleteRepresentative(c *gin.Context) {
	repID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid representative ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("representatives").DeleteOne(ctx, bson.M{"_id": repID})
	if err != nil {
		log.Println("Error deleting representative:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete representative"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Representative not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Representative deleted successfully"})
}

// ToggleRepresentativeActive flips the isActive flag atomically
func ToggleRepresentativeActive(c *gin.Context) {
	repID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid representative ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var representative models.Representative
	err = config.GetCollection("representatives").FindOneAndUpdate(
		ctx,
		bson.M{"_id": repID},
		[]bson.M{{"$set": bson.M{"isActive": bson.M{"$not": "$isActive"}, "updatedAt": "$$NOW"}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&representative)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Representative not found"})
		} else {
			log.Println("Error toggling representative:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update representative"})
		}
		return
	}

	state := "deactivated"
	if representative.IsActive {
		state = "activated"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Representative %s successfully", state),
		"data":    representative,
	})
}

// BulkDeleteRepresentatives removes every matching representative
func BulkDeleteRepresentatives(c *gin.Context) {
	var input struct {
		RepresentativeIDs []string `json:"representativeIds"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || len(input.RepresentativeIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide representative IDs to delete"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("representatives").DeleteMany(ctx,
		bson.M{"_id": bson.M{"$in": parseObjectIDs(input.RepresentativeIDs)}})
	if err != nil {
		log.Println("Error bulk deleting representatives:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete representatives"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d representatives", result.DeletedCount),
		"data":    gin.H{"deletedCount": result.DeletedCount},
	})
}

// GetRepresentativeStats breaks the roster down by position
func GetRepresentativeStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$position",
			"count": bson.M{"$sum": 1},
			"active": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$isActive", true}}, 1, 0},
			}},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := config.GetCollection("representatives").Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("Error aggregating representative stats:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representative stats"})
		return
	}
	defer cursor.Close(ctx)

	stats := []bson.M{}
	if err := cursor.All(ctx, &stats); err != nil {
		log.Println("Error decoding representative stats:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representative stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
