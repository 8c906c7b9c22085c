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

// GetLeaders lists leaders with admin filters and pagination. Unlike the
// public route, inactive leaders are included unless filtered out.
func GetLeaders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}

	if position := c.Query("position"); position != "" && position != "all" {
		filter["position"] = position
	}
	if area := c.Query("area"); area != "" && area != "all" {
		filter["area"] = bson.M{"$regex": area, "$options": "i"}
	}
	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"position": bson.M{"$regex": search, "$options": "i"}},
			{"area": bson.M{"$regex": search, "$options": "i"}},
			{"party": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if isActive := c.Query("isActive"); isActive != "" {
		filter["isActive"] = isActive == "true"
	}

	page, limit := parsePagination(c)

	leaderCollection := config.GetCollection("leaders")

	total, err := leaderCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting leaders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve leaders"})
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := leaderCollection.Find(ctx, filter, findOptions)
	if err != nil {
		log.Println("Error finding leaders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve leaders"})
		return
	}
	defer cursor.Close(ctx)

	leaders := []models.Leader{}
	if err := cursor.All(ctx, &leaders); err != nil {
		log.Println("Error decoding leaders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve leaders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    leaders,
		"pagination": gin.H{
			"current": page,
			"total":   totalPages(total, limit),
			"results": total,
		},
	})
}

// CreateLeader adds a leader through the admin panel
func CreateLeader(c *gin.Context) {
	var input struct {
		Name             string              `json:"name" binding:"required"`
		Position         string              `json:"position" binding:"required"`
		Area             string              `json:"area" binding:"required"`
		Party            string              `json:"party" binding:"required"`
		PartyColor       string              `json:"partyColor"`
		Photo            string              `json:"photo"`
		Contact          models.ContactInfo  `json:"contact" binding:"required"`
		Bio              string              `json:"bio" binding:"required"`
		Responsibilities []string            `json:"responsibilities"`
		Initiatives      []models.Initiative `json:"initiatives"`
		IsActive         *bool               `json:"isActive,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	if input.Contact.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please add a contact phone"}})
		return
	}

	if input.PartyColor == "" {
		input.PartyColor = "bg-gray-100 text-gray-800 border-gray-300"
	}
	if input.Responsibilities == nil {
		input.Responsibilities = []string{}
	}
	if input.Initiatives == nil {
		input.Initiatives = []models.Initiative{}
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	leader := models.Leader{
		ID:               primitive.NewObjectID(),
		Name:             input.Name,
		Position:         input.Position,
		Area:             input.Area,
		Party:            input.Party,
		PartyColor:       input.PartyColor,
		Photo:            input.Photo,
		Contact:          input.Contact,
		Bio:              input.Bio,
		Responsibilities: input.Responsibilities,
		Initiatives:      input.Initiatives,
		IsActive:         isActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection("leaders").InsertOne(ctx, leader); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Leader with this name already exists"})
			return
		}
		log.Println("Error creating leader:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create leader"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Leader created successfully", "data": leader})
}

// UpdateLeader applies a partial update to a leader
func UpdateLeader(c *gin.Context) {
	leaderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid leader ID"})
		return
	}

	var input struct {
		Name             *string              `json:"name,omitempty"`
		Position         *string              `json:"position,omitempty"`
		Area             *string              `json:"area,omitempty"`
		Party            *string              `json:"party,omitempty"`
		PartyColor       *string              `json:"partyColor,omitempty"`
		Photo            *string              `json:"photo,omitempty"`
		Contact          *models.ContactInfo  `json:"contact,omitempty"`
		Bio              *string              `json:"bio,omitempty"`
		Responsibilities *[]string            `json:"responsibilities,omitempty"`
		Initiatives      *[]models.Initiative `json:"initiatives,omitempty"`
		IsActive         *bool                `json:"isActive,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Position != nil {
		update["position"] = *input.Position
	}
	if input.Area != nil {
		update["area"] = *input.Area
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
	if input.Initiatives != nil {
		update["initiatives"] = *input.Initiatives
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var leader models.Leader
	err = config.GetCollection("leaders").FindOneAndUpdate(
		ctx,
		bson.M{"_id": leaderID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&leader)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Leader not found"})
		} else {
			log.Println("Error updating leader:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update leader"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Leader updated successfully", "data": leader})
}

// DeleteLeader removes a leader
func DeleteLeader(c *gin.Context) {
	leaderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid leader ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("leaders").DeleteOne(ctx, bson.M{"_id": leaderID})
	if err != nil {
		log.Println("Error deleting leader:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete leader"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Leader not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Leader deleted successfully"})
}

// ToggleLeaderActive flips the isActive flag atomically, avoiding the
// fetch-then-save race two concurrent toggles would hit.
func ToggleLeaderActive(c *gin.Context) {
	leaderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid leader ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var leader models.Leader
	err = config.GetCollection("leaders").FindOneAndUpdate(
		ctx,
		bson.M{"_id": leaderID},
		[]bson.M{{"$set": bson.M{"isActive": bson.M{"$not": "$isActive"}, "updatedAt": "$$NOW"}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&leader)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Leader not found"})
		} else {
			log.Println("Error toggling leader:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update leader"})
		}
		return
	}

	state := "deactivated"
	if leader.IsActive {
		state = "activated"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Leader %s successfully", state),
		"data":    leader,
	})
}

// BulkDeleteLeaders removes every matching leader and reports the count
func BulkDeleteLeaders(c *gin.Context) {
	var input struct {
		LeaderIDs []string `json:"leaderIds"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || len(input.LeaderIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide leader IDs to delete"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("leaders").DeleteMany(ctx,
		bson.M{"_id": bson.M{"$in": parseObjectIDs(input.LeaderIDs)}})
	if err != nil {
		log.Println("Error bulk deleting leaders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete leaders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d leaders", result.DeletedCount),
		"data":    gin.H{"deletedCount": result.DeletedCount},
	})
}
