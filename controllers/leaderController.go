package controllers

import (
	"context"
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

// GetLeaders lists active leaders, optionally filtered by position, area or
// a name/position/area substring search.
func GetLeaders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}

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
		}
	}

	cursor, err := config.GetCollection("leaders").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
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

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(leaders), "data": leaders})
}

// GetLeader retrieves one leader by ID
func GetLeader(c *gin.Context) {
	leaderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid leader ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var leader models.Leader
	err = config.GetCollection("leaders").FindOne(ctx, bson.M{"_id": leaderID}).Decode(&leader)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Leader not found"})
		} else {
			log.Println("Error retrieving leader:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve leader"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": leader})
}

// CreateLeader adds a leader profile
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
		IsActive:         true,
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

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": leader})
}
