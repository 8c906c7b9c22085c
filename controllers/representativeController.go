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

// GetRepresentatives lists active political representatives. The position
// filter accepts the short aliases the frontend uses (mp, mla, sarpanch,
// zilla) as well as stored values.
func GetRepresentatives(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}

	if position := c.Query("position"); position != "" && position != "all" {
		filter["position"] = models.NormalizeRepresentativePosition(position)
	}
	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"position": bson.M{"$regex": search, "$options": "i"}},
			{"constituency": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := config.GetCollection("representatives").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
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

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(representatives), "data": representatives})
}

// GetRepresentative retrieves one representative by ID
func GetRepresentative(c *gin.Context) {
	repID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid representative ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var representative models.Representative
	err = config.GetCollection("representatives").FindOne(ctx, bson.M{"_id": repID}).Decode(&representative)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Political representative not found"})
		} else {
			log.Println("Error retrieving representative:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve representative"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": representative})
}
