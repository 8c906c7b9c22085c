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
	"go.mongodb.org/mongo-driver/mongo"
)

// GetVillageInfo returns the singleton village record
func GetVillageInfo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var info models.VillageInfo
	err := config.GetCollection("villageinfo").FindOne(ctx, bson.M{}).Decode(&info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Village info not found"})
		} else {
			log.Println("Error retrieving village info:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve village info"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": info})
}
