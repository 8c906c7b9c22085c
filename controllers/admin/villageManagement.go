package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateVillageInfo upserts the single village profile document.
func UpdateVillageInfo(c *gin.Context) {
	var input models.VillageInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validationMessages(err)})
		return
	}

	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Village name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":           input.Name,
			"district":       input.District,
			"state":          input.State,
			"population":     input.Population,
			"area":           input.Area,
			"established":    input.Established,
			"description":    input.Description,
			"location":       input.Location,
			"demographics":   input.Demographics,
			"infrastructure": input.Infrastructure,
			"contact":        input.Contact,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var info models.VillageInfo
	err := config.GetCollection("villageinfo").
		FindOneAndUpdate(ctx, bson.M{}, update, opts).
		Decode(&info)
	if err != nil {
		log.Println("Error updating village info:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update village information"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Village information updated successfully",
		"data":    info,
	})
}
