package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxUploadFiles = 5

// uploadFormImages pushes each uploaded file to Cloudinary and returns the
// attachment records to store on the issue.
func uploadFormImages(c *gin.Context, caption, uploadedBy string) ([]models.IssueImage, int, string) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, "Please upload at least one image"
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, http.StatusBadRequest, "Please upload at least one image"
	}
	if len(files) > maxUploadFiles {
		return nil, http.StatusBadRequest, fmt.Sprintf("A maximum of %d images can be uploaded at once", maxUploadFiles)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	images := make([]models.IssueImage, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			log.Println("Error opening uploaded file:", err)
			return nil, http.StatusInternalServerError, "Error uploading images"
		}

		publicID := fmt.Sprintf("issue-%d", time.Now().UnixMilli())
		url, err := config.UploadImage(ctx, file, publicID)
		file.Close()
		if err != nil {
			log.Println("Error uploading to Cloudinary:", err)
			return nil, http.StatusInternalServerError, "Error uploading images"
		}

		images = append(images, models.IssueImage{
			ID:         primitive.NewObjectID(),
			URL:        url,
			Caption:    caption,
			UploadedBy: uploadedBy,
			UploadedAt: time.Now(),
		})
	}

	return images, 0, ""
}

// UploadIssueImages attaches up to five photos to an issue
func UploadIssueImages(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	caption := c.PostForm("caption")
	if caption == "" {
		caption = fmt.Sprintf("Issue photo %d", time.Now().UnixMilli())
	}

	images, status, msg := uploadFormImages(c, caption, "")
	if msg != "" {
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection("issues").UpdateOne(
		ctx,
		bson.M{"_id": issueID},
		bson.M{
			"$push": bson.M{"issueImages": bson.M{"$each": images}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		log.Println("Error attaching issue images:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading images"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Images uploaded successfully", "data": images})
}

// autoResolveFilter matches the issue only while it is not yet resolved, so
// the transition and its log entry apply at most once.
func autoResolveFilter(issueID primitive.ObjectID) bson.M {
	return bson.M{"_id": issueID, "status": bson.M{"$ne": models.StatusResolved}}
}

func autoResolveUpdate(uploadedBy string, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"status": models.StatusResolved, "updatedAt": now},
		"$push": bson.M{"updates": models.IssueUpdate{
			Text:      "Issue marked as resolved with photographic evidence",
			Date:      now,
			UpdatedBy: uploadedBy,
		}},
	}
}

// UploadResolutionImages attaches resolution photos and, when the issue is
// not already resolved, force-transitions it to resolved with a log entry.
// The transition is a conditional update so a second upload cannot append a
// duplicate "marked as resolved" entry.
func UploadResolutionImages(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}

	uploadedBy := c.PostForm("uploadedBy")
	if uploadedBy == "" {
		uploadedBy = "Admin"
	}
	caption := c.PostForm("caption")
	if caption == "" {
		caption = fmt.Sprintf("Resolution photo %d", time.Now().UnixMilli())
	}

	images, status, msg := uploadFormImages(c, caption, uploadedBy)
	if msg != "" {
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	result, err := issueCollection.UpdateOne(
		ctx,
		bson.M{"_id": issueID},
		bson.M{
			"$push": bson.M{"resolutionImages": bson.M{"$each": images}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		log.Println("Error attaching resolution images:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading resolution images"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		return
	}

	_, err = issueCollection.UpdateOne(ctx, autoResolveFilter(issueID), autoResolveUpdate(uploadedBy, time.Now()))
	if err != nil {
		log.Println("Error auto-resolving issue:", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resolution images uploaded successfully", "data": images})
}

// cloudinaryPublicID derives the destroy target from a delivery URL.
func cloudinaryPublicID(url string) string {
	parts := strings.Split(url, "/")
	name := parts[len(parts)-1]
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return config.CloudinaryFolder + "/" + name
}

// DeleteImage removes one image from an issue's image list. The remote
// Cloudinary delete is fire-and-forget: the array entry goes away even when
// the remote cleanup fails.
func DeleteImage(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid issue ID"})
		return
	}
	imageID, err := primitive.ObjectIDFromHex(c.Param("imageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image ID"})
		return
	}

	var input struct {
		ImageType string `json:"imageType"`
	}
	_ = c.ShouldBindJSON(&input)

	field := "issueImages"
	if input.ImageType == "resolutionImages" {
		field = "resolutionImages"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issueCollection := config.GetCollection("issues")

	var issue models.Issue
	if err := issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Issue not found"})
		} else {
			log.Println("Error retrieving issue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting image"})
		}
		return
	}

	imageList := issue.IssueImages
	if field == "resolutionImages" {
		imageList = issue.ResolutionImages
	}

	var imageURL string
	for _, img := range imageList {
		if img.ID == imageID {
			imageURL = img.URL
			break
		}
	}
	if imageURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image not found"})
		return
	}

	_, err = issueCollection.UpdateOne(
		ctx,
		bson.M{"_id": issueID},
		bson.M{
			"$pull": bson.M{field: bson.M{"_id": imageID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		log.Println("Error removing image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting image"})
		return
	}

	if strings.Contains(imageURL, "cloudinary") {
		publicID := cloudinaryPublicID(imageURL)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := config.DestroyImage(ctx, publicID); err != nil {
				log.Printf("Cloudinary destroy failed for %s: %v", publicID, err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
}
