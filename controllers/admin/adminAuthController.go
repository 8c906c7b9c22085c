package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"
	authUtils "villageconnect-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func adminResponse(a models.Admin) gin.H {
	return gin.H{
		"id":       a.ID,
		"name":     a.Name,
		"email":    a.Email,
		"role":     a.Role,
		"isActive": a.IsActive,
	}
}

// currentAdmin returns the admin record attached by the RequireAdmin
// middleware.
func currentAdmin(c *gin.Context) (models.Admin, bool) {
	v, exists := c.Get("admin")
	if !exists {
		return models.Admin{}, false
	}
	a, ok := v.(models.Admin)
	return a, ok
}

// Login authenticates an admin and issues a typed token
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide email and password"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var admin models.Admin
	err := config.GetCollection("admins").FindOne(ctx, bson.M{"email": input.Email}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !admin.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin account is deactivated"})
		return
	}

	if !admin.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(admin.ID.Hex(), "admin")
	if err != nil {
		log.Println("Error generating admin token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"data": gin.H{
			"token": token,
			"admin": adminResponse(admin),
		},
	})
}

// Register creates a new admin account. Routed behind the superadmin check.
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	if input.Role == "" {
		input.Role = models.RoleAdmin
	}
	if !models.ValidAdminRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": []string{"Please select a valid role"}})
		return
	}

	adminCollection := config.GetCollection("admins")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := adminCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error checking existing admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin already exists with this email"})
		return
	}

	now := time.Now()
	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := admin.HashPassword(); err != nil {
		log.Println("Error hashing admin password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}

	if _, err := adminCollection.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin already exists with this email"})
			return
		}
		log.Println("Error inserting admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}

	token, err := authUtils.GenerateToken(admin.ID.Hex(), "admin")
	if err != nil {
		log.Println("Error generating admin token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"data": gin.H{
			"token": token,
			"admin": adminResponse(admin),
		},
	})
}

// GetProfile returns the authenticated admin
func GetProfile(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized as admin"})
		return
	}

	response := adminResponse(admin)
	response["createdAt"] = admin.CreatedAt

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"admin": response}})
}

// UpdateDetails changes the authenticated admin's name and email
func UpdateDetails(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized as admin"})
		return
	}

	var input struct {
		Name  *string `json:"name,omitempty" binding:"omitempty,max=50"`
		Email *string `json:"email,omitempty" binding:"omitempty,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation Error", "errors": validationMessages(err)})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Admin
	err := config.GetCollection("admins").FindOneAndUpdate(
		ctx,
		bson.M{"_id": admin.ID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin already exists with this email"})
			return
		}
		log.Println("Error updating admin details:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin details updated successfully",
		"data":    gin.H{"admin": adminResponse(updated)},
	})
}
