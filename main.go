package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"
	"villageconnect-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if os.Getenv("GO_ENV") == "production" {
		cfg.AllowOrigins = []string{os.Getenv("FRONTEND_URL")}
	} else {
		cfg.AllowOrigins = []string{"http://localhost:5173"}
	}
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cfg
}

// seedSuperAdmin creates the initial superadmin account when the admins
// collection is empty and seed credentials are configured.
func seedSuperAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminCollection := config.GetCollection("admins")
	count, err := adminCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Error checking admins collection:", err)
		return
	}
	if count > 0 {
		return
	}

	now := time.Now()
	superAdmin := models.Admin{
		Name:      "Super Admin",
		Email:     email,
		Password:  password,
		Role:      models.RoleSuperAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := superAdmin.HashPassword(); err != nil {
		log.Println("Error hashing seed admin password:", err)
		return
	}
	if _, err := adminCollection.InsertOne(ctx, superAdmin); err != nil {
		log.Println("Error seeding superadmin:", err)
		return
	}
	log.Println("Seeded superadmin account:", email)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	if err := models.EnsureIssueIndexes(config.GetCollection("issues")); err != nil {
		log.Println("Error ensuring issue indexes:", err)
	}
	if err := models.EnsureAdminIndexes(config.GetCollection("admins")); err != nil {
		log.Println("Error ensuring admin indexes:", err)
	}
	if err := models.EnsureUserIndexes(config.GetCollection("users")); err != nil {
		log.Println("Error ensuring user indexes:", err)
	}

	seedSuperAdmin()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.LeaderRoutes(r)
	routes.RepresentativeRoutes(r)
	routes.VillageRoutes(r)
	routes.AdminRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Village Platform API is running!",
			"version":     "1.0.0",
			"environment": os.Getenv("GO_ENV"),
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "API is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Server running in %s mode on port %s", os.Getenv("GO_ENV"), port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
