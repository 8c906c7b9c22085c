package middlewares

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Protect verifies the bearer token and resolves it to a User or an Admin
// record depending on the token's type claim.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "JWT secret not configured"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}

		id, _ := claims["id"].(string)
		accountType, _ := claims["type"].(string)

		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if accountType == "admin" {
			var admin models.Admin
			err := config.GetCollection("admins").FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin not found"})
				c.Abort()
				return
			}
			c.Set("admin_id", admin.ID.Hex())
			c.Set("admin_role", admin.Role)
			c.Set("admin_name", admin.Name)
		} else {
			var user models.User
			err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
				c.Abort()
				return
			}
			c.Set("user_id", user.ID.Hex())
		}

		c.Next()
	}
}

// Authorize rejects the request when the resolved principal's role is not in
// the allowed set. Regular users carry the implicit role "user".
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := "user"
		if adminRole, exists := c.Get("admin_role"); exists {
			role = adminRole.(string)
		} else if _, exists := c.Get("user_id"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized to access this route"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": fmt.Sprintf("Role %s is not authorized to access this route", role)})
		c.Abort()
	}
}

// RequireAdmin re-fetches the admin record so that a token issued before a
// deactivation cannot keep acting on the panel.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminIDVal, exists := c.Get("admin_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized as admin"})
			c.Abort()
			return
		}

		objectID, err := primitive.ObjectIDFromHex(adminIDVal.(string))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized as admin"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var admin models.Admin
		if err := config.GetCollection("admins").FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin not found"})
			c.Abort()
			return
		}

		if !admin.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin account is deactivated"})
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}

// RequireSuperAdmin gates sensitive operations to the superadmin role.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("admin_role")
		if role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Superadmin access required for this operation"})
			c.Abort()
			return
		}
		c.Next()
	}
}
