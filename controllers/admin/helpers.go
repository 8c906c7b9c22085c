package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validationMessages flattens a binding error into human-readable messages.
func validationMessages(err error) []string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(errs))
		for _, fe := range errs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("Please add a %s", field))
			case "max":
				messages = append(messages, fmt.Sprintf("%s cannot be more than %s characters", field, fe.Param()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
			case "email":
				messages = append(messages, "Please add a valid email")
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", field))
			}
		}
		return messages
	}
	return []string{err.Error()}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func totalPages(count int64, limit int) int {
	return int((count + int64(limit) - 1) / int64(limit))
}

// parseObjectIDs converts hex ids to ObjectIDs, dropping malformed entries.
// Bulk operations are best-effort: unknown or malformed ids are absorbed into
// the aggregate count rather than failing the request.
func parseObjectIDs(ids []string) []primitive.ObjectID {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIDs = append(objectIDs, objectID)
		}
	}
	return objectIDs
}
