package controllers

import (
	"testing"
	"time"

	"villageconnect-be/config"
	"villageconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAutoResolveFilterExcludesResolvedIssues(t *testing.T) {
	id := primitive.NewObjectID()
	filter := autoResolveFilter(id)

	if filter["_id"] != id {
		t.Errorf("_id = %v, want %v", filter["_id"], id)
	}
	statusCond, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status condition missing from %v", filter)
	}
	if statusCond["$ne"] != models.StatusResolved {
		t.Errorf("status guard = %v, want $ne resolved", statusCond)
	}
}

func TestAutoResolveUpdateDocument(t *testing.T) {
	now := time.Now()
	update := autoResolveUpdate("Ramesh", now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("$set missing from %v", update)
	}
	if set["status"] != models.StatusResolved {
		t.Errorf("status = %v, want resolved", set["status"])
	}
	if set["updatedAt"] != now {
		t.Errorf("updatedAt = %v, want %v", set["updatedAt"], now)
	}

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("$push missing from %v", update)
	}
	entry, ok := push["updates"].(models.IssueUpdate)
	if !ok {
		t.Fatalf("updates entry = %T, want IssueUpdate", push["updates"])
	}
	if entry.Text != "Issue marked as resolved with photographic evidence" {
		t.Errorf("entry text = %q", entry.Text)
	}
	if entry.UpdatedBy != "Ramesh" {
		t.Errorf("entry updatedBy = %q", entry.UpdatedBy)
	}
}

func TestCloudinaryPublicID(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1/village-platform/issue-123.jpg": config.CloudinaryFolder + "/issue-123",
		"https://res.cloudinary.com/demo/image/upload/issue-456.png":                     config.CloudinaryFolder + "/issue-456",
		"https://example.com/plain":                                                      config.CloudinaryFolder + "/plain",
	}
	for url, want := range cases {
		if got := cloudinaryPublicID(url); got != want {
			t.Errorf("cloudinaryPublicID(%q) = %q, want %q", url, got, want)
		}
	}
}
