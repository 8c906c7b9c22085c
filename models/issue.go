package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in-progress"
	StatusResolved   IssueStatus = "resolved"
)

// IssueCategories lists the civic domains an issue can be filed under.
var IssueCategories = []string{
	"Roads & Infrastructure",
	"Drainage & Sanitation",
	"Water Supply",
	"Electricity",
	"Waste Management",
	"Healthcare",
	"Education",
	"Public Safety",
	"Parks & Recreation",
	"Other",
}

// ValidIssueStatus reports whether s is one of the three issue statuses.
func ValidIssueStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ValidIssueCategory reports whether c is a known category.
func ValidIssueCategory(c string) bool {
	for _, cat := range IssueCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Reporter identifies who filed the issue.
type Reporter struct {
	Name    string `bson:"name" json:"name"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
}

// IssueImage is a photo attached to an issue.
type IssueImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL        string             `bson:"url" json:"url"`
	Caption    string             `bson:"caption,omitempty" json:"caption,omitempty"`
	UploadedBy string             `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	UploadedAt time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}

// IssueUpdate is one entry in the append-only update log.
type IssueUpdate struct {
	Text      string    `bson:"text" json:"text"`
	Date      time.Time `bson:"date" json:"date"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// Issue represents a civic complaint reported by a resident
type Issue struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Category         string             `bson:"category" json:"category"`
	Location         string             `bson:"location" json:"location"`
	Status           IssueStatus        `bson:"status" json:"status"`
	Coordinates      Coordinates        `bson:"coordinates" json:"coordinates"`
	Reporter         Reporter           `bson:"reporter" json:"reporter"`
	Votes            int                `bson:"votes" json:"votes"`
	IssueImages      []IssueImage       `bson:"issueImages" json:"issueImages"`
	ResolutionImages []IssueImage       `bson:"resolutionImages" json:"resolutionImages"`
	Updates          []IssueUpdate      `bson:"updates" json:"updates"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EnsureIssueIndexes creates the compound status/category index
func EnsureIssueIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}},
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
