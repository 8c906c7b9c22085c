package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactInfo is the contact block shared by leaders and representatives.
type ContactInfo struct {
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Office  string `bson:"office,omitempty" json:"office,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// Initiative is a programme a leader is running.
type Initiative struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
}

// Leader represents a local representative profile
type Leader struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Position         string             `bson:"position" json:"position"`
	Area             string             `bson:"area" json:"area"`
	Party            string             `bson:"party" json:"party"`
	PartyColor       string             `bson:"partyColor,omitempty" json:"partyColor,omitempty"`
	Photo            string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Contact          ContactInfo        `bson:"contact" json:"contact"`
	Bio              string             `bson:"bio" json:"bio"`
	Responsibilities []string           `bson:"responsibilities" json:"responsibilities"`
	Initiatives      []Initiative       `bson:"initiatives" json:"initiatives"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
