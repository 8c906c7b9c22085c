package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RepresentativePositions lists the higher-office roles.
var RepresentativePositions = []string{
	"MLA",
	"MP",
	"Sarpanch",
	"Zilla Parishad Member",
	"Councillor",
}

// ValidRepresentativePosition reports whether p is a known position.
func ValidRepresentativePosition(p string) bool {
	for _, pos := range RepresentativePositions {
		if p == pos {
			return true
		}
	}
	return false
}

// NormalizeRepresentativePosition maps the short query aliases used by the
// frontend filters onto stored position values. Unknown values pass through.
func NormalizeRepresentativePosition(p string) string {
	switch p {
	case "mp":
		return "MP"
	case "mla":
		return "MLA"
	case "sarpanch":
		return "Sarpanch"
	case "zilla":
		return "Zilla Parishad Member"
	}
	return p
}

// Representative represents a higher-office political representative
type Representative struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Position           string             `bson:"position" json:"position"`
	Constituency       string             `bson:"constituency" json:"constituency"`
	Party              string             `bson:"party" json:"party"`
	PartyColor         string             `bson:"partyColor,omitempty" json:"partyColor,omitempty"`
	Photo              string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Contact            ContactInfo        `bson:"contact" json:"contact"`
	Bio                string             `bson:"bio" json:"bio"`
	Responsibilities   []string           `bson:"responsibilities" json:"responsibilities"`
	Achievements       []string           `bson:"achievements" json:"achievements"`
	CurrentInitiatives []string           `bson:"currentInitiatives" json:"currentInitiatives"`
	ElectionYear       int                `bson:"electionYear,omitempty" json:"electionYear,omitempty"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
