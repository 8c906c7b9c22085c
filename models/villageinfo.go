package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VillageLocation struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type VillageDemographics struct {
	LiteracyRate    string   `bson:"literacyRate,omitempty" json:"literacyRate,omitempty"`
	EmploymentRate  string   `bson:"employmentRate,omitempty" json:"employmentRate,omitempty"`
	AverageIncome   string   `bson:"averageIncome,omitempty" json:"averageIncome,omitempty"`
	MainOccupations []string `bson:"mainOccupations,omitempty" json:"mainOccupations,omitempty"`
}

type VillageInfrastructure struct {
	Roads       string `bson:"roads,omitempty" json:"roads,omitempty"`
	Electricity string `bson:"electricity,omitempty" json:"electricity,omitempty"`
	WaterSupply string `bson:"waterSupply,omitempty" json:"waterSupply,omitempty"`
	Internet    string `bson:"internet,omitempty" json:"internet,omitempty"`
}

type VillageContact struct {
	PanchayatOffice string `bson:"panchayatOffice,omitempty" json:"panchayatOffice,omitempty"`
	EmergencyPhone  string `bson:"emergencyPhone,omitempty" json:"emergencyPhone,omitempty"`
	Email           string `bson:"email,omitempty" json:"email,omitempty"`
}

// VillageInfo is the singleton descriptive record for the village
type VillageInfo struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Name           string                `bson:"name" json:"name"`
	District       string                `bson:"district,omitempty" json:"district,omitempty"`
	State          string                `bson:"state,omitempty" json:"state,omitempty"`
	Population     string                `bson:"population,omitempty" json:"population,omitempty"`
	Area           string                `bson:"area,omitempty" json:"area,omitempty"`
	Established    string                `bson:"established,omitempty" json:"established,omitempty"`
	Description    string                `bson:"description,omitempty" json:"description,omitempty"`
	Location       VillageLocation       `bson:"location,omitempty" json:"location,omitempty"`
	Demographics   VillageDemographics   `bson:"demographics,omitempty" json:"demographics,omitempty"`
	Infrastructure VillageInfrastructure `bson:"infrastructure,omitempty" json:"infrastructure,omitempty"`
	Contact        VillageContact        `bson:"contact,omitempty" json:"contact,omitempty"`
	CreatedAt      time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt" json:"updatedAt"`
}
