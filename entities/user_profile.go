package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type UserProfile struct {
	UserID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"user_id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Gender              string          `json:"gender"` // "male", "female", "other"
	HeightCm            decimal.Decimal `gorm:"type:numeric(6,2)" json:"height_cm"`
	WeightKg            decimal.Decimal `gorm:"type:numeric(6,2)" json:"weight_kg"`
	DateOfBirth         time.Time       `gorm:"type:date" json:"date_of_birth"`
	LocationCity        string          `json:"location_city,omitempty"`
	LocationCountry     string          `json:"location_country,omitempty"`
	ProfileImageURL     string          `json:"profile_image_url,omitempty"`
	Bio                 string          `gorm:"type:text" json:"bio,omitempty"`
	DietaryRestrictions []string        `gorm:"serializer:json" json:"dietary_restrictions,omitempty"`
	Allergies           []string        `gorm:"serializer:json" json:"allergies,omitempty"`
	FitnessGoals        []string        `gorm:"serializer:json" json:"fitness_goals,omitempty"`
	CookingSkillLevel   string          `gorm:"default:beginner" json:"cooking_skill_level"`

	User          *User           `gorm:"foreignKey:UserID"`
	HealthHistory []HealthHistory `gorm:"foreignKey:UserID"`
	Timestamp
}
