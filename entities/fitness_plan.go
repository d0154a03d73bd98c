package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FitnessPlan struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID               uuid.UUID        `gorm:"type:uuid;index" json:"user_id"`
	Name                 string           `gorm:"size:100" json:"name"`
	Goal                 string           `gorm:"size:50" json:"goal"` // "lose_weight", "gain_muscle", "maintain"
	TargetWeightKg       *decimal.Decimal `gorm:"type:numeric(6,2)" json:"target_weight_kg,omitempty"`
	TargetCaloriesPerDay *decimal.Decimal `gorm:"type:numeric(10,2)" json:"target_calories_per_day,omitempty"`
	StartDate            time.Time        `gorm:"type:date" json:"start_date"`
	EndDate              *time.Time       `gorm:"type:date" json:"end_date,omitempty"`
	IsActive             bool             `gorm:"default:true" json:"is_active"`

	Timestamp
}
