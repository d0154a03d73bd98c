package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthHistory is an append-only log of body-metric changes. Height and
// weight are nullable: an absent value means the sample did not record it.
type HealthHistory struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;index" json:"user_id"`
	HeightCm        *decimal.Decimal `gorm:"type:numeric(6,2)" json:"height_cm,omitempty"`
	WeightKg        *decimal.Decimal `gorm:"type:numeric(6,2)" json:"weight_kg,omitempty"`
	ChangeTimestamp time.Time        `gorm:"index" json:"change_timestamp"`
}
