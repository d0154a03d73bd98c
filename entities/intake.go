package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Intake is one logged consumption event. Records are immutable once written
// as far as the stats engine is concerned.
type Intake struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;index" json:"user_id"`
	DishID      uuid.UUID       `gorm:"type:uuid;index" json:"dish_id"`
	IntakeTime  time.Time       `gorm:"index" json:"intake_time"`
	PortionSize decimal.Decimal `gorm:"type:numeric(5,2);default:1.0" json:"portion_size"`
	WaterMl     *int            `json:"water_ml,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	Dish *Dish `gorm:"foreignKey:DishID"`
}
