package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateIntake = "intake logged successfully"
	MessageSuccessGetIntakes   = "intakes retrieved successfully"
	MessageSuccessGetIntake    = "intake retrieved successfully"
	MessageSuccessUpdateIntake = "intake updated successfully"
	MessageSuccessDeleteIntake = "intake deleted successfully"

	MessageFailedCreateIntake = "failed to log intake"
	MessageFailedGetIntakes   = "failed to retrieve intakes"
	MessageFailedGetIntake    = "failed to retrieve intake"
	MessageFailedUpdateIntake = "failed to update intake"
	MessageFailedDeleteIntake = "failed to delete intake"

	ErrIntakeNotFound    = errors.New("intake not found")
	ErrInvalidIntakeTime = errors.New("invalid intake time")
	ErrInvalidPortion    = errors.New("portion size must be positive")
)

type (
	CreateIntakeRequest struct {
		DishID      string           `json:"dish_id" validate:"required,uuid"`
		IntakeTime  string           `json:"intake_time" validate:"omitempty"` // RFC3339; defaults to now
		PortionSize *decimal.Decimal `json:"portion_size" validate:"omitempty"`
		WaterMl     *int             `json:"water_ml" validate:"omitempty,min=0"`
	}

	CreateIntakeByNameRequest struct {
		DishName    string           `json:"dish_name" validate:"required,max=100"`
		IntakeTime  string           `json:"intake_time" validate:"omitempty"`
		PortionSize *decimal.Decimal `json:"portion_size" validate:"omitempty"`
		WaterMl     *int             `json:"water_ml" validate:"omitempty,min=0"`
	}

	UpdateIntakeRequest struct {
		IntakeTime  string           `json:"intake_time" validate:"omitempty"`
		PortionSize *decimal.Decimal `json:"portion_size" validate:"omitempty"`
		WaterMl     *int             `json:"water_ml" validate:"omitempty,min=0"`
	}

	IntakeResponse struct {
		ID          string          `json:"id"`
		DishID      string          `json:"dish_id"`
		DishName    string          `json:"dish_name,omitempty"`
		IntakeTime  time.Time       `json:"intake_time"`
		PortionSize decimal.Decimal `json:"portion_size"`
		WaterMl     *int            `json:"water_ml,omitempty"`
		CreatedAt   time.Time       `json:"created_at"`
	}
)
