package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetHealthHistory = "health history retrieved successfully"
	MessageSuccessGetHealthRecord  = "health record retrieved successfully"
	MessageSuccessAddHealthRecord  = "health record added successfully"

	MessageFailedGetHealthHistory = "failed to retrieve health history"
	MessageFailedGetHealthRecord  = "failed to retrieve health record"
	MessageFailedAddHealthRecord  = "failed to add health record"

	ErrHealthRecordNotFound = errors.New("health record not found")
	ErrEmptyHealthRecord    = errors.New("health record needs a height or a weight")
)

type (
	AddHealthRecordRequest struct {
		HeightCm *decimal.Decimal `json:"height_cm" validate:"omitempty"`
		WeightKg *decimal.Decimal `json:"weight_kg" validate:"omitempty"`
	}

	HealthRecordResponse struct {
		ID              string           `json:"id"`
		HeightCm        *decimal.Decimal `json:"height_cm,omitempty"`
		WeightKg        *decimal.Decimal `json:"weight_kg,omitempty"`
		ChangeTimestamp time.Time        `json:"change_timestamp"`
	}
)
