package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreatePlan      = "fitness plan created successfully"
	MessageSuccessGetPlan         = "fitness plan retrieved successfully"
	MessageSuccessGetPlans        = "fitness plans retrieved successfully"
	MessageSuccessGetPlanProgress = "fitness plan progress retrieved successfully"

	MessageFailedCreatePlan      = "failed to create fitness plan"
	MessageFailedGetPlan         = "failed to retrieve fitness plan"
	MessageFailedGetPlans        = "failed to retrieve fitness plans"
	MessageFailedGetPlanProgress = "failed to retrieve fitness plan progress"

	ErrFitnessPlanNotFound = errors.New("fitness plan not found")
	ErrInvalidPlanDates    = errors.New("plan end date must be after start date")
)

type (
	CreateFitnessPlanRequest struct {
		Name                 string           `json:"name" validate:"required,max=100"`
		Goal                 string           `json:"goal" validate:"required,oneof=lose_weight gain_muscle maintain"`
		TargetWeightKg       *decimal.Decimal `json:"target_weight_kg" validate:"omitempty"`
		TargetCaloriesPerDay *decimal.Decimal `json:"target_calories_per_day" validate:"omitempty"`
		StartDate            string           `json:"start_date" validate:"required"` // "2006-01-02"
		EndDate              string           `json:"end_date" validate:"omitempty"`
	}

	FitnessPlanResponse struct {
		ID                   string           `json:"id"`
		Name                 string           `json:"name"`
		Goal                 string           `json:"goal"`
		TargetWeightKg       *decimal.Decimal `json:"target_weight_kg,omitempty"`
		TargetCaloriesPerDay *decimal.Decimal `json:"target_calories_per_day,omitempty"`
		StartDate            time.Time        `json:"start_date"`
		EndDate              *time.Time       `json:"end_date,omitempty"`
		IsActive             bool             `json:"is_active"`
	}

	FitnessPlanProgressResponse struct {
		PlanID             string           `json:"plan_id"`
		Goal               string           `json:"goal"`
		StartWeightKg      *decimal.Decimal `json:"start_weight_kg,omitempty"`
		CurrentWeightKg    *decimal.Decimal `json:"current_weight_kg,omitempty"`
		TargetWeightKg     *decimal.Decimal `json:"target_weight_kg,omitempty"`
		WeightChangeKg     *decimal.Decimal `json:"weight_change_kg,omitempty"`
		ProgressPercentage decimal.Decimal  `json:"progress_percentage"`
		DaysElapsed        int              `json:"days_elapsed"`
		DaysRemaining      *int             `json:"days_remaining,omitempty"`
	}
)
