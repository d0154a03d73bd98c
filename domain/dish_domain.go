package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateDish      = "dish created successfully"
	MessageSuccessGetDish         = "dish retrieved successfully"
	MessageSuccessSearchDishes    = "dishes retrieved successfully"
	MessageSuccessUpdateDish      = "dish updated successfully"
	MessageSuccessDeleteDish      = "dish deleted successfully"
	MessageSuccessUploadDishImage = "dish image uploaded successfully"

	MessageFailedCreateDish      = "failed to create dish"
	MessageFailedGetDish         = "failed to retrieve dish"
	MessageFailedSearchDishes    = "failed to retrieve dishes"
	MessageFailedUpdateDish      = "failed to update dish"
	MessageFailedDeleteDish      = "failed to delete dish"
	MessageFailedUploadDishImage = "failed to upload dish image"

	ErrDishNotFound = errors.New("dish not found")
)

type (
	// NutritionFacts carries the optional per-serving nutrient values shared
	// by create and update requests. A nil value means "unknown".
	NutritionFacts struct {
		Calories   *decimal.Decimal `json:"calories" validate:"omitempty"`
		ProteinG   *decimal.Decimal `json:"protein_g" validate:"omitempty"`
		CarbsG     *decimal.Decimal `json:"carbs_g" validate:"omitempty"`
		FatsG      *decimal.Decimal `json:"fats_g" validate:"omitempty"`
		SatFatsG   *decimal.Decimal `json:"sat_fats_g" validate:"omitempty"`
		UnsatFatsG *decimal.Decimal `json:"unsat_fats_g" validate:"omitempty"`
		TransFatsG *decimal.Decimal `json:"trans_fats_g" validate:"omitempty"`
		FiberG     *decimal.Decimal `json:"fiber_g" validate:"omitempty"`
		SugarG     *decimal.Decimal `json:"sugar_g" validate:"omitempty"`

		CalciumMg   *decimal.Decimal `json:"calcium_mg" validate:"omitempty"`
		IronMg      *decimal.Decimal `json:"iron_mg" validate:"omitempty"`
		PotassiumMg *decimal.Decimal `json:"potassium_mg" validate:"omitempty"`
		SodiumMg    *decimal.Decimal `json:"sodium_mg" validate:"omitempty"`
		ZincMg      *decimal.Decimal `json:"zinc_mg" validate:"omitempty"`
		MagnesiumMg *decimal.Decimal `json:"magnesium_mg" validate:"omitempty"`

		VitAMcg   *decimal.Decimal `json:"vit_a_mcg" validate:"omitempty"`
		VitB1Mg   *decimal.Decimal `json:"vit_b1_mg" validate:"omitempty"`
		VitB2Mg   *decimal.Decimal `json:"vit_b2_mg" validate:"omitempty"`
		VitB3Mg   *decimal.Decimal `json:"vit_b3_mg" validate:"omitempty"`
		VitB5Mg   *decimal.Decimal `json:"vit_b5_mg" validate:"omitempty"`
		VitB6Mg   *decimal.Decimal `json:"vit_b6_mg" validate:"omitempty"`
		VitB9Mcg  *decimal.Decimal `json:"vit_b9_mcg" validate:"omitempty"`
		VitB12Mcg *decimal.Decimal `json:"vit_b12_mcg" validate:"omitempty"`
		VitCMg    *decimal.Decimal `json:"vit_c_mg" validate:"omitempty"`
		VitDMcg   *decimal.Decimal `json:"vit_d_mcg" validate:"omitempty"`
		VitEMg    *decimal.Decimal `json:"vit_e_mg" validate:"omitempty"`
		VitKMcg   *decimal.Decimal `json:"vit_k_mcg" validate:"omitempty"`
	}

	CreateDishRequest struct {
		Name            string   `json:"name" validate:"required,max=100"`
		Description     string   `json:"description" validate:"omitempty"`
		Cuisine         string   `json:"cuisine" validate:"omitempty,max=50"`
		CookingSteps    []string `json:"cooking_steps" validate:"omitempty"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int      `json:"servings" validate:"omitempty,min=1"`
		NutritionFacts
	}

	UpdateDishRequest struct {
		Name            string   `json:"name" validate:"omitempty,max=100"`
		Description     string   `json:"description" validate:"omitempty"`
		Cuisine         string   `json:"cuisine" validate:"omitempty,max=50"`
		CookingSteps    []string `json:"cooking_steps" validate:"omitempty"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int      `json:"servings" validate:"omitempty,min=1"`
		NutritionFacts
	}

	// SearchDishesQuery enumerates every recognized filter; unknown query
	// keys are rejected at the handler boundary.
	SearchDishesQuery struct {
		Name        string           `query:"name" validate:"omitempty,max=100"`
		Cuisine     string           `query:"cuisine" validate:"omitempty,max=50"`
		MinCalories *decimal.Decimal `query:"min_calories" validate:"omitempty"`
		MaxCalories *decimal.Decimal `query:"max_calories" validate:"omitempty"`
		Page        int              `query:"page" validate:"omitempty,min=1"`
		Limit       int              `query:"limit" validate:"omitempty,min=1,max=100"`
	}

	UploadDishImageRequest struct {
		DishID string                `json:"dish_id" form:"dish_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DishResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Description     string    `json:"description,omitempty"`
		Cuisine         string    `json:"cuisine,omitempty"`
		CookingSteps    []string  `json:"cooking_steps,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes,omitempty"`
		CookTimeMinutes int       `json:"cook_time_minutes,omitempty"`
		ImageURLs       []string  `json:"image_urls,omitempty"`
		Servings        int       `json:"servings,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		NutritionFacts
	}
)
