package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredient    = "failed to retrieve ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound      = errors.New("ingredient not found")
	ErrIngredientAlreadyExists = errors.New("ingredient already exists")
)

type (
	CreateIngredientRequest struct {
		Name            string           `json:"name" validate:"required,max=100"`
		Unit            string           `json:"unit" validate:"omitempty,max=20"`
		CaloriesPer100g *decimal.Decimal `json:"calories_per_100g" validate:"omitempty"`
		ProteinPer100g  *decimal.Decimal `json:"protein_per_100g" validate:"omitempty"`
		CarbsPer100g    *decimal.Decimal `json:"carbs_per_100g" validate:"omitempty"`
		FatsPer100g     *decimal.Decimal `json:"fats_per_100g" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name            string           `json:"name" validate:"omitempty,max=100"`
		Unit            string           `json:"unit" validate:"omitempty,max=20"`
		CaloriesPer100g *decimal.Decimal `json:"calories_per_100g" validate:"omitempty"`
		ProteinPer100g  *decimal.Decimal `json:"protein_per_100g" validate:"omitempty"`
		CarbsPer100g    *decimal.Decimal `json:"carbs_per_100g" validate:"omitempty"`
		FatsPer100g     *decimal.Decimal `json:"fats_per_100g" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID              string           `json:"id"`
		Name            string           `json:"name"`
		Unit            string           `json:"unit,omitempty"`
		CaloriesPer100g *decimal.Decimal `json:"calories_per_100g,omitempty"`
		ProteinPer100g  *decimal.Decimal `json:"protein_per_100g,omitempty"`
		CarbsPer100g    *decimal.Decimal `json:"carbs_per_100g,omitempty"`
		FatsPer100g     *decimal.Decimal `json:"fats_per_100g,omitempty"`
	}
)
