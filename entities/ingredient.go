package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ingredient struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string           `gorm:"size:100;uniqueIndex" json:"name"`
	Unit            string           `gorm:"size:20" json:"unit"`
	CaloriesPer100g *decimal.Decimal `gorm:"type:numeric(10,2)" json:"calories_per_100g,omitempty"`
	ProteinPer100g  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"protein_per_100g,omitempty"`
	CarbsPer100g    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"carbs_per_100g,omitempty"`
	FatsPer100g     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"fats_per_100g,omitempty"`

	Timestamp
}

type DishIngredient struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID       uuid.UUID       `gorm:"type:uuid;index" json:"dish_id"`
	IngredientID uuid.UUID       `gorm:"type:uuid;index" json:"ingredient_id"`
	Quantity     decimal.Decimal `gorm:"type:numeric(10,2)" json:"quantity"`
	Unit         string          `gorm:"size:20" json:"unit"`

	Dish       *Dish       `gorm:"foreignKey:DishID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
