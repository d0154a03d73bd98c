package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dish holds the per-serving nutritional profile. Every nutrient column is
// nullable: NULL means "unknown" and must be excluded from aggregation, never
// treated as zero.
type Dish struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string     `gorm:"size:100;index" json:"name"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	Cuisine         string     `gorm:"size:50;index" json:"cuisine,omitempty"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	CookingSteps    []string   `gorm:"serializer:json" json:"cooking_steps,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int        `json:"cook_time_minutes,omitempty"`
	ImageURLs       []string   `gorm:"serializer:json" json:"image_urls,omitempty"`
	Servings        int        `json:"servings,omitempty"`

	Calories   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"calories,omitempty"`
	ProteinG   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"protein_g,omitempty"`
	CarbsG     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"carbs_g,omitempty"`
	FatsG      *decimal.Decimal `gorm:"type:numeric(10,2)" json:"fats_g,omitempty"`
	SatFatsG   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"sat_fats_g,omitempty"`
	UnsatFatsG *decimal.Decimal `gorm:"type:numeric(10,2)" json:"unsat_fats_g,omitempty"`
	TransFatsG *decimal.Decimal `gorm:"type:numeric(10,2)" json:"trans_fats_g,omitempty"`
	FiberG     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"fiber_g,omitempty"`
	SugarG     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"sugar_g,omitempty"`

	CalciumMg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"calcium_mg,omitempty"`
	IronMg      *decimal.Decimal `gorm:"type:numeric(10,2)" json:"iron_mg,omitempty"`
	PotassiumMg *decimal.Decimal `gorm:"type:numeric(10,2)" json:"potassium_mg,omitempty"`
	SodiumMg    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"sodium_mg,omitempty"`
	ZincMg      *decimal.Decimal `gorm:"type:numeric(10,2)" json:"zinc_mg,omitempty"`
	MagnesiumMg *decimal.Decimal `gorm:"type:numeric(10,2)" json:"magnesium_mg,omitempty"`

	VitAMcg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_a_mcg,omitempty"`
	VitB1Mg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b1_mg,omitempty"`
	VitB2Mg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b2_mg,omitempty"`
	VitB3Mg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b3_mg,omitempty"`
	VitB5Mg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b5_mg,omitempty"`
	VitB6Mg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b6_mg,omitempty"`
	VitB9Mcg  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b9_mcg,omitempty"`
	VitB12Mcg *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_b12_mcg,omitempty"`
	VitCMg    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_c_mg,omitempty"`
	VitDMcg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_d_mcg,omitempty"`
	VitEMg    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_e_mg,omitempty"`
	VitKMcg   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"vit_k_mcg,omitempty"`

	Creator *User `gorm:"foreignKey:CreatedByUserID"`
	Timestamp
}
