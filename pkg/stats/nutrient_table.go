package stats

import (
	"NutriTrack-Backend/entities"

	"github.com/shopspring/decimal"
)

type nutrientSpec struct {
	Key        string
	Display    string
	Unit       string
	IsVitamin  bool
	DailyValue decimal.Decimal
	Amount     func(dish *entities.Dish) *decimal.Decimal
}

// micronutrientTable lists every tracked micronutrient with its adult
// daily value. Deficiency alerts compare aggregated intake against these.
var micronutrientTable = []nutrientSpec{
	{"vit_a_mcg", "Vitamin A", "mcg", true, decimal.NewFromInt(900), func(d *entities.Dish) *decimal.Decimal { return d.VitAMcg }},
	{"vit_b1_mg", "Vitamin B1", "mg", true, decimal.NewFromFloat(1.2), func(d *entities.Dish) *decimal.Decimal { return d.VitB1Mg }},
	{"vit_b2_mg", "Vitamin B2", "mg", true, decimal.NewFromFloat(1.3), func(d *entities.Dish) *decimal.Decimal { return d.VitB2Mg }},
	{"vit_b3_mg", "Vitamin B3", "mg", true, decimal.NewFromInt(16), func(d *entities.Dish) *decimal.Decimal { return d.VitB3Mg }},
	{"vit_b5_mg", "Vitamin B5", "mg", true, decimal.NewFromInt(5), func(d *entities.Dish) *decimal.Decimal { return d.VitB5Mg }},
	{"vit_b6_mg", "Vitamin B6", "mg", true, decimal.NewFromFloat(1.7), func(d *entities.Dish) *decimal.Decimal { return d.VitB6Mg }},
	{"vit_b9_mcg", "Vitamin B9", "mcg", true, decimal.NewFromInt(400), func(d *entities.Dish) *decimal.Decimal { return d.VitB9Mcg }},
	{"vit_b12_mcg", "Vitamin B12", "mcg", true, decimal.NewFromFloat(2.4), func(d *entities.Dish) *decimal.Decimal { return d.VitB12Mcg }},
	{"vit_c_mg", "Vitamin C", "mg", true, decimal.NewFromInt(90), func(d *entities.Dish) *decimal.Decimal { return d.VitCMg }},
	{"vit_d_mcg", "Vitamin D", "mcg", true, decimal.NewFromInt(20), func(d *entities.Dish) *decimal.Decimal { return d.VitDMcg }},
	{"vit_e_mg", "Vitamin E", "mg", true, decimal.NewFromInt(15), func(d *entities.Dish) *decimal.Decimal { return d.VitEMg }},
	{"vit_k_mcg", "Vitamin K", "mcg", true, decimal.NewFromInt(120), func(d *entities.Dish) *decimal.Decimal { return d.VitKMcg }},
	{"calcium_mg", "Calcium", "mg", false, decimal.NewFromInt(1000), func(d *entities.Dish) *decimal.Decimal { return d.CalciumMg }},
	{"iron_mg", "Iron", "mg", false, decimal.NewFromInt(18), func(d *entities.Dish) *decimal.Decimal { return d.IronMg }},
	{"potassium_mg", "Potassium", "mg", false, decimal.NewFromInt(4700), func(d *entities.Dish) *decimal.Decimal { return d.PotassiumMg }},
	{"sodium_mg", "Sodium", "mg", false, decimal.NewFromInt(2300), func(d *entities.Dish) *decimal.Decimal { return d.SodiumMg }},
	{"zinc_mg", "Zinc", "mg", false, decimal.NewFromInt(11), func(d *entities.Dish) *decimal.Decimal { return d.ZincMg }},
	{"magnesium_mg", "Magnesium", "mg", false, decimal.NewFromInt(400), func(d *entities.Dish) *decimal.Decimal { return d.MagnesiumMg }},
}
