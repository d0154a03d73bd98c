package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetQuickStats         = "quick stats retrieved successfully"
	MessageSuccessGetComprehensiveStats = "comprehensive stats retrieved successfully"
	MessageSuccessGetCalorieStats       = "calorie stats retrieved successfully"
	MessageSuccessGetMacronutrients     = "macronutrient stats retrieved successfully"
	MessageSuccessGetMicronutrients     = "micronutrient stats retrieved successfully"
	MessageSuccessGetConsumption        = "consumption pattern stats retrieved successfully"
	MessageSuccessGetProgress           = "progress stats retrieved successfully"
	MessageSuccessGetNutritionOverview  = "nutrition overview retrieved successfully"

	MessageFailedGetStats     = "failed to retrieve statistics"
	MessageFailedInvalidRange = "invalid time range"
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrStatsProfileNotFound   = errors.New("user profile not found")
)

// TimePeriod is the bucket granularity of a stats series.
type TimePeriod string

const (
	PeriodHourly  TimePeriod = "hourly"
	PeriodDaily   TimePeriod = "daily"
	PeriodWeekly  TimePeriod = "weekly"
	PeriodMonthly TimePeriod = "monthly"
	PeriodYearly  TimePeriod = "yearly"
)

// TimeUnit is the unit of a simplified "N units ago" range.
type TimeUnit string

const (
	UnitHour  TimeUnit = "hour"
	UnitDay   TimeUnit = "day"
	UnitWeek  TimeUnit = "week"
	UnitMonth TimeUnit = "month"
	UnitYear  TimeUnit = "year"
)

type (
	// StatsTimeRange is a concrete closed date range plus bucket period.
	// StartDate <= EndDate always holds for ranges produced by the engine.
	StatsTimeRange struct {
		StartDate time.Time  `json:"start_date"`
		EndDate   time.Time  `json:"end_date"`
		Period    TimePeriod `json:"period"`
	}

	SimpleTimeRange struct {
		Unit TimeUnit `query:"unit" json:"unit" validate:"required,oneof=hour day week month year"`
		Num  int      `query:"num" json:"num" validate:"required,min=1,max=365"`
	}

	CalorieDataPoint struct {
		Timestamp      time.Time        `json:"timestamp"`
		Calories       decimal.Decimal  `json:"calories"`
		GoalCalories   *decimal.Decimal `json:"goal_calories,omitempty"`
		DeficitSurplus *decimal.Decimal `json:"deficit_surplus,omitempty"`
	}

	CalorieStats struct {
		DataPoints          []CalorieDataPoint `json:"data_points"`
		AvgDailyCalories    decimal.Decimal    `json:"avg_daily_calories"`
		TotalCalories       decimal.Decimal    `json:"total_calories"`
		PeakConsumptionHour *int               `json:"peak_consumption_hour,omitempty"`
		DaysAboveGoal       int                `json:"days_above_goal"`
		DaysBelowGoal       int                `json:"days_below_goal"`
	}

	MacronutrientBreakdown struct {
		CarbsPercentage      decimal.Decimal `json:"carbs_percentage"`
		ProteinPercentage    decimal.Decimal `json:"protein_percentage"`
		FatsPercentage       decimal.Decimal `json:"fats_percentage"`
		CarbsGrams           decimal.Decimal `json:"carbs_grams"`
		ProteinGrams         decimal.Decimal `json:"protein_grams"`
		FatsGrams            decimal.Decimal `json:"fats_grams"`
		FiberGrams           decimal.Decimal `json:"fiber_grams"`
		SugarGrams           decimal.Decimal `json:"sugar_grams"`
		SaturatedFatsGrams   decimal.Decimal `json:"saturated_fats_grams"`
		UnsaturatedFatsGrams decimal.Decimal `json:"unsaturated_fats_grams"`
	}

	MacronutrientDataPoint struct {
		Date     time.Time       `json:"date"`
		CarbsG   decimal.Decimal `json:"carbs_g"`
		ProteinG decimal.Decimal `json:"protein_g"`
		FatsG    decimal.Decimal `json:"fats_g"`
		FiberG   decimal.Decimal `json:"fiber_g"`
		SugarG   decimal.Decimal `json:"sugar_g"`
	}

	MacronutrientStats struct {
		CurrentBreakdown MacronutrientBreakdown   `json:"current_breakdown"`
		DataPoints       []MacronutrientDataPoint `json:"data_points"`
		AvgBreakdown     MacronutrientBreakdown   `json:"avg_breakdown"`
	}

	MicronutrientValue struct {
		Amount               decimal.Decimal `json:"amount"`
		Unit                 string          `json:"unit"`
		DailyValuePercentage decimal.Decimal `json:"daily_value_percentage"`
	}

	MicronutrientStats struct {
		Vitamins         map[string]MicronutrientValue `json:"vitamins"`
		Minerals         map[string]MicronutrientValue `json:"minerals"`
		DeficiencyAlerts []string                      `json:"deficiency_alerts"`
	}

	DishFrequency struct {
		DishID           string          `json:"dish_id"`
		DishName         string          `json:"dish_name"`
		Cuisine          string          `json:"cuisine,omitempty"`
		ConsumptionCount int             `json:"consumption_count"`
		LastConsumed     time.Time       `json:"last_consumed"`
		AvgPortionSize   decimal.Decimal `json:"avg_portion_size"`
	}

	CuisineDistribution struct {
		Cuisine          string          `json:"cuisine"`
		ConsumptionCount int             `json:"consumption_count"`
		Percentage       decimal.Decimal `json:"percentage"`
		CaloriesConsumed decimal.Decimal `json:"calories_consumed"`
	}

	EatingPatternDataPoint struct {
		Hour        int             `json:"hour"`
		IntakeCount int             `json:"intake_count"`
		AvgCalories decimal.Decimal `json:"avg_calories"`
	}

	ConsumptionPatternStats struct {
		TopDishes             []DishFrequency          `json:"top_dishes"`
		CuisineDistribution   []CuisineDistribution    `json:"cuisine_distribution"`
		EatingPatterns        []EatingPatternDataPoint `json:"eating_patterns"`
		DishesTriedCount      int                      `json:"dishes_tried_count"`
		UniqueCuisinesCount   int                      `json:"unique_cuisines_count"`
		AvgMealsPerDay        decimal.Decimal          `json:"avg_meals_per_day"`
		WeekendVsWeekdayRatio decimal.Decimal          `json:"weekend_vs_weekday_ratio"`
	}

	HealthMetricDataPoint struct {
		Date                    time.Time        `json:"date"`
		WeightKg                *decimal.Decimal `json:"weight_kg,omitempty"`
		BMI                     *decimal.Decimal `json:"bmi,omitempty"`
		CaloriesConsumed        decimal.Decimal  `json:"calories_consumed"`
		GoalAdherencePercentage decimal.Decimal  `json:"goal_adherence_percentage"`
	}

	ProgressStats struct {
		HealthMetrics                []HealthMetricDataPoint `json:"health_metrics"`
		WeightTrend                  string                  `json:"weight_trend,omitempty"` // "increasing", "decreasing", "stable"
		AvgGoalAdherence             decimal.Decimal         `json:"avg_goal_adherence"`
		DietaryRestrictionCompliance decimal.Decimal         `json:"dietary_restriction_compliance"`
		BestNutritionDay             *time.Time              `json:"best_nutrition_day,omitempty"`
		ImprovementTrend             string                  `json:"improvement_trend,omitempty"`
	}

	CorrelationInsight struct {
		Factor1             string          `json:"factor1"`
		Factor2             string          `json:"factor2"`
		CorrelationStrength decimal.Decimal `json:"correlation_strength"`
		Description         string          `json:"description"`
	}

	PredictiveInsight struct {
		Metric          string          `json:"metric"`
		PredictedValue  decimal.Decimal `json:"predicted_value"`
		ConfidenceLevel decimal.Decimal `json:"confidence_level"`
		TimeHorizonDays int             `json:"time_horizon_days"`
		Recommendation  string          `json:"recommendation"`
	}

	AdvancedAnalytics struct {
		Correlations            []CorrelationInsight `json:"correlations"`
		Predictions             []PredictiveInsight  `json:"predictions"`
		OptimizationSuggestions []string             `json:"optimization_suggestions"`
	}

	NutritionOverview struct {
		CalorieStats       CalorieStats       `json:"calorie_stats"`
		MacronutrientStats MacronutrientStats `json:"macronutrient_stats"`
		MicronutrientStats MicronutrientStats `json:"micronutrient_stats"`
	}

	ComprehensiveStats struct {
		TimeRange           StatsTimeRange          `json:"time_range"`
		NutritionOverview   NutritionOverview       `json:"nutrition_overview"`
		ConsumptionPatterns ConsumptionPatternStats `json:"consumption_patterns"`
		ProgressStats       ProgressStats           `json:"progress_stats"`
		AdvancedAnalytics   *AdvancedAnalytics      `json:"advanced_analytics,omitempty"`
		GeneratedAt         time.Time               `json:"generated_at"`
	}

	QuickStats struct {
		TodayCalories         decimal.Decimal  `json:"today_calories"`
		TodayGoalPercentage   decimal.Decimal  `json:"today_goal_percentage"`
		WeeklyAvgCalories     decimal.Decimal  `json:"weekly_avg_calories"`
		TopCuisineThisWeek    string           `json:"top_cuisine_this_week,omitempty"`
		TotalDishesTried      int              `json:"total_dishes_tried"`
		CurrentStreakDays     int              `json:"current_streak_days"`
		WeightChangeThisMonth *decimal.Decimal `json:"weight_change_this_month,omitempty"`
	}
)
