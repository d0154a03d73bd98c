package stats

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepository struct {
	intakes        []entities.Intake
	healthHistory  []entities.HealthHistory
	profile        *entities.UserProfile
	dailyTotals    map[string]decimal.Decimal
	topCuisine     string
	distinctDishes int64
	intakeDays     map[string]bool
	weightSince    *decimal.Decimal
	weightBefore   *decimal.Decimal
}

func (r *fakeStatsRepository) GetIntakesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.Intake, error) {
	return r.intakes, nil
}

func (r *fakeStatsRepository) GetHealthHistoryInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.HealthHistory, error) {
	return r.healthHistory, nil
}

func (r *fakeStatsRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	return r.profile, nil
}

func (r *fakeStatsRepository) GetDailyCalorieTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	if r.dailyTotals == nil {
		return map[string]decimal.Decimal{}, nil
	}
	return r.dailyTotals, nil
}

func (r *fakeStatsRepository) GetTopCuisineSince(ctx context.Context, userID uuid.UUID, since time.Time) (string, error) {
	return r.topCuisine, nil
}

func (r *fakeStatsRepository) CountDistinctDishes(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.distinctDishes, nil
}

func (r *fakeStatsRepository) HasIntakeOnDate(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	return r.intakeDays[day.Format(dateLayout)], nil
}

func (r *fakeStatsRepository) GetLatestWeightSince(ctx context.Context, userID uuid.UUID, since time.Time) (*decimal.Decimal, error) {
	return r.weightSince, nil
}

func (r *fakeStatsRepository) GetLatestWeightAtOrBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (*decimal.Decimal, error) {
	return r.weightBefore, nil
}

func dec(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

func decPtr(value float64) *decimal.Decimal {
	d := decimal.NewFromFloat(value)
	return &d
}

func dailyRange(start, end time.Time) domain.StatsTimeRange {
	return domain.StatsTimeRange{StartDate: start, EndDate: end, Period: domain.PeriodDaily}
}

func testDish(name string, calories float64) *entities.Dish {
	return &entities.Dish{
		ID:       uuid.New(),
		Name:     name,
		Calories: decPtr(calories),
	}
}

func TestGetCalorieStats_InvalidRange(t *testing.T) {
	service := newClockedService(&fakeStatsRepository{})
	day := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	_, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(day, day.AddDate(0, 0, -1)))

	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestGetCalorieStats_Empty(t *testing.T) {
	service := newClockedService(&fakeStatsRepository{})
	day := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(day.AddDate(0, 0, -6), day))

	require.NoError(t, err)
	assert.Empty(t, stats.DataPoints)
	assert.True(t, stats.TotalCalories.IsZero())
	assert.True(t, stats.AvgDailyCalories.IsZero())
	assert.Nil(t, stats.PeakConsumptionHour)
	assert.Zero(t, stats.DaysAboveGoal)
	assert.Zero(t, stats.DaysBelowGoal)
}

func TestGetCalorieStats_DailyTotals(t *testing.T) {
	dish := testDish("Oatmeal", 500)
	day1 := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 17, 19, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day1, PortionSize: dec(2)},
			{Dish: dish, IntakeTime: day2, PortionSize: dec(2)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(day1, day2))

	require.NoError(t, err)
	require.Len(t, stats.DataPoints, 2)

	// 500 kcal at double portion is 1000 per day.
	assert.True(t, stats.DataPoints[0].Calories.Equal(dec(1000)))
	assert.True(t, stats.DataPoints[1].Calories.Equal(dec(1000)))
	assert.True(t, stats.TotalCalories.Equal(dec(2000)))
	assert.True(t, stats.AvgDailyCalories.Equal(dec(1000)))

	// Both days sit below the default 2000 goal when no profile exists.
	assert.Equal(t, 0, stats.DaysAboveGoal)
	assert.Equal(t, 2, stats.DaysBelowGoal)

	require.NotNil(t, stats.DataPoints[0].GoalCalories)
	assert.True(t, stats.DataPoints[0].GoalCalories.Equal(dec(2000)))
	require.NotNil(t, stats.DataPoints[0].DeficitSurplus)
	assert.True(t, stats.DataPoints[0].DeficitSurplus.Equal(dec(-1000)))
}

func TestGetCalorieStats_ZeroPortionCountsAsOne(t *testing.T) {
	dish := testDish("Toast", 300)
	when := time.Date(2025, 6, 17, 9, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: when},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(when, when))

	require.NoError(t, err)
	assert.True(t, stats.TotalCalories.Equal(dec(300)))
}

func TestGetCalorieStats_PeakHourTieGoesToEarliest(t *testing.T) {
	dish := testDish("Snack", 200)
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day.Add(9 * time.Hour), PortionSize: dec(1)},
			{Dish: dish, IntakeTime: day.Add(15 * time.Hour), PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)
	require.NotNil(t, stats.PeakConsumptionHour)
	assert.Equal(t, 9, *stats.PeakConsumptionHour)
}

func TestGetCalorieStats_SkipsDishesWithoutCalories(t *testing.T) {
	day := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	unknown := &entities.Dish{ID: uuid.New(), Name: "Mystery"}

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: unknown, IntakeTime: day, PortionSize: dec(1)},
			{Dish: testDish("Rice", 400), IntakeTime: day, PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)
	assert.True(t, stats.TotalCalories.Equal(dec(400)))
}

func TestGetCalorieStats_GoalFromProfile(t *testing.T) {
	// Male, 30 years old at the test clock, 70 kg, 175 cm.
	repo := &fakeStatsRepository{
		profile: &entities.UserProfile{
			Gender:      entities.GenderMale,
			WeightKg:    dec(70),
			HeightCm:    dec(175),
			DateOfBirth: time.Date(1995, 6, 18, 14, 30, 0, 0, time.UTC),
		},
	}
	service := newClockedService(repo)
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	stats, err := service.GetCalorieStats(context.Background(), uuid.New(),
		domain.StatsTimeRange{StartDate: day, EndDate: day, Period: domain.PeriodDaily})

	require.NoError(t, err)
	assert.Empty(t, stats.DataPoints)

	// Harris-Benedict at moderate activity lands near 2680 for this profile.
	goal, err := service.(*statsService).goalCalories(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, goal.GreaterThan(dec(2600)), "goal was %s", goal)
	assert.True(t, goal.LessThan(dec(2750)), "goal was %s", goal)
}

func TestGetMacronutrientStats_Percentages(t *testing.T) {
	day := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	dish := &entities.Dish{
		ID:       uuid.New(),
		Name:     "Bowl",
		CarbsG:   decPtr(100),
		ProteinG: decPtr(50),
		FatsG:    decPtr(50),
		FiberG:   decPtr(10),
		SugarG:   decPtr(5),
	}

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day, PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetMacronutrientStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)
	breakdown := stats.CurrentBreakdown
	assert.True(t, breakdown.CarbsPercentage.Equal(dec(50)))
	assert.True(t, breakdown.ProteinPercentage.Equal(dec(25)))
	assert.True(t, breakdown.FatsPercentage.Equal(dec(25)))
	assert.True(t, breakdown.FiberGrams.Equal(dec(10)))
	assert.True(t, breakdown.SugarGrams.Equal(dec(5)))

	require.Len(t, stats.DataPoints, 1)
	assert.True(t, stats.DataPoints[0].CarbsG.Equal(dec(100)))

	assert.Equal(t, breakdown, stats.AvgBreakdown)
}

func TestGetMacronutrientStats_EmptyHasZeroPercentages(t *testing.T) {
	service := newClockedService(&fakeStatsRepository{})
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	stats, err := service.GetMacronutrientStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)
	assert.True(t, stats.CurrentBreakdown.CarbsPercentage.IsZero())
	assert.True(t, stats.CurrentBreakdown.ProteinPercentage.IsZero())
	assert.True(t, stats.CurrentBreakdown.FatsPercentage.IsZero())
	assert.Empty(t, stats.DataPoints)
}

func TestGetMicronutrientStats_DeficiencyAlerts(t *testing.T) {
	day := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	dish := &entities.Dish{
		ID:     uuid.New(),
		Name:   "Orange",
		VitCMg: decPtr(90), // exactly the daily value
		IronMg: decPtr(1),  // well below 70% of 18 mg
	}

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day, PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetMicronutrientStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)

	vitC, ok := stats.Vitamins["Vitamin C"]
	require.True(t, ok)
	assert.True(t, vitC.DailyValuePercentage.Equal(dec(100)))
	assert.Equal(t, "mg", vitC.Unit)

	iron, ok := stats.Minerals["Iron"]
	require.True(t, ok)
	assert.True(t, iron.Amount.Equal(dec(1)))

	assert.NotContains(t, stats.DeficiencyAlerts, "Low Vitamin C intake: 100.0% of daily value")
	assert.Contains(t, stats.DeficiencyAlerts, "Low Iron intake: 5.6% of daily value")
}

func TestGetMicronutrientStats_EmptyRangeAlertsEveryNutrient(t *testing.T) {
	day := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	service := newClockedService(&fakeStatsRepository{})

	stats, err := service.GetMicronutrientStats(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)

	// With nothing logged every nutrient sits at 0% of its daily value, so
	// the whole table alerts. Intentional: zero intake is the strongest
	// deficiency signal, not the absence of one.
	assert.Len(t, stats.DeficiencyAlerts, len(micronutrientTable))
	assert.Contains(t, stats.DeficiencyAlerts, "Low Iron intake: 0.0% of daily value")
}

func TestGetConsumptionPatterns(t *testing.T) {
	pasta := testDish("Pasta", 600)
	pasta.Cuisine = "Italian"
	curry := testDish("Curry", 500)
	curry.Cuisine = "Indian"

	saturday := time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 13, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 6, 17, 19, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: pasta, IntakeTime: saturday, PortionSize: dec(1)},
			{Dish: pasta, IntakeTime: monday, PortionSize: dec(1)},
			{Dish: curry, IntakeTime: tuesday, PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetConsumptionPatterns(context.Background(), uuid.New(),
		dailyRange(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)

	require.Len(t, stats.TopDishes, 2)
	assert.Equal(t, "Pasta", stats.TopDishes[0].DishName)
	assert.Equal(t, 2, stats.TopDishes[0].ConsumptionCount)
	assert.Equal(t, monday, stats.TopDishes[0].LastConsumed)

	require.Len(t, stats.CuisineDistribution, 2)
	assert.Equal(t, "Italian", stats.CuisineDistribution[0].Cuisine)

	assert.Equal(t, 2, stats.DishesTriedCount)
	assert.Equal(t, 2, stats.UniqueCuisinesCount)

	// One weekend intake against two weekday intakes.
	assert.True(t, stats.WeekendVsWeekdayRatio.Equal(dec(0.5)))

	// Three intakes across a four day inclusive range.
	assert.True(t, stats.AvgMealsPerDay.Equal(dec(0.75)))

	require.Len(t, stats.EatingPatterns, 24)
	assert.Equal(t, 2, stats.EatingPatterns[13].IntakeCount)
}

func TestGetProgressStats_AdherenceAndWeightTrend(t *testing.T) {
	day1 := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 17, 8, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		healthHistory: []entities.HealthHistory{
			{WeightKg: decPtr(70), ChangeTimestamp: day1},
			{WeightKg: decPtr(73), ChangeTimestamp: day2},
		},
		dailyTotals: map[string]decimal.Decimal{
			"2025-06-10": dec(2000), // exactly on goal
			"2025-06-17": dec(1000), // half the goal
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetProgressStats(context.Background(), uuid.New(),
		dailyRange(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	require.Len(t, stats.HealthMetrics, 2)

	assert.True(t, stats.HealthMetrics[0].GoalAdherencePercentage.Equal(dec(100)))
	assert.True(t, stats.HealthMetrics[1].GoalAdherencePercentage.Equal(dec(50)))
	assert.True(t, stats.AvgGoalAdherence.Equal(dec(75)))

	// 73 kg is more than 2% above 70 kg.
	assert.Equal(t, "increasing", stats.WeightTrend)

	require.NotNil(t, stats.BestNutritionDay)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), *stats.BestNutritionDay)

	// Fewer than eight samples leaves the improvement trend unset.
	assert.Empty(t, stats.ImprovementTrend)
}

func TestGetProgressStats_StableWeightWithinTwoPercent(t *testing.T) {
	day1 := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 17, 8, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		healthHistory: []entities.HealthHistory{
			{WeightKg: decPtr(70), ChangeTimestamp: day1},
			{WeightKg: decPtr(70.5), ChangeTimestamp: day2},
		},
	}
	service := newClockedService(repo)

	stats, err := service.GetProgressStats(context.Background(), uuid.New(),
		dailyRange(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	assert.Equal(t, "stable", stats.WeightTrend)
}

func TestGetQuickStats(t *testing.T) {
	repo := &fakeStatsRepository{
		dailyTotals: map[string]decimal.Decimal{
			"2025-06-18": dec(1500),
			"2025-06-17": dec(2500),
		},
		topCuisine:     "Japanese",
		distinctDishes: 12,
		intakeDays: map[string]bool{
			"2025-06-18": true,
			"2025-06-17": true,
			"2025-06-16": true,
		},
		weightSince:  decPtr(71),
		weightBefore: decPtr(73),
	}
	service := newClockedService(repo)

	stats, err := service.GetQuickStats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, stats.TodayCalories.Equal(dec(1500)))
	assert.True(t, stats.TodayGoalPercentage.Equal(dec(75)))
	assert.True(t, stats.WeeklyAvgCalories.Equal(dec(2000)))
	assert.Equal(t, "Japanese", stats.TopCuisineThisWeek)
	assert.Equal(t, 12, stats.TotalDishesTried)
	assert.Equal(t, 3, stats.CurrentStreakDays)

	require.NotNil(t, stats.WeightChangeThisMonth)
	assert.True(t, stats.WeightChangeThisMonth.Equal(dec(-2)))
}

func TestGetQuickStats_NoData(t *testing.T) {
	service := newClockedService(&fakeStatsRepository{intakeDays: map[string]bool{}})

	stats, err := service.GetQuickStats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, stats.TodayCalories.IsZero())
	assert.Zero(t, stats.CurrentStreakDays)
	assert.Empty(t, stats.TopCuisineThisWeek)
	assert.Nil(t, stats.WeightChangeThisMonth)
}

func TestGetComprehensiveStats(t *testing.T) {
	dish := testDish("Salad", 400)
	dish.Cuisine = "Mediterranean"
	day := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day, PortionSize: dec(1)},
		},
	}
	service := newClockedService(repo)

	timeRange := dailyRange(day, day)
	stats, err := service.GetComprehensiveStats(context.Background(), uuid.New(), timeRange)

	require.NoError(t, err)
	assert.Equal(t, timeRange, stats.TimeRange)
	assert.Equal(t, testClock(), stats.GeneratedAt)
	assert.True(t, stats.NutritionOverview.CalorieStats.TotalCalories.Equal(dec(400)))

	require.NotNil(t, stats.AdvancedAnalytics)
	// One cuisine is well under five, so diversification is suggested.
	assert.Contains(t, stats.AdvancedAnalytics.OptimizationSuggestions,
		"Diversify your cuisine choices to ensure a wider range of nutrients and prevent dietary boredom.")
}

func TestGetNutritionOverview(t *testing.T) {
	dish := testDish("Soup", 250)
	day := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepository{
		intakes: []entities.Intake{
			{Dish: dish, IntakeTime: day, PortionSize: dec(2)},
		},
	}
	service := newClockedService(repo)

	overview, err := service.GetNutritionOverview(context.Background(), uuid.New(),
		dailyRange(day, day))

	require.NoError(t, err)
	assert.True(t, overview.CalorieStats.TotalCalories.Equal(dec(500)))
	assert.NotNil(t, overview.MicronutrientStats.Vitamins)
	assert.NotNil(t, overview.MicronutrientStats.Minerals)
}
