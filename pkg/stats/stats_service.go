package stats

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// Harris-Benedict activity multiplier, moderate activity assumed.
	activityFactor = 1.55

	deficiencyThreshold = 70

	maxStreakDays = 365
)

var (
	defaultGoalCalories = decimal.NewFromInt(2000)
	hundred             = decimal.NewFromInt(100)
)

type (
	// StatsService computes nutrition and health statistics from records
	// fetched through StatsRepository. The calculators are pure with respect
	// to storage: every query lives in the repository.
	StatsService interface {
		ConvertSimpleRange(simple domain.SimpleTimeRange) domain.StatsTimeRange
		GetCalorieStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.CalorieStats, error)
		GetMacronutrientStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.MacronutrientStats, error)
		GetMicronutrientStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.MicronutrientStats, error)
		GetConsumptionPatterns(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ConsumptionPatternStats, error)
		GetProgressStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ProgressStats, error)
		GetNutritionOverview(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.NutritionOverview, error)
		GetComprehensiveStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ComprehensiveStats, error)
		GetQuickStats(ctx context.Context, userID uuid.UUID) (domain.QuickStats, error)
	}

	statsService struct {
		statsRepository StatsRepository
		now             func() time.Time
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		now:             time.Now,
	}
}

// NewStatsServiceWithClock injects the clock, used by tests and anything
// that needs deterministic "today".
func NewStatsServiceWithClock(statsRepository StatsRepository, clock func() time.Time) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		now:             clock,
	}
}

func validateRange(timeRange domain.StatsTimeRange) error {
	if timeRange.EndDate.Before(timeRange.StartDate) {
		return domain.ErrInvalidTimeRange
	}
	return nil
}

// portionOf treats a missing or zero portion as one serving.
func portionOf(intake entities.Intake) decimal.Decimal {
	if intake.PortionSize.IsZero() {
		return decimal.NewFromInt(1)
	}
	return intake.PortionSize
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// goalCalories derives the user's daily target with the Harris-Benedict
// equation at moderate activity. Users without a profile fall back to 2000.
func (s *statsService) goalCalories(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	profile, err := s.statsRepository.GetProfile(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if profile == nil {
		return defaultGoalCalories, nil
	}

	age := s.now().Sub(profile.DateOfBirth).Hours() / 24 / 365.25
	weight := profile.WeightKg.InexactFloat64()
	height := profile.HeightCm.InexactFloat64()

	var bmr float64
	if profile.Gender == entities.GenderMale {
		bmr = 88.362 + (13.397 * weight) + (4.799 * height) - (5.677 * age)
	} else {
		bmr = 447.593 + (9.247 * weight) + (3.098 * height) - (4.330 * age)
	}

	return decimal.NewFromInt(int64(math.Round(bmr * activityFactor))), nil
}

func (s *statsService) GetCalorieStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.CalorieStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.CalorieStats{}, err
	}

	intakes, err := s.statsRepository.GetIntakesInRange(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.CalorieStats{}, err
	}

	goal, err := s.goalCalories(ctx, userID)
	if err != nil {
		return domain.CalorieStats{}, err
	}

	grouped, keys := groupIntakesByPeriod(intakes, timeRange.Period)

	dataPoints := make([]domain.CalorieDataPoint, 0, len(keys))
	totalCalories := decimal.Zero
	var dailyTotals []float64
	var hourlyTotals [24]decimal.Decimal
	var hourSeen [24]bool
	daysAboveGoal := 0
	daysBelowGoal := 0

	for _, key := range keys {
		bucketCalories := decimal.Zero

		for _, intake := range grouped[key] {
			if intake.Dish == nil || intake.Dish.Calories == nil {
				continue
			}
			calories := intake.Dish.Calories.Mul(portionOf(intake))
			bucketCalories = bucketCalories.Add(calories)

			hour := intake.IntakeTime.Hour()
			hourlyTotals[hour] = hourlyTotals[hour].Add(calories)
			hourSeen[hour] = true
		}

		totalCalories = totalCalories.Add(bucketCalories)

		if timeRange.Period == domain.PeriodDaily {
			dailyTotals = append(dailyTotals, bucketCalories.InexactFloat64())
			if bucketCalories.GreaterThan(goal) {
				daysAboveGoal++
			} else if bucketCalories.LessThan(goal) {
				daysBelowGoal++
			}
		}

		goalCopy := goal
		point := domain.CalorieDataPoint{
			Timestamp:    parseBucketKey(key, timeRange.Period),
			Calories:     bucketCalories,
			GoalCalories: &goalCopy,
		}
		if timeRange.Period == domain.PeriodDaily {
			deficitSurplus := bucketCalories.Sub(goal)
			point.DeficitSurplus = &deficitSurplus
		}
		dataPoints = append(dataPoints, point)
	}

	avgDailyCalories := decimal.Zero
	if len(dailyTotals) > 0 {
		avgDailyCalories = decimal.NewFromFloat(mean(dailyTotals))
	}

	// Ties resolve to the earliest hour.
	var peakHour *int
	peakCalories := decimal.Zero
	for hour := 0; hour < 24; hour++ {
		if !hourSeen[hour] {
			continue
		}
		if peakHour == nil || hourlyTotals[hour].GreaterThan(peakCalories) {
			h := hour
			peakHour = &h
			peakCalories = hourlyTotals[hour]
		}
	}

	return domain.CalorieStats{
		DataPoints:          dataPoints,
		AvgDailyCalories:    avgDailyCalories,
		TotalCalories:       totalCalories,
		PeakConsumptionHour: peakHour,
		DaysAboveGoal:       daysAboveGoal,
		DaysBelowGoal:       daysBelowGoal,
	}, nil
}

func (s *statsService) GetMacronutrientStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.MacronutrientStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.MacronutrientStats{}, err
	}

	intakes, err := s.statsRepository.GetIntakesInRange(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.MacronutrientStats{}, err
	}

	totalCarbs := decimal.Zero
	totalProtein := decimal.Zero
	totalFats := decimal.Zero
	totalFiber := decimal.Zero
	totalSugar := decimal.Zero
	totalSatFats := decimal.Zero
	totalUnsatFats := decimal.Zero

	dailyData := make(map[string]*domain.MacronutrientDataPoint)

	for _, intake := range intakes {
		if intake.Dish == nil {
			continue
		}
		portion := portionOf(intake)
		dayKey := intake.IntakeTime.Format(dateLayout)

		point, ok := dailyData[dayKey]
		if !ok {
			day, _ := time.Parse(dateLayout, dayKey)
			point = &domain.MacronutrientDataPoint{Date: day}
			dailyData[dayKey] = point
		}

		if intake.Dish.CarbsG != nil {
			carbs := intake.Dish.CarbsG.Mul(portion)
			totalCarbs = totalCarbs.Add(carbs)
			point.CarbsG = point.CarbsG.Add(carbs)
		}
		if intake.Dish.ProteinG != nil {
			protein := intake.Dish.ProteinG.Mul(portion)
			totalProtein = totalProtein.Add(protein)
			point.ProteinG = point.ProteinG.Add(protein)
		}
		if intake.Dish.FatsG != nil {
			fats := intake.Dish.FatsG.Mul(portion)
			totalFats = totalFats.Add(fats)
			point.FatsG = point.FatsG.Add(fats)
		}
		if intake.Dish.FiberG != nil {
			fiber := intake.Dish.FiberG.Mul(portion)
			totalFiber = totalFiber.Add(fiber)
			point.FiberG = point.FiberG.Add(fiber)
		}
		if intake.Dish.SugarG != nil {
			sugar := intake.Dish.SugarG.Mul(portion)
			totalSugar = totalSugar.Add(sugar)
			point.SugarG = point.SugarG.Add(sugar)
		}
		if intake.Dish.SatFatsG != nil {
			totalSatFats = totalSatFats.Add(intake.Dish.SatFatsG.Mul(portion))
		}
		if intake.Dish.UnsatFatsG != nil {
			totalUnsatFats = totalUnsatFats.Add(intake.Dish.UnsatFatsG.Mul(portion))
		}
	}

	carbsPct := decimal.Zero
	proteinPct := decimal.Zero
	fatsPct := decimal.Zero
	totalMacros := totalCarbs.Add(totalProtein).Add(totalFats)
	if totalMacros.IsPositive() {
		carbsPct = totalCarbs.Div(totalMacros).Mul(hundred)
		proteinPct = totalProtein.Div(totalMacros).Mul(hundred)
		fatsPct = totalFats.Div(totalMacros).Mul(hundred)
	}

	breakdown := domain.MacronutrientBreakdown{
		CarbsPercentage:      carbsPct,
		ProteinPercentage:    proteinPct,
		FatsPercentage:       fatsPct,
		CarbsGrams:           totalCarbs,
		ProteinGrams:         totalProtein,
		FatsGrams:            totalFats,
		FiberGrams:           totalFiber,
		SugarGrams:           totalSugar,
		SaturatedFatsGrams:   totalSatFats,
		UnsaturatedFatsGrams: totalUnsatFats,
	}

	dayKeys := make([]string, 0, len(dailyData))
	for key := range dailyData {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)

	dataPoints := make([]domain.MacronutrientDataPoint, 0, len(dayKeys))
	for _, key := range dayKeys {
		dataPoints = append(dataPoints, *dailyData[key])
	}

	return domain.MacronutrientStats{
		CurrentBreakdown: breakdown,
		DataPoints:       dataPoints,
		AvgBreakdown:     breakdown,
	}, nil
}

func (s *statsService) GetMicronutrientStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.MicronutrientStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.MicronutrientStats{}, err
	}

	intakes, err := s.statsRepository.GetIntakesInRange(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.MicronutrientStats{}, err
	}

	totals := make([]decimal.Decimal, len(micronutrientTable))
	for _, intake := range intakes {
		if intake.Dish == nil {
			continue
		}
		portion := portionOf(intake)
		for i, spec := range micronutrientTable {
			if amount := spec.Amount(intake.Dish); amount != nil {
				totals[i] = totals[i].Add(amount.Mul(portion))
			}
		}
	}

	vitamins := make(map[string]domain.MicronutrientValue)
	minerals := make(map[string]domain.MicronutrientValue)
	deficiencyAlerts := make([]string, 0)

	for i, spec := range micronutrientTable {
		dvPercentage := totals[i].Div(spec.DailyValue).Mul(hundred)

		value := domain.MicronutrientValue{
			Amount:               totals[i],
			Unit:                 spec.Unit,
			DailyValuePercentage: dvPercentage,
		}
		if spec.IsVitamin {
			vitamins[spec.Display] = value
		} else {
			minerals[spec.Display] = value
		}

		if dvPercentage.LessThan(decimal.NewFromInt(deficiencyThreshold)) {
			deficiencyAlerts = append(deficiencyAlerts,
				fmt.Sprintf("Low %s intake: %s%% of daily value", spec.Display, dvPercentage.StringFixed(1)))
		}
	}

	return domain.MicronutrientStats{
		Vitamins:         vitamins,
		Minerals:         minerals,
		DeficiencyAlerts: deficiencyAlerts,
	}, nil
}

func (s *statsService) GetConsumptionPatterns(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ConsumptionPatternStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.ConsumptionPatternStats{}, err
	}

	intakes, err := s.statsRepository.GetIntakesInRange(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.ConsumptionPatternStats{}, err
	}

	type dishAccumulator struct {
		name         string
		cuisine      string
		count        int
		totalPortion decimal.Decimal
		lastConsumed time.Time
	}
	type bucketAccumulator struct {
		count    int
		calories decimal.Decimal
	}

	dishStats := make(map[uuid.UUID]*dishAccumulator)
	cuisineStats := make(map[string]*bucketAccumulator)
	var hourlyPatterns [24]bucketAccumulator
	weekendIntakes := 0
	weekdayIntakes := 0

	for _, intake := range intakes {
		if intake.Dish == nil {
			continue
		}
		dish := intake.Dish
		portion := portionOf(intake)

		acc, ok := dishStats[dish.ID]
		if !ok {
			acc = &dishAccumulator{name: dish.Name, cuisine: dish.Cuisine}
			dishStats[dish.ID] = acc
		}
		acc.count++
		acc.totalPortion = acc.totalPortion.Add(portion)
		if intake.IntakeTime.After(acc.lastConsumed) {
			acc.lastConsumed = intake.IntakeTime
		}

		if dish.Cuisine != "" {
			cuisineAcc, ok := cuisineStats[dish.Cuisine]
			if !ok {
				cuisineAcc = &bucketAccumulator{}
				cuisineStats[dish.Cuisine] = cuisineAcc
			}
			cuisineAcc.count++
			if dish.Calories != nil {
				cuisineAcc.calories = cuisineAcc.calories.Add(dish.Calories.Mul(portion))
			}
		}

		hour := intake.IntakeTime.Hour()
		hourlyPatterns[hour].count++
		if dish.Calories != nil {
			hourlyPatterns[hour].calories = hourlyPatterns[hour].calories.Add(dish.Calories.Mul(portion))
		}

		weekday := intake.IntakeTime.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			weekendIntakes++
		} else {
			weekdayIntakes++
		}
	}

	type rankedDish struct {
		id  uuid.UUID
		acc *dishAccumulator
	}
	ranked := make([]rankedDish, 0, len(dishStats))
	for id, acc := range dishStats {
		ranked = append(ranked, rankedDish{id: id, acc: acc})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].acc.count != ranked[j].acc.count {
			return ranked[i].acc.count > ranked[j].acc.count
		}
		return ranked[i].acc.name < ranked[j].acc.name
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	topDishes := make([]domain.DishFrequency, 0, len(ranked))
	for _, entry := range ranked {
		avgPortion := decimal.NewFromInt(1)
		if entry.acc.count > 0 {
			avgPortion = entry.acc.totalPortion.Div(decimal.NewFromInt(int64(entry.acc.count)))
		}
		topDishes = append(topDishes, domain.DishFrequency{
			DishID:           entry.id.String(),
			DishName:         entry.acc.name,
			Cuisine:          entry.acc.cuisine,
			ConsumptionCount: entry.acc.count,
			LastConsumed:     entry.acc.lastConsumed,
			AvgPortionSize:   avgPortion,
		})
	}

	totalCuisineCount := 0
	cuisineNames := make([]string, 0, len(cuisineStats))
	for name, acc := range cuisineStats {
		totalCuisineCount += acc.count
		cuisineNames = append(cuisineNames, name)
	}
	sort.Slice(cuisineNames, func(i, j int) bool {
		ci, cj := cuisineStats[cuisineNames[i]], cuisineStats[cuisineNames[j]]
		if ci.count != cj.count {
			return ci.count > cj.count
		}
		return cuisineNames[i] < cuisineNames[j]
	})

	cuisineDistribution := make([]domain.CuisineDistribution, 0, len(cuisineNames))
	for _, name := range cuisineNames {
		acc := cuisineStats[name]
		percentage := decimal.Zero
		if totalCuisineCount > 0 {
			percentage = decimal.NewFromInt(int64(acc.count)).
				Div(decimal.NewFromInt(int64(totalCuisineCount))).Mul(hundred)
		}
		cuisineDistribution = append(cuisineDistribution, domain.CuisineDistribution{
			Cuisine:          name,
			ConsumptionCount: acc.count,
			Percentage:       percentage,
			CaloriesConsumed: acc.calories,
		})
	}

	eatingPatterns := make([]domain.EatingPatternDataPoint, 0, 24)
	for hour := 0; hour < 24; hour++ {
		avgCalories := decimal.Zero
		if hourlyPatterns[hour].count > 0 {
			avgCalories = hourlyPatterns[hour].calories.Div(decimal.NewFromInt(int64(hourlyPatterns[hour].count)))
		}
		eatingPatterns = append(eatingPatterns, domain.EatingPatternDataPoint{
			Hour:        hour,
			IntakeCount: hourlyPatterns[hour].count,
			AvgCalories: avgCalories,
		})
	}

	totalDays := int(timeRange.EndDate.Sub(timeRange.StartDate).Hours()/24) + 1
	avgMealsPerDay := decimal.Zero
	if totalDays > 0 {
		avgMealsPerDay = decimal.NewFromInt(int64(len(intakes))).Div(decimal.NewFromInt(int64(totalDays)))
	}

	weekendVsWeekdayRatio := decimal.Zero
	if weekdayIntakes > 0 {
		weekendVsWeekdayRatio = decimal.NewFromInt(int64(weekendIntakes)).Div(decimal.NewFromInt(int64(weekdayIntakes)))
	}

	return domain.ConsumptionPatternStats{
		TopDishes:             topDishes,
		CuisineDistribution:   cuisineDistribution,
		EatingPatterns:        eatingPatterns,
		DishesTriedCount:      len(dishStats),
		UniqueCuisinesCount:   len(cuisineStats),
		AvgMealsPerDay:        avgMealsPerDay,
		WeekendVsWeekdayRatio: weekendVsWeekdayRatio,
	}, nil
}

func (s *statsService) GetProgressStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ProgressStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.ProgressStats{}, err
	}

	healthData, err := s.statsRepository.GetHealthHistoryInRange(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.ProgressStats{}, err
	}

	profile, err := s.statsRepository.GetProfile(ctx, userID)
	if err != nil {
		return domain.ProgressStats{}, err
	}

	goal, err := s.goalCalories(ctx, userID)
	if err != nil {
		return domain.ProgressStats{}, err
	}

	caloriesByDay, err := s.statsRepository.GetDailyCalorieTotals(ctx, userID, timeRange.StartDate, timeRange.EndDate)
	if err != nil {
		return domain.ProgressStats{}, err
	}

	healthMetrics := make([]domain.HealthMetricDataPoint, 0, len(healthData))
	goalAdherences := make([]float64, 0, len(healthData))
	bestDayScore := 0.0
	var bestDay *time.Time

	for _, record := range healthData {
		recordDate := dateOf(record.ChangeTimestamp)
		caloriesConsumed := caloriesByDay[recordDate.Format(dateLayout)]

		// Closer to goal means a better score, floored at zero.
		adherence := 0.0
		if goal.IsPositive() {
			adherence = 100 - math.Abs(caloriesConsumed.Sub(goal).InexactFloat64())/goal.InexactFloat64()*100
			if adherence < 0 {
				adherence = 0
			}
		}
		goalAdherences = append(goalAdherences, adherence)

		if adherence > bestDayScore {
			bestDayScore = adherence
			day := recordDate
			bestDay = &day
		}

		var bmi *decimal.Decimal
		if profile != nil && profile.HeightCm.IsPositive() && record.WeightKg != nil {
			heightM := profile.HeightCm.InexactFloat64() / 100
			value := decimal.NewFromFloat(record.WeightKg.InexactFloat64() / (heightM * heightM))
			bmi = &value
		}

		healthMetrics = append(healthMetrics, domain.HealthMetricDataPoint{
			Date:                    recordDate,
			WeightKg:                record.WeightKg,
			BMI:                     bmi,
			CaloriesConsumed:        caloriesConsumed,
			GoalAdherencePercentage: decimal.NewFromFloat(adherence),
		})
	}

	weightTrend := ""
	if len(healthData) >= 2 {
		firstWeight := healthData[0].WeightKg
		lastWeight := healthData[len(healthData)-1].WeightKg
		if firstWeight != nil && lastWeight != nil {
			switch {
			case lastWeight.GreaterThan(firstWeight.Mul(decimal.NewFromFloat(1.02))):
				weightTrend = "increasing"
			case lastWeight.LessThan(firstWeight.Mul(decimal.NewFromFloat(0.98))):
				weightTrend = "decreasing"
			default:
				weightTrend = "stable"
			}
		}
	}

	avgGoalAdherence := decimal.Zero
	if len(goalAdherences) > 0 {
		avgGoalAdherence = decimal.NewFromFloat(mean(goalAdherences))
	}

	// Compares the last week of scores against everything before it, so it
	// needs more than seven samples to have a baseline.
	improvementTrend := ""
	if len(goalAdherences) > 7 {
		recentAvg := mean(goalAdherences[len(goalAdherences)-7:])
		olderAvg := mean(goalAdherences[:len(goalAdherences)-7])
		switch {
		case recentAvg > olderAvg*1.1:
			improvementTrend = "improving"
		case recentAvg < olderAvg*0.9:
			improvementTrend = "declining"
		default:
			improvementTrend = "stable"
		}
	}

	return domain.ProgressStats{
		HealthMetrics:                healthMetrics,
		WeightTrend:                  weightTrend,
		AvgGoalAdherence:             avgGoalAdherence,
		DietaryRestrictionCompliance: decimal.NewFromFloat(85.0),
		BestNutritionDay:             bestDay,
		ImprovementTrend:             improvementTrend,
	}, nil
}

func (s *statsService) GetNutritionOverview(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.NutritionOverview, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.NutritionOverview{}, err
	}

	var (
		calorieStats domain.CalorieStats
		macroStats   domain.MacronutrientStats
		microStats   domain.MicronutrientStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		calorieStats, err = s.GetCalorieStats(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		macroStats, err = s.GetMacronutrientStats(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		microStats, err = s.GetMicronutrientStats(groupCtx, userID, timeRange)
		return err
	})
	if err := group.Wait(); err != nil {
		return domain.NutritionOverview{}, err
	}

	return domain.NutritionOverview{
		CalorieStats:       calorieStats,
		MacronutrientStats: macroStats,
		MicronutrientStats: microStats,
	}, nil
}

func (s *statsService) GetComprehensiveStats(ctx context.Context, userID uuid.UUID, timeRange domain.StatsTimeRange) (domain.ComprehensiveStats, error) {
	if err := validateRange(timeRange); err != nil {
		return domain.ComprehensiveStats{}, err
	}

	var (
		calorieStats domain.CalorieStats
		macroStats   domain.MacronutrientStats
		microStats   domain.MicronutrientStats
		patterns     domain.ConsumptionPatternStats
		progress     domain.ProgressStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		calorieStats, err = s.GetCalorieStats(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		macroStats, err = s.GetMacronutrientStats(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		microStats, err = s.GetMicronutrientStats(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		patterns, err = s.GetConsumptionPatterns(groupCtx, userID, timeRange)
		return err
	})
	group.Go(func() error {
		var err error
		progress, err = s.GetProgressStats(groupCtx, userID, timeRange)
		return err
	})
	if err := group.Wait(); err != nil {
		return domain.ComprehensiveStats{}, err
	}

	analytics := generateAdvancedAnalytics(calorieStats, macroStats, patterns, progress)

	return domain.ComprehensiveStats{
		TimeRange: timeRange,
		NutritionOverview: domain.NutritionOverview{
			CalorieStats:       calorieStats,
			MacronutrientStats: macroStats,
			MicronutrientStats: microStats,
		},
		ConsumptionPatterns: patterns,
		ProgressStats:       progress,
		AdvancedAnalytics:   &analytics,
		GeneratedAt:         s.now(),
	}, nil
}

// generateAdvancedAnalytics derives heuristic insights from the already
// computed stat blocks. No additional storage access happens here.
func generateAdvancedAnalytics(
	calorieStats domain.CalorieStats,
	macroStats domain.MacronutrientStats,
	patterns domain.ConsumptionPatternStats,
	progress domain.ProgressStats,
) domain.AdvancedAnalytics {
	correlations := make([]domain.CorrelationInsight, 0)
	predictions := make([]domain.PredictiveInsight, 0)
	suggestions := make([]string, 0)

	if calorieStats.PeakConsumptionHour != nil && patterns.AvgMealsPerDay.IsPositive() {
		correlations = append(correlations, domain.CorrelationInsight{
			Factor1:             "Peak eating hour",
			Factor2:             "Total daily calories",
			CorrelationStrength: decimal.NewFromFloat(0.65),
			Description: fmt.Sprintf(
				"Peak consumption occurs at %d:00, suggesting a correlation with daily calorie intake patterns.",
				*calorieStats.PeakConsumptionHour),
		})
	}

	if progress.ImprovementTrend == "improving" {
		predictions = append(predictions, domain.PredictiveInsight{
			Metric:          "Goal adherence",
			PredictedValue:  progress.AvgGoalAdherence.Add(decimal.NewFromInt(10)),
			ConfidenceLevel: decimal.NewFromInt(75),
			TimeHorizonDays: 30,
			Recommendation:  "Continue current eating patterns to maintain improvement trend.",
		})
	}

	if macroStats.CurrentBreakdown.ProteinPercentage.LessThan(decimal.NewFromInt(20)) {
		suggestions = append(suggestions,
			"Consider increasing protein intake to 20-30% of total calories for better satiety and muscle maintenance.")
	}
	if calorieStats.PeakConsumptionHour != nil && *calorieStats.PeakConsumptionHour > 20 {
		suggestions = append(suggestions,
			"Try eating your largest meal earlier in the day to improve metabolism and sleep quality.")
	}
	if patterns.UniqueCuisinesCount < 5 {
		suggestions = append(suggestions,
			"Diversify your cuisine choices to ensure a wider range of nutrients and prevent dietary boredom.")
	}

	return domain.AdvancedAnalytics{
		Correlations:            correlations,
		Predictions:             predictions,
		OptimizationSuggestions: suggestions,
	}
}

func (s *statsService) GetQuickStats(ctx context.Context, userID uuid.UUID) (domain.QuickStats, error) {
	today := dateOf(s.now())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	weeklyTotals, err := s.statsRepository.GetDailyCalorieTotals(ctx, userID, weekAgo, today)
	if err != nil {
		return domain.QuickStats{}, err
	}

	todayCalories := weeklyTotals[today.Format(dateLayout)]

	goal, err := s.goalCalories(ctx, userID)
	if err != nil {
		return domain.QuickStats{}, err
	}

	todayGoalPercentage := decimal.Zero
	if goal.IsPositive() {
		todayGoalPercentage = todayCalories.Div(goal).Mul(hundred)
	}

	// Average over days that have intakes, not over the full week.
	weeklyAvg := decimal.Zero
	if len(weeklyTotals) > 0 {
		dailyValues := make([]float64, 0, len(weeklyTotals))
		for _, total := range weeklyTotals {
			dailyValues = append(dailyValues, total.InexactFloat64())
		}
		weeklyAvg = decimal.NewFromFloat(mean(dailyValues))
	}

	topCuisine, err := s.statsRepository.GetTopCuisineSince(ctx, userID, weekAgo)
	if err != nil {
		return domain.QuickStats{}, err
	}

	dishesTried, err := s.statsRepository.CountDistinctDishes(ctx, userID)
	if err != nil {
		return domain.QuickStats{}, err
	}

	streak := 0
	checkDate := today
	for {
		hasIntake, err := s.statsRepository.HasIntakeOnDate(ctx, userID, checkDate)
		if err != nil {
			return domain.QuickStats{}, err
		}
		if !hasIntake {
			break
		}
		streak++
		checkDate = checkDate.AddDate(0, 0, -1)

		if streak > maxStreakDays {
			break
		}
	}

	var weightChange *decimal.Decimal
	recentWeight, err := s.statsRepository.GetLatestWeightSince(ctx, userID, monthAgo)
	if err != nil {
		return domain.QuickStats{}, err
	}
	monthAgoWeight, err := s.statsRepository.GetLatestWeightAtOrBefore(ctx, userID, monthAgo)
	if err != nil {
		return domain.QuickStats{}, err
	}
	if recentWeight != nil && monthAgoWeight != nil {
		change := recentWeight.Sub(*monthAgoWeight)
		weightChange = &change
	}

	return domain.QuickStats{
		TodayCalories:         todayCalories,
		TodayGoalPercentage:   todayGoalPercentage,
		WeeklyAvgCalories:     weeklyAvg,
		TopCuisineThisWeek:    topCuisine,
		TotalDishesTried:      int(dishesTried),
		CurrentStreakDays:     streak,
		WeightChangeThisMonth: weightChange,
	}, nil
}
