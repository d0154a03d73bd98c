package stats

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"sort"
	"time"
)

// bucketKeyLayouts formats a timestamp into its aggregation bucket key.
// Weekly keys are handled separately because they snap to the Monday of
// the ISO week rather than truncating a layout.
var bucketKeyLayouts = map[domain.TimePeriod]string{
	domain.PeriodHourly:  "2006-01-02 15:00",
	domain.PeriodDaily:   "2006-01-02",
	domain.PeriodMonthly: "2006-01",
	domain.PeriodYearly:  "2006",
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOf returns the Monday of the week containing t, at midnight.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dateOf(t).AddDate(0, 0, -offset)
}

func bucketKey(t time.Time, period domain.TimePeriod) string {
	if period == domain.PeriodWeekly {
		return mondayOf(t).Format("2006-01-02")
	}
	layout, ok := bucketKeyLayouts[period]
	if !ok {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// parseBucketKey converts a bucket key back into the timestamp carried on
// data points. Hourly keys keep their hour, weekly keys are the Monday
// date, monthly and yearly keys resolve to the first of the period.
func parseBucketKey(key string, period domain.TimePeriod) time.Time {
	layout, ok := bucketKeyLayouts[period]
	if !ok {
		layout = "2006-01-02"
	}
	parsed, err := time.Parse(layout, key)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// groupIntakesByPeriod buckets intakes by their period key and returns the
// keys in ascending order so data point series come out chronological.
func groupIntakesByPeriod(intakes []entities.Intake, period domain.TimePeriod) (map[string][]entities.Intake, []string) {
	grouped := make(map[string][]entities.Intake)
	for _, intake := range intakes {
		key := bucketKey(intake.IntakeTime, period)
		grouped[key] = append(grouped[key], intake)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return grouped, keys
}

// ConvertSimpleRange expands a unit/count shorthand into an explicit range
// with an aggregation period. Day ranges are inclusive of today (num days
// including today); the other units subtract the full count from today.
func (s *statsService) ConvertSimpleRange(simple domain.SimpleTimeRange) domain.StatsTimeRange {
	now := s.now()
	end := dateOf(now)

	var start time.Time
	var period domain.TimePeriod

	switch simple.Unit {
	case domain.UnitHour:
		start = dateOf(now.Add(-time.Duration(simple.Num) * time.Hour))
		period = domain.PeriodHourly
	case domain.UnitDay:
		start = end.AddDate(0, 0, -(simple.Num - 1))
		period = domain.PeriodDaily
	case domain.UnitWeek:
		start = end.AddDate(0, 0, -7*simple.Num)
		period = domain.PeriodWeekly
	case domain.UnitMonth:
		start = end.AddDate(0, 0, -30*simple.Num)
		period = domain.PeriodMonthly
	case domain.UnitYear:
		start = end.AddDate(0, 0, -365*simple.Num)
		period = domain.PeriodYearly
	default:
		start = end.AddDate(0, 0, -simple.Num)
		period = domain.PeriodDaily
	}

	return domain.StatsTimeRange{
		StartDate: start,
		EndDate:   end,
		Period:    period,
	}
}
