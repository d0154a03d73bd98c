package stats

import (
	"NutriTrack-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday afternoon, so week snapping and hour arithmetic are both visible.
var testClock = func() time.Time {
	return time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)
}

func newClockedService(repo StatsRepository) StatsService {
	return NewStatsServiceWithClock(repo, testClock)
}

func TestConvertSimpleRange(t *testing.T) {
	service := newClockedService(nil)
	today := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		simple    domain.SimpleTimeRange
		wantStart time.Time
		wantEnd   time.Time
		wantPer   domain.TimePeriod
	}{
		{
			name:      "hours within today",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitHour, Num: 5},
			wantStart: today,
			wantEnd:   today,
			wantPer:   domain.PeriodHourly,
		},
		{
			name:      "hours crossing midnight",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitHour, Num: 20},
			wantStart: today.AddDate(0, 0, -1),
			wantEnd:   today,
			wantPer:   domain.PeriodHourly,
		},
		{
			name:      "seven days include today",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitDay, Num: 7},
			wantStart: today.AddDate(0, 0, -6),
			wantEnd:   today,
			wantPer:   domain.PeriodDaily,
		},
		{
			name:      "two weeks",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitWeek, Num: 2},
			wantStart: today.AddDate(0, 0, -14),
			wantEnd:   today,
			wantPer:   domain.PeriodWeekly,
		},
		{
			name:      "one month is thirty days",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitMonth, Num: 1},
			wantStart: today.AddDate(0, 0, -30),
			wantEnd:   today,
			wantPer:   domain.PeriodMonthly,
		},
		{
			name:      "one year",
			simple:    domain.SimpleTimeRange{Unit: domain.UnitYear, Num: 1},
			wantStart: today.AddDate(0, 0, -365),
			wantEnd:   today,
			wantPer:   domain.PeriodYearly,
		},
		{
			// Unrecognized units fall back to num full days with a daily
			// period, without the day unit's inclusive-of-today offset.
			name:      "unknown unit falls back to full days",
			simple:    domain.SimpleTimeRange{Unit: "fortnight", Num: 7},
			wantStart: today.AddDate(0, 0, -7),
			wantEnd:   today,
			wantPer:   domain.PeriodDaily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ConvertSimpleRange(tt.simple)
			assert.Equal(t, tt.wantStart, got.StartDate)
			assert.Equal(t, tt.wantEnd, got.EndDate)
			assert.Equal(t, tt.wantPer, got.Period)
		})
	}
}

func TestBucketKey(t *testing.T) {
	wednesday := time.Date(2025, 6, 18, 9, 45, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 22, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-18 09:00", bucketKey(wednesday, domain.PeriodHourly))
	assert.Equal(t, "2025-06-18", bucketKey(wednesday, domain.PeriodDaily))
	assert.Equal(t, "2025-06", bucketKey(wednesday, domain.PeriodMonthly))
	assert.Equal(t, "2025", bucketKey(wednesday, domain.PeriodYearly))

	// Every day of a week maps to the same Monday key.
	assert.Equal(t, "2025-06-16", bucketKey(wednesday, domain.PeriodWeekly))
	assert.Equal(t, "2025-06-16", bucketKey(sunday, domain.PeriodWeekly))
	assert.Equal(t, "2025-06-16", bucketKey(monday, domain.PeriodWeekly))
}

func TestParseBucketKey(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC),
		parseBucketKey("2025-06-18 09:00", domain.PeriodHourly))
	assert.Equal(t,
		time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		parseBucketKey("2025-06-16", domain.PeriodWeekly))
	assert.Equal(t,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		parseBucketKey("2025-06", domain.PeriodMonthly))
	assert.Equal(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		parseBucketKey("2025", domain.PeriodYearly))
	assert.True(t, parseBucketKey("garbage", domain.PeriodDaily).IsZero())
}

func TestMondayOf(t *testing.T) {
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	for day := 0; day < 7; day++ {
		got := mondayOf(monday.AddDate(0, 0, day))
		assert.Equal(t, monday, got, "day offset %d", day)
	}
}
