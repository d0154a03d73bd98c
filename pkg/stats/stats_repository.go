package stats

import (
	"NutriTrack-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	// StatsRepository is the record-fetching collaborator of the stats
	// engine. All storage access lives behind this interface; the engine
	// itself never issues queries. Range bounds are closed on both ends and
	// compared against the date component of stored timestamps.
	StatsRepository interface {
		GetIntakesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.Intake, error)
		GetHealthHistoryInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.HealthHistory, error)
		GetProfile(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error)

		// Direct aggregate queries used by progress and quick stats.
		GetDailyCalorieTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error)
		GetTopCuisineSince(ctx context.Context, userID uuid.UUID, since time.Time) (string, error)
		CountDistinctDishes(ctx context.Context, userID uuid.UUID) (int64, error)
		HasIntakeOnDate(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error)
		GetLatestWeightSince(ctx context.Context, userID uuid.UUID, since time.Time) (*decimal.Decimal, error)
		GetLatestWeightAtOrBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (*decimal.Decimal, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetIntakesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.Intake, error) {
	var intakes []entities.Intake
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Where("user_id = ? AND DATE(intake_time) >= ? AND DATE(intake_time) <= ?",
			userID, start.Format(dateLayout), end.Format(dateLayout)).
		Order("intake_time asc").
		Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

func (r *statsRepository) GetHealthHistoryInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.HealthHistory, error) {
	var records []entities.HealthHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND DATE(change_timestamp) >= ? AND DATE(change_timestamp) <= ?",
			userID, start.Format(dateLayout), end.Format(dateLayout)).
		Order("change_timestamp asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *statsRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *statsRepository) GetDailyCalorieTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Day   time.Time
		Total *decimal.Decimal
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Intake{}).
		Select("DATE(intakes.intake_time) AS day, SUM(dishes.calories * intakes.portion_size) AS total").
		Joins("JOIN dishes ON dishes.id = intakes.dish_id").
		Where("intakes.user_id = ? AND DATE(intakes.intake_time) >= ? AND DATE(intakes.intake_time) <= ?",
			userID, start.Format(dateLayout), end.Format(dateLayout)).
		Group("DATE(intakes.intake_time)").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		total := decimal.Zero
		if row.Total != nil {
			total = *row.Total
		}
		totals[row.Day.Format(dateLayout)] = total
	}
	return totals, nil
}

func (r *statsRepository) GetTopCuisineSince(ctx context.Context, userID uuid.UUID, since time.Time) (string, error) {
	var rows []struct {
		Cuisine     string
		IntakeCount int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Intake{}).
		Select("dishes.cuisine AS cuisine, COUNT(intakes.id) AS intake_count").
		Joins("JOIN dishes ON dishes.id = intakes.dish_id").
		Where("intakes.user_id = ? AND DATE(intakes.intake_time) >= ? AND dishes.cuisine <> ''",
			userID, since.Format(dateLayout)).
		Group("dishes.cuisine").
		Order("intake_count DESC").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return "", err
	}

	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Cuisine, nil
}

func (r *statsRepository) CountDistinctDishes(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Intake{}).
		Where("user_id = ?", userID).
		Distinct("dish_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) HasIntakeOnDate(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Intake{}).
		Where("user_id = ? AND DATE(intake_time) = ?", userID, day.Format(dateLayout)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *statsRepository) GetLatestWeightSince(ctx context.Context, userID uuid.UUID, since time.Time) (*decimal.Decimal, error) {
	var record entities.HealthHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND DATE(change_timestamp) >= ?", userID, since.Format(dateLayout)).
		Order("change_timestamp desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.WeightKg, nil
}

func (r *statsRepository) GetLatestWeightAtOrBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (*decimal.Decimal, error) {
	var record entities.HealthHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND DATE(change_timestamp) <= ?", userID, cutoff.Format(dateLayout)).
		Order("change_timestamp desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.WeightKg, nil
}
