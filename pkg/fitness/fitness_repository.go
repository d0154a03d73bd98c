package fitness

import (
	"NutriTrack-Backend/entities"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	FitnessRepository interface {
		CreatePlan(ctx context.Context, plan *entities.FitnessPlan) error
		GetPlanByID(ctx context.Context, id string) (*entities.FitnessPlan, error)
		GetPlansByUserID(ctx context.Context, userID string) ([]entities.FitnessPlan, error)
		DeactivatePlans(ctx context.Context, userID string) error

		// Weight lookups used by plan progress.
		GetEarliestWeightSince(ctx context.Context, userID string, since time.Time) (*decimal.Decimal, error)
		GetLatestWeight(ctx context.Context, userID string) (*decimal.Decimal, error)
	}

	fitnessRepository struct {
		db *gorm.DB
	}
)

func NewFitnessRepository(db *gorm.DB) FitnessRepository {
	return &fitnessRepository{db: db}
}

func (r *fitnessRepository) CreatePlan(ctx context.Context, plan *entities.FitnessPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *fitnessRepository) GetPlanByID(ctx context.Context, id string) (*entities.FitnessPlan, error) {
	var plan entities.FitnessPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *fitnessRepository) GetPlansByUserID(ctx context.Context, userID string) ([]entities.FitnessPlan, error) {
	var plans []entities.FitnessPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *fitnessRepository) DeactivatePlans(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&entities.FitnessPlan{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

func (r *fitnessRepository) GetEarliestWeightSince(ctx context.Context, userID string, since time.Time) (*decimal.Decimal, error) {
	var record entities.HealthHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weight_kg IS NOT NULL AND change_timestamp >= ?", userID, since).
		Order("change_timestamp asc").
		First(&record).Error; err != nil {
		return nil, err
	}
	return record.WeightKg, nil
}

func (r *fitnessRepository) GetLatestWeight(ctx context.Context, userID string) (*decimal.Decimal, error) {
	var record entities.HealthHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weight_kg IS NOT NULL", userID).
		Order("change_timestamp desc").
		First(&record).Error; err != nil {
		return nil, err
	}
	return record.WeightKg, nil
}
