package intake

import (
	"NutriTrack-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	IntakeRepository interface {
		CreateIntake(ctx context.Context, intake *entities.Intake) error
		GetIntakeByID(ctx context.Context, id string) (*entities.Intake, error)
		GetIntakes(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]entities.Intake, int64, error)
		UpdateIntake(ctx context.Context, intake *entities.Intake) error
		DeleteIntake(ctx context.Context, id string) error
	}

	intakeRepository struct {
		db *gorm.DB
	}
)

func NewIntakeRepository(db *gorm.DB) IntakeRepository {
	return &intakeRepository{db: db}
}

func (r *intakeRepository) CreateIntake(ctx context.Context, intake *entities.Intake) error {
	return r.db.WithContext(ctx).Create(intake).Error
}

func (r *intakeRepository) GetIntakeByID(ctx context.Context, id string) (*entities.Intake, error) {
	var intake entities.Intake
	if err := r.db.WithContext(ctx).Preload("Dish").Where("id = ?", id).First(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}

func (r *intakeRepository) GetIntakes(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]entities.Intake, int64, error) {
	var intakes []entities.Intake
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Intake{}).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("intake_time >= ?", *start)
	}
	if end != nil {
		query = query.Where("intake_time <= ?", *end)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Dish").
		Offset(offset).Limit(limit).
		Order("intake_time desc").
		Find(&intakes).Error; err != nil {
		return nil, 0, err
	}

	return intakes, count, nil
}

func (r *intakeRepository) UpdateIntake(ctx context.Context, intake *entities.Intake) error {
	return r.db.WithContext(ctx).Save(intake).Error
}

func (r *intakeRepository) DeleteIntake(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Intake{}).Error
}
