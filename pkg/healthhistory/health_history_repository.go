package healthhistory

import (
	"NutriTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	HealthHistoryRepository interface {
		CreateRecord(ctx context.Context, record *entities.HealthHistory) error
		GetRecordByID(ctx context.Context, id string) (*entities.HealthHistory, error)
		GetRecordsByUserID(ctx context.Context, userID string, page, limit int) ([]entities.HealthHistory, int64, error)
	}

	healthHistoryRepository struct {
		db *gorm.DB
	}
)

func NewHealthHistoryRepository(db *gorm.DB) HealthHistoryRepository {
	return &healthHistoryRepository{db: db}
}

func (r *healthHistoryRepository) CreateRecord(ctx context.Context, record *entities.HealthHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *healthHistoryRepository) GetRecordByID(ctx context.Context, id string) (*entities.HealthHistory, error) {
	var record entities.HealthHistory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *healthHistoryRepository) GetRecordsByUserID(ctx context.Context, userID string, page, limit int) ([]entities.HealthHistory, int64, error) {
	var records []entities.HealthHistory
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.HealthHistory{}).Where("user_id = ?", userID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).
		Order("change_timestamp desc").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}
