package profile

import (
	"NutriTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		CreateProfile(ctx context.Context, profile *entities.UserProfile) error
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		UpdateProfile(ctx context.Context, profile *entities.UserProfile) error
		DeleteProfileByUserID(ctx context.Context, userID string) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) DeleteProfileByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.UserProfile{}).Error
}
