package profile

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		CreateProfile(ctx context.Context, req domain.CreateProfileRequest, userID string) (domain.ProfileResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
		UploadProfilePicture(ctx context.Context, image *multipart.FileHeader, userID string) (string, error)
		DeleteProfile(ctx context.Context, userID string) error
	}

	profileService struct {
		profileRepository ProfileRepository
		s3                storage.AwsS3
	}
)

func NewProfileService(profileRepository ProfileRepository, s3 storage.AwsS3) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		s3:                s3,
	}
}

func (s *profileService) CreateProfile(ctx context.Context, req domain.CreateProfileRequest, userID string) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	if _, err := s.profileRepository.GetProfileByUserID(ctx, userID); err == nil {
		return domain.ProfileResponse{}, domain.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProfileResponse{}, err
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrInvalidDateOfBirth
	}

	profile := &entities.UserProfile{
		UserID:              userUUID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Gender:              req.Gender,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		DateOfBirth:         dateOfBirth,
		LocationCity:        req.LocationCity,
		LocationCountry:     req.LocationCountry,
		Bio:                 req.Bio,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		FitnessGoals:        req.FitnessGoals,
		CookingSkillLevel:   req.CookingSkillLevel,
	}
	if profile.CookingSkillLevel == "" {
		profile.CookingSkillLevel = "beginner"
	}

	if err := s.profileRepository.CreateProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}

	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.LocationCity != "" {
		profile.LocationCity = req.LocationCity
	}
	if req.LocationCountry != "" {
		profile.LocationCountry = req.LocationCountry
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.DietaryRestrictions != nil {
		profile.DietaryRestrictions = req.DietaryRestrictions
	}
	if req.Allergies != nil {
		profile.Allergies = req.Allergies
	}
	if req.FitnessGoals != nil {
		profile.FitnessGoals = req.FitnessGoals
	}
	if req.CookingSkillLevel != "" {
		profile.CookingSkillLevel = req.CookingSkillLevel
	}

	if err := s.profileRepository.UpdateProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) UploadProfilePicture(ctx context.Context, image *multipart.FileHeader, userID string) (string, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrProfileNotFound
		}
		return "", err
	}

	if !s.s3.AllowImage(image) {
		return "", errors.New("unsupported image format")
	}

	link, err := s.s3.UpdateFile(profile.ProfileImageURL, "profiles", image)
	if err != nil {
		return "", err
	}

	profile.ProfileImageURL = link
	if err := s.profileRepository.UpdateProfile(ctx, profile); err != nil {
		return "", err
	}

	return link, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, userID string) error {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	if profile.ProfileImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(profile.ProfileImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.profileRepository.DeleteProfileByUserID(ctx, userID)
}

func toProfileResponse(profile *entities.UserProfile) domain.ProfileResponse {
	return domain.ProfileResponse{
		UserID:              profile.UserID.String(),
		FirstName:           profile.FirstName,
		LastName:            profile.LastName,
		Gender:              profile.Gender,
		HeightCm:            profile.HeightCm,
		WeightKg:            profile.WeightKg,
		DateOfBirth:         profile.DateOfBirth.Format("2006-01-02"),
		LocationCity:        profile.LocationCity,
		LocationCountry:     profile.LocationCountry,
		ProfileImageURL:     profile.ProfileImageURL,
		Bio:                 profile.Bio,
		DietaryRestrictions: profile.DietaryRestrictions,
		Allergies:           profile.Allergies,
		FitnessGoals:        profile.FitnessGoals,
		CookingSkillLevel:   profile.CookingSkillLevel,
	}
}
