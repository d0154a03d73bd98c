package domain

import (
	"errors"
	"mime/multipart"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateProfile = "profile created successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessDeleteProfile = "profile deleted successfully"
	MessageSuccessUploadPicture = "profile picture uploaded successfully"

	MessageFailedCreateProfile = "failed to create profile"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedDeleteProfile = "failed to delete profile"
	MessageFailedUploadPicture = "failed to upload profile picture"

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrInvalidDateOfBirth   = errors.New("invalid date of birth")
)

type (
	CreateProfileRequest struct {
		FirstName           string          `json:"first_name" validate:"omitempty,max=50"`
		LastName            string          `json:"last_name" validate:"omitempty,max=50"`
		Gender              string          `json:"gender" validate:"required,oneof=male female other"`
		HeightCm            decimal.Decimal `json:"height_cm" validate:"required"`
		WeightKg            decimal.Decimal `json:"weight_kg" validate:"required"`
		DateOfBirth         string          `json:"date_of_birth" validate:"required"` // "2006-01-02"
		LocationCity        string          `json:"location_city" validate:"omitempty,max=100"`
		LocationCountry     string          `json:"location_country" validate:"omitempty,max=100"`
		Bio                 string          `json:"bio" validate:"omitempty"`
		DietaryRestrictions []string        `json:"dietary_restrictions" validate:"omitempty"`
		Allergies           []string        `json:"allergies" validate:"omitempty"`
		FitnessGoals        []string        `json:"fitness_goals" validate:"omitempty"`
		CookingSkillLevel   string          `json:"cooking_skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	}

	UpdateProfileRequest struct {
		FirstName           string           `json:"first_name" validate:"omitempty,max=50"`
		LastName            string           `json:"last_name" validate:"omitempty,max=50"`
		HeightCm            *decimal.Decimal `json:"height_cm" validate:"omitempty"`
		WeightKg            *decimal.Decimal `json:"weight_kg" validate:"omitempty"`
		LocationCity        string           `json:"location_city" validate:"omitempty,max=100"`
		LocationCountry     string           `json:"location_country" validate:"omitempty,max=100"`
		Bio                 string           `json:"bio" validate:"omitempty"`
		DietaryRestrictions []string         `json:"dietary_restrictions" validate:"omitempty"`
		Allergies           []string         `json:"allergies" validate:"omitempty"`
		FitnessGoals        []string         `json:"fitness_goals" validate:"omitempty"`
		CookingSkillLevel   string           `json:"cooking_skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	}

	UploadProfilePictureRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProfileResponse struct {
		UserID              string          `json:"user_id"`
		FirstName           string          `json:"first_name,omitempty"`
		LastName            string          `json:"last_name,omitempty"`
		Gender              string          `json:"gender"`
		HeightCm            decimal.Decimal `json:"height_cm"`
		WeightKg            decimal.Decimal `json:"weight_kg"`
		DateOfBirth         string          `json:"date_of_birth"`
		LocationCity        string          `json:"location_city,omitempty"`
		LocationCountry     string          `json:"location_country,omitempty"`
		ProfileImageURL     string          `json:"profile_image_url,omitempty"`
		Bio                 string          `json:"bio,omitempty"`
		DietaryRestrictions []string        `json:"dietary_restrictions,omitempty"`
		Allergies           []string        `json:"allergies,omitempty"`
		FitnessGoals        []string        `json:"fitness_goals,omitempty"`
		CookingSkillLevel   string          `json:"cooking_skill_level,omitempty"`
	}
)
