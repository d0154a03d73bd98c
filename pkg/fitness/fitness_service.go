package fitness

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	FitnessService interface {
		CreatePlan(ctx context.Context, req domain.CreateFitnessPlanRequest, userID string) (domain.FitnessPlanResponse, error)
		GetPlans(ctx context.Context, userID string) ([]domain.FitnessPlanResponse, error)
		GetPlanByID(ctx context.Context, id string, userID string) (domain.FitnessPlanResponse, error)
		GetPlanProgress(ctx context.Context, id string, userID string) (domain.FitnessPlanProgressResponse, error)
	}

	fitnessService struct {
		fitnessRepository FitnessRepository
		now               func() time.Time
	}
)

func NewFitnessService(fitnessRepository FitnessRepository) FitnessService {
	return &fitnessService{
		fitnessRepository: fitnessRepository,
		now:               time.Now,
	}
}

func (s *fitnessService) CreatePlan(ctx context.Context, req domain.CreateFitnessPlanRequest, userID string) (domain.FitnessPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FitnessPlanResponse{}, domain.ErrParseUUID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.FitnessPlanResponse{}, domain.ErrInvalidPlanDates
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return domain.FitnessPlanResponse{}, domain.ErrInvalidPlanDates
		}
		if !parsed.After(startDate) {
			return domain.FitnessPlanResponse{}, domain.ErrInvalidPlanDates
		}
		endDate = &parsed
	}

	// A new plan becomes the single active one.
	if err := s.fitnessRepository.DeactivatePlans(ctx, userID); err != nil {
		return domain.FitnessPlanResponse{}, err
	}

	plan := &entities.FitnessPlan{
		ID:                   uuid.New(),
		UserID:               userUUID,
		Name:                 req.Name,
		Goal:                 req.Goal,
		TargetWeightKg:       req.TargetWeightKg,
		TargetCaloriesPerDay: req.TargetCaloriesPerDay,
		StartDate:            startDate,
		EndDate:              endDate,
		IsActive:             true,
	}

	if err := s.fitnessRepository.CreatePlan(ctx, plan); err != nil {
		return domain.FitnessPlanResponse{}, err
	}

	return toPlanResponse(plan), nil
}

func (s *fitnessService) GetPlans(ctx context.Context, userID string) ([]domain.FitnessPlanResponse, error) {
	plans, err := s.fitnessRepository.GetPlansByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FitnessPlanResponse, 0, len(plans))
	for i := range plans {
		response = append(response, toPlanResponse(&plans[i]))
	}
	return response, nil
}

func (s *fitnessService) GetPlanByID(ctx context.Context, id string, userID string) (domain.FitnessPlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return domain.FitnessPlanResponse{}, err
	}
	return toPlanResponse(plan), nil
}

func (s *fitnessService) GetPlanProgress(ctx context.Context, id string, userID string) (domain.FitnessPlanProgressResponse, error) {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return domain.FitnessPlanProgressResponse{}, err
	}

	startWeight, err := s.fitnessRepository.GetEarliestWeightSince(ctx, userID, plan.StartDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FitnessPlanProgressResponse{}, err
	}

	currentWeight, err := s.fitnessRepository.GetLatestWeight(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FitnessPlanProgressResponse{}, err
	}

	response := domain.FitnessPlanProgressResponse{
		PlanID:          plan.ID.String(),
		Goal:            plan.Goal,
		StartWeightKg:   startWeight,
		CurrentWeightKg: currentWeight,
		TargetWeightKg:  plan.TargetWeightKg,
	}

	if startWeight != nil && currentWeight != nil {
		change := currentWeight.Sub(*startWeight)
		response.WeightChangeKg = &change

		// Progress is the fraction of the start-to-target distance covered.
		if plan.TargetWeightKg != nil {
			totalDistance := plan.TargetWeightKg.Sub(*startWeight)
			if !totalDistance.IsZero() {
				progress := change.Div(totalDistance).Mul(decimal.NewFromInt(100))
				if progress.IsNegative() {
					progress = decimal.Zero
				}
				if progress.GreaterThan(decimal.NewFromInt(100)) {
					progress = decimal.NewFromInt(100)
				}
				response.ProgressPercentage = progress
			}
		}
	}

	today := s.now()
	response.DaysElapsed = int(today.Sub(plan.StartDate).Hours() / 24)
	if response.DaysElapsed < 0 {
		response.DaysElapsed = 0
	}
	if plan.EndDate != nil {
		remaining := int(plan.EndDate.Sub(today).Hours() / 24)
		if remaining < 0 {
			remaining = 0
		}
		response.DaysRemaining = &remaining
	}

	return response, nil
}

func (s *fitnessService) getOwnedPlan(ctx context.Context, id string, userID string) (*entities.FitnessPlan, error) {
	plan, err := s.fitnessRepository.GetPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFitnessPlanNotFound
		}
		return nil, err
	}

	if plan.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return plan, nil
}

func toPlanResponse(plan *entities.FitnessPlan) domain.FitnessPlanResponse {
	return domain.FitnessPlanResponse{
		ID:                   plan.ID.String(),
		Name:                 plan.Name,
		Goal:                 plan.Goal,
		TargetWeightKg:       plan.TargetWeightKg,
		TargetCaloriesPerDay: plan.TargetCaloriesPerDay,
		StartDate:            plan.StartDate,
		EndDate:              plan.EndDate,
		IsActive:             plan.IsActive,
	}
}
