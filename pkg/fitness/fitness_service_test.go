package fitness

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFitnessRepository struct {
	plans          map[string]*entities.FitnessPlan
	earliestWeight *decimal.Decimal
	latestWeight   *decimal.Decimal
}

func newFakeFitnessRepository() *fakeFitnessRepository {
	return &fakeFitnessRepository{plans: make(map[string]*entities.FitnessPlan)}
}

func (r *fakeFitnessRepository) CreatePlan(ctx context.Context, plan *entities.FitnessPlan) error {
	r.plans[plan.ID.String()] = plan
	return nil
}

func (r *fakeFitnessRepository) GetPlanByID(ctx context.Context, id string) (*entities.FitnessPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (r *fakeFitnessRepository) GetPlansByUserID(ctx context.Context, userID string) ([]entities.FitnessPlan, error) {
	plans := make([]entities.FitnessPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		if plan.UserID.String() == userID {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func (r *fakeFitnessRepository) DeactivatePlans(ctx context.Context, userID string) error {
	for _, plan := range r.plans {
		if plan.UserID.String() == userID {
			plan.IsActive = false
		}
	}
	return nil
}

func (r *fakeFitnessRepository) GetEarliestWeightSince(ctx context.Context, userID string, since time.Time) (*decimal.Decimal, error) {
	if r.earliestWeight == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.earliestWeight, nil
}

func (r *fakeFitnessRepository) GetLatestWeight(ctx context.Context, userID string) (*decimal.Decimal, error) {
	if r.latestWeight == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.latestWeight, nil
}

func weightPtr(value float64) *decimal.Decimal {
	d := decimal.NewFromFloat(value)
	return &d
}

func TestCreatePlan_DeactivatesPrevious(t *testing.T) {
	repo := newFakeFitnessRepository()
	service := NewFitnessService(repo)
	userID := uuid.New().String()

	first, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name:      "Cut",
		Goal:      "lose_weight",
		StartDate: "2025-06-01",
	}, userID)
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name:      "Bulk",
		Goal:      "gain_muscle",
		StartDate: "2025-07-01",
	}, userID)
	require.NoError(t, err)
	assert.True(t, second.IsActive)

	assert.False(t, repo.plans[first.ID].IsActive)
	assert.True(t, repo.plans[second.ID].IsActive)
}

func TestCreatePlan_RejectsBadDates(t *testing.T) {
	service := NewFitnessService(newFakeFitnessRepository())
	userID := uuid.New().String()

	_, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name: "Plan", Goal: "lose_weight", StartDate: "next monday",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPlanDates)

	_, err = service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name: "Plan", Goal: "lose_weight", StartDate: "2025-06-10", EndDate: "2025-06-01",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPlanDates)
}

func TestGetPlanProgress(t *testing.T) {
	repo := newFakeFitnessRepository()
	repo.earliestWeight = weightPtr(80)
	repo.latestWeight = weightPtr(75)

	service := NewFitnessService(repo)
	service.(*fitnessService).now = func() time.Time {
		return time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	}
	userID := uuid.New().String()

	target := decimal.NewFromInt(70)
	endDate := "2025-07-01"
	plan, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name:           "Cut",
		Goal:           "lose_weight",
		TargetWeightKg: &target,
		StartDate:      "2025-06-01",
		EndDate:        endDate,
	}, userID)
	require.NoError(t, err)

	progress, err := service.GetPlanProgress(context.Background(), plan.ID, userID)
	require.NoError(t, err)

	require.NotNil(t, progress.WeightChangeKg)
	assert.True(t, progress.WeightChangeKg.Equal(decimal.NewFromInt(-5)))

	// Lost 5 of the 10 kg distance to target.
	assert.True(t, progress.ProgressPercentage.Equal(decimal.NewFromInt(50)))

	assert.Equal(t, 10, progress.DaysElapsed)
	require.NotNil(t, progress.DaysRemaining)
	assert.Equal(t, 20, *progress.DaysRemaining)
}

func TestGetPlanProgress_NoWeightData(t *testing.T) {
	repo := newFakeFitnessRepository()
	service := NewFitnessService(repo)
	userID := uuid.New().String()

	plan, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name: "Plan", Goal: "maintain", StartDate: "2025-06-01",
	}, userID)
	require.NoError(t, err)

	progress, err := service.GetPlanProgress(context.Background(), plan.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, progress.StartWeightKg)
	assert.Nil(t, progress.CurrentWeightKg)
	assert.Nil(t, progress.WeightChangeKg)
	assert.True(t, progress.ProgressPercentage.IsZero())
}

func TestGetPlanByID_Ownership(t *testing.T) {
	repo := newFakeFitnessRepository()
	service := NewFitnessService(repo)
	owner := uuid.New().String()

	plan, err := service.CreatePlan(context.Background(), domain.CreateFitnessPlanRequest{
		Name: "Plan", Goal: "maintain", StartDate: "2025-06-01",
	}, owner)
	require.NoError(t, err)

	_, err = service.GetPlanByID(context.Background(), plan.ID, owner)
	assert.NoError(t, err)

	_, err = service.GetPlanByID(context.Background(), plan.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = service.GetPlanByID(context.Background(), uuid.New().String(), owner)
	assert.ErrorIs(t, err, domain.ErrFitnessPlanNotFound)
}
