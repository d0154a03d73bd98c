package intake

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

type fakeIntakeRepository struct {
	created *entities.Intake
	stored  map[string]*entities.Intake
	deleted []string
}

func newFakeIntakeRepository() *fakeIntakeRepository {
	return &fakeIntakeRepository{stored: make(map[string]*entities.Intake)}
}

func (r *fakeIntakeRepository) CreateIntake(ctx context.Context, record *entities.Intake) error {
	r.created = record
	r.stored[record.ID.String()] = record
	return nil
}

func (r *fakeIntakeRepository) GetIntakeByID(ctx context.Context, id string) (*entities.Intake, error) {
	record, ok := r.stored[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (r *fakeIntakeRepository) GetIntakes(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]entities.Intake, int64, error) {
	intakes := make([]entities.Intake, 0, len(r.stored))
	for _, record := range r.stored {
		intakes = append(intakes, *record)
	}
	return intakes, int64(len(intakes)), nil
}

func (r *fakeIntakeRepository) UpdateIntake(ctx context.Context, record *entities.Intake) error {
	r.stored[record.ID.String()] = record
	return nil
}

func (r *fakeIntakeRepository) DeleteIntake(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.stored, id)
	return nil
}

type fakeDishRepository struct {
	dishes map[string]*entities.Dish
}

func newFakeDishRepository(dishes ...*entities.Dish) *fakeDishRepository {
	repo := &fakeDishRepository{dishes: make(map[string]*entities.Dish)}
	for _, d := range dishes {
		repo.dishes[d.ID.String()] = d
	}
	return repo
}

func (r *fakeDishRepository) CreateDish(ctx context.Context, d *entities.Dish) error {
	r.dishes[d.ID.String()] = d
	return nil
}

func (r *fakeDishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	d, ok := r.dishes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDishRepository) GetDishByName(ctx context.Context, name string) (*entities.Dish, error) {
	for _, d := range r.dishes {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDishRepository) UpdateDish(ctx context.Context, d *entities.Dish) error {
	r.dishes[d.ID.String()] = d
	return nil
}

func (r *fakeDishRepository) DeleteDish(ctx context.Context, id string) error {
	delete(r.dishes, id)
	return nil
}

func (r *fakeDishRepository) SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]entities.Dish, int64, error) {
	return nil, 0, nil
}

func TestCreateIntake(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Ramen"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))
	userID := uuid.New().String()

	portion := decimal.NewFromFloat(1.5)
	res, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID:      dish.ID.String(),
		IntakeTime:  "2025-06-17T12:30:00Z",
		PortionSize: &portion,
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, dish.ID.String(), res.DishID)
	assert.Equal(t, "Ramen", res.DishName)
	assert.True(t, res.PortionSize.Equal(portion))
	assert.Equal(t, time.Date(2025, 6, 17, 12, 30, 0, 0, time.UTC), res.IntakeTime)

	require.NotNil(t, intakeRepo.created)
	assert.Equal(t, userID, intakeRepo.created.UserID.String())
}

func TestCreateIntake_DishNotFound(t *testing.T) {
	service := NewIntakeService(newFakeIntakeRepository(), newFakeDishRepository())

	_, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID: uuid.New().String(),
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestCreateIntake_DefaultsTimeAndPortion(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Salad"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))

	before := time.Now()
	res, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID: dish.ID.String(),
	}, uuid.New().String())

	require.NoError(t, err)
	assert.True(t, res.PortionSize.Equal(decimal.NewFromInt(1)))
	assert.False(t, res.IntakeTime.Before(before))
}

func TestCreateIntake_RejectsBadInput(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Stew"}
	service := NewIntakeService(newFakeIntakeRepository(), newFakeDishRepository(dish))
	userID := uuid.New().String()

	_, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID:     dish.ID.String(),
		IntakeTime: "yesterday lunch",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidIntakeTime)

	zero := decimal.Zero
	_, err = service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID:      dish.ID.String(),
		PortionSize: &zero,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPortion)
}

func TestCreateIntakeByName(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Pho"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))

	res, err := service.CreateIntakeByName(context.Background(), domain.CreateIntakeByNameRequest{
		DishName: "Pho",
	}, uuid.New().String())

	require.NoError(t, err)
	assert.Equal(t, "Pho", res.DishName)
	assert.Equal(t, dish.ID.String(), res.DishID)
}

func TestGetIntakeByID_OwnershipEnforced(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Tacos"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))
	owner := uuid.New().String()

	res, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID: dish.ID.String(),
	}, owner)
	require.NoError(t, err)

	_, err = service.GetIntakeByID(context.Background(), res.ID, owner)
	assert.NoError(t, err)

	_, err = service.GetIntakeByID(context.Background(), res.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestUpdateIntake(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Sushi"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))
	owner := uuid.New().String()

	created, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID: dish.ID.String(),
	}, owner)
	require.NoError(t, err)

	portion := decimal.NewFromInt(3)
	updated, err := service.UpdateIntake(context.Background(), created.ID, domain.UpdateIntakeRequest{
		PortionSize: &portion,
	}, owner)

	require.NoError(t, err)
	assert.True(t, updated.PortionSize.Equal(portion))
}

func TestDeleteIntake(t *testing.T) {
	dish := &entities.Dish{ID: uuid.New(), Name: "Curry"}
	intakeRepo := newFakeIntakeRepository()
	service := NewIntakeService(intakeRepo, newFakeDishRepository(dish))
	owner := uuid.New().String()

	created, err := service.CreateIntake(context.Background(), domain.CreateIntakeRequest{
		DishID: dish.ID.String(),
	}, owner)
	require.NoError(t, err)

	err = service.DeleteIntake(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = service.DeleteIntake(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.Contains(t, intakeRepo.deleted, created.ID)

	err = service.DeleteIntake(context.Background(), created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
}
