package intake

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/pkg/dish"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	IntakeService interface {
		CreateIntake(ctx context.Context, req domain.CreateIntakeRequest, userID string) (domain.IntakeResponse, error)
		CreateIntakeByName(ctx context.Context, req domain.CreateIntakeByNameRequest, userID string) (domain.IntakeResponse, error)
		GetIntakes(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]domain.IntakeResponse, int64, error)
		GetIntakeByID(ctx context.Context, id string, userID string) (domain.IntakeResponse, error)
		UpdateIntake(ctx context.Context, id string, req domain.UpdateIntakeRequest, userID string) (domain.IntakeResponse, error)
		DeleteIntake(ctx context.Context, id string, userID string) error
	}

	intakeService struct {
		intakeRepository IntakeRepository
		dishRepository   dish.DishRepository
	}
)

func NewIntakeService(intakeRepository IntakeRepository, dishRepository dish.DishRepository) IntakeService {
	return &intakeService{
		intakeRepository: intakeRepository,
		dishRepository:   dishRepository,
	}
}

func (s *intakeService) CreateIntake(ctx context.Context, req domain.CreateIntakeRequest, userID string) (domain.IntakeResponse, error) {
	targetDish, err := s.dishRepository.GetDishByID(ctx, req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IntakeResponse{}, domain.ErrDishNotFound
		}
		return domain.IntakeResponse{}, err
	}

	return s.createIntake(ctx, targetDish, req.IntakeTime, req.PortionSize, req.WaterMl, userID)
}

func (s *intakeService) CreateIntakeByName(ctx context.Context, req domain.CreateIntakeByNameRequest, userID string) (domain.IntakeResponse, error) {
	targetDish, err := s.dishRepository.GetDishByName(ctx, req.DishName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IntakeResponse{}, domain.ErrDishNotFound
		}
		return domain.IntakeResponse{}, err
	}

	return s.createIntake(ctx, targetDish, req.IntakeTime, req.PortionSize, req.WaterMl, userID)
}

func (s *intakeService) createIntake(ctx context.Context, targetDish *entities.Dish, intakeTime string, portionSize *decimal.Decimal, waterMl *int, userID string) (domain.IntakeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IntakeResponse{}, domain.ErrParseUUID
	}

	when := time.Now()
	if intakeTime != "" {
		when, err = time.Parse(time.RFC3339, intakeTime)
		if err != nil {
			return domain.IntakeResponse{}, domain.ErrInvalidIntakeTime
		}
	}

	portion := decimal.NewFromInt(1)
	if portionSize != nil {
		if !portionSize.IsPositive() {
			return domain.IntakeResponse{}, domain.ErrInvalidPortion
		}
		portion = *portionSize
	}

	record := &entities.Intake{
		ID:          uuid.New(),
		UserID:      userUUID,
		DishID:      targetDish.ID,
		IntakeTime:  when,
		PortionSize: portion,
		WaterMl:     waterMl,
	}

	if err := s.intakeRepository.CreateIntake(ctx, record); err != nil {
		return domain.IntakeResponse{}, err
	}

	record.Dish = targetDish
	return toIntakeResponse(record), nil
}

func (s *intakeService) GetIntakes(ctx context.Context, userID string, start, end *time.Time, page, limit int) ([]domain.IntakeResponse, int64, error) {
	intakes, count, err := s.intakeRepository.GetIntakes(ctx, userID, start, end, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.IntakeResponse, 0, len(intakes))
	for i := range intakes {
		response = append(response, toIntakeResponse(&intakes[i]))
	}

	return response, count, nil
}

func (s *intakeService) GetIntakeByID(ctx context.Context, id string, userID string) (domain.IntakeResponse, error) {
	record, err := s.intakeRepository.GetIntakeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IntakeResponse{}, domain.ErrIntakeNotFound
		}
		return domain.IntakeResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.IntakeResponse{}, domain.ErrUserNotAllowed
	}

	return toIntakeResponse(record), nil
}

func (s *intakeService) UpdateIntake(ctx context.Context, id string, req domain.UpdateIntakeRequest, userID string) (domain.IntakeResponse, error) {
	record, err := s.intakeRepository.GetIntakeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IntakeResponse{}, domain.ErrIntakeNotFound
		}
		return domain.IntakeResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.IntakeResponse{}, domain.ErrUserNotAllowed
	}

	if req.IntakeTime != "" {
		when, err := time.Parse(time.RFC3339, req.IntakeTime)
		if err != nil {
			return domain.IntakeResponse{}, domain.ErrInvalidIntakeTime
		}
		record.IntakeTime = when
	}
	if req.PortionSize != nil {
		if !req.PortionSize.IsPositive() {
			return domain.IntakeResponse{}, domain.ErrInvalidPortion
		}
		record.PortionSize = *req.PortionSize
	}
	if req.WaterMl != nil {
		record.WaterMl = req.WaterMl
	}

	if err := s.intakeRepository.UpdateIntake(ctx, record); err != nil {
		return domain.IntakeResponse{}, err
	}

	return toIntakeResponse(record), nil
}

func (s *intakeService) DeleteIntake(ctx context.Context, id string, userID string) error {
	record, err := s.intakeRepository.GetIntakeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIntakeNotFound
		}
		return err
	}

	if record.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.intakeRepository.DeleteIntake(ctx, id)
}

func toIntakeResponse(record *entities.Intake) domain.IntakeResponse {
	response := domain.IntakeResponse{
		ID:          record.ID.String(),
		DishID:      record.DishID.String(),
		IntakeTime:  record.IntakeTime,
		PortionSize: record.PortionSize,
		WaterMl:     record.WaterMl,
		CreatedAt:   record.CreatedAt,
	}
	if record.Dish != nil {
		response.DishName = record.Dish.Name
	}
	return response
}
