package healthhistory

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HealthHistoryService interface {
		AddRecord(ctx context.Context, req domain.AddHealthRecordRequest, userID string) (domain.HealthRecordResponse, error)
		GetRecords(ctx context.Context, userID string, page, limit int) ([]domain.HealthRecordResponse, int64, error)
		GetRecordByID(ctx context.Context, id string, userID string) (domain.HealthRecordResponse, error)
	}

	healthHistoryService struct {
		healthHistoryRepository HealthHistoryRepository
	}
)

func NewHealthHistoryService(healthHistoryRepository HealthHistoryRepository) HealthHistoryService {
	return &healthHistoryService{
		healthHistoryRepository: healthHistoryRepository,
	}
}

func (s *healthHistoryService) AddRecord(ctx context.Context, req domain.AddHealthRecordRequest, userID string) (domain.HealthRecordResponse, error) {
	if req.HeightCm == nil && req.WeightKg == nil {
		return domain.HealthRecordResponse{}, domain.ErrEmptyHealthRecord
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.HealthRecordResponse{}, domain.ErrParseUUID
	}

	record := &entities.HealthHistory{
		ID:              uuid.New(),
		UserID:          userUUID,
		HeightCm:        req.HeightCm,
		WeightKg:        req.WeightKg,
		ChangeTimestamp: time.Now(),
	}

	if err := s.healthHistoryRepository.CreateRecord(ctx, record); err != nil {
		return domain.HealthRecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

func (s *healthHistoryService) GetRecords(ctx context.Context, userID string, page, limit int) ([]domain.HealthRecordResponse, int64, error) {
	records, count, err := s.healthHistoryRepository.GetRecordsByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.HealthRecordResponse, 0, len(records))
	for i := range records {
		response = append(response, toRecordResponse(&records[i]))
	}

	return response, count, nil
}

func (s *healthHistoryService) GetRecordByID(ctx context.Context, id string, userID string) (domain.HealthRecordResponse, error) {
	record, err := s.healthHistoryRepository.GetRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HealthRecordResponse{}, domain.ErrHealthRecordNotFound
		}
		return domain.HealthRecordResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.HealthRecordResponse{}, domain.ErrUserNotAllowed
	}

	return toRecordResponse(record), nil
}

func toRecordResponse(record *entities.HealthHistory) domain.HealthRecordResponse {
	return domain.HealthRecordResponse{
		ID:              record.ID.String(),
		HeightCm:        record.HeightCm,
		WeightKg:        record.WeightKg,
		ChangeTimestamp: record.ChangeTimestamp,
	}
}
