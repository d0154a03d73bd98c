package dish

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		CreateDish(ctx context.Context, req domain.CreateDishRequest, userID string) (domain.DishResponse, error)
		GetDishByID(ctx context.Context, id string) (domain.DishResponse, error)
		SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]domain.DishResponse, int64, error)
		UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, id string, userID string) error
		UploadDishImage(ctx context.Context, dishID string, image *multipart.FileHeader, userID string) (string, error)
	}

	dishService struct {
		dishRepository DishRepository
		s3             storage.AwsS3
	}
)

func NewDishService(dishRepository DishRepository, s3 storage.AwsS3) DishService {
	return &dishService{
		dishRepository: dishRepository,
		s3:             s3,
	}
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest, userID string) (domain.DishResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DishResponse{}, domain.ErrParseUUID
	}

	dish := &entities.Dish{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Cuisine:         req.Cuisine,
		CreatedByUserID: &userUUID,
		CookingSteps:    req.CookingSteps,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
	}
	applyNutritionFacts(dish, req.NutritionFacts)

	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return toDishResponse(dish), nil
}

func (s *dishService) GetDishByID(ctx context.Context, id string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	return toDishResponse(dish), nil
}

func (s *dishService) SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]domain.DishResponse, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	dishes, count, err := s.dishRepository.SearchDishes(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for i := range dishes {
		response = append(response, toDishResponse(&dishes[i]))
	}

	return response, count, nil
}

func (s *dishService) UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if dish.CreatedByUserID == nil || dish.CreatedByUserID.String() != userID {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		dish.Name = req.Name
	}
	if req.Description != "" {
		dish.Description = req.Description
	}
	if req.Cuisine != "" {
		dish.Cuisine = req.Cuisine
	}
	if req.CookingSteps != nil {
		dish.CookingSteps = req.CookingSteps
	}
	if req.PrepTimeMinutes > 0 {
		dish.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes > 0 {
		dish.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		dish.Servings = req.Servings
	}
	applyNutritionFacts(dish, req.NutritionFacts)

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return toDishResponse(dish), nil
}

func (s *dishService) DeleteDish(ctx context.Context, id string, userID string) error {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	if dish.CreatedByUserID == nil || dish.CreatedByUserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	for _, link := range dish.ImageURLs {
		if objectKey := s.s3.GetObjectKeyFromLink(link); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.dishRepository.DeleteDish(ctx, id)
}

func (s *dishService) UploadDishImage(ctx context.Context, dishID string, image *multipart.FileHeader, userID string) (string, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrDishNotFound
		}
		return "", err
	}

	if dish.CreatedByUserID == nil || dish.CreatedByUserID.String() != userID {
		return "", domain.ErrUserNotAllowed
	}

	if !s.s3.AllowImage(image) {
		return "", errors.New("unsupported image format")
	}

	link, err := s.s3.UploadFile("dishes", image)
	if err != nil {
		return "", err
	}

	dish.ImageURLs = append(dish.ImageURLs, link)
	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return "", err
	}

	return link, nil
}

// applyNutritionFacts overwrites only the nutrients present in the request,
// so an omitted value stays unknown rather than being reset.
func applyNutritionFacts(dish *entities.Dish, facts domain.NutritionFacts) {
	if facts.Calories != nil {
		dish.Calories = facts.Calories
	}
	if facts.ProteinG != nil {
		dish.ProteinG = facts.ProteinG
	}
	if facts.CarbsG != nil {
		dish.CarbsG = facts.CarbsG
	}
	if facts.FatsG != nil {
		dish.FatsG = facts.FatsG
	}
	if facts.SatFatsG != nil {
		dish.SatFatsG = facts.SatFatsG
	}
	if facts.UnsatFatsG != nil {
		dish.UnsatFatsG = facts.UnsatFatsG
	}
	if facts.TransFatsG != nil {
		dish.TransFatsG = facts.TransFatsG
	}
	if facts.FiberG != nil {
		dish.FiberG = facts.FiberG
	}
	if facts.SugarG != nil {
		dish.SugarG = facts.SugarG
	}
	if facts.CalciumMg != nil {
		dish.CalciumMg = facts.CalciumMg
	}
	if facts.IronMg != nil {
		dish.IronMg = facts.IronMg
	}
	if facts.PotassiumMg != nil {
		dish.PotassiumMg = facts.PotassiumMg
	}
	if facts.SodiumMg != nil {
		dish.SodiumMg = facts.SodiumMg
	}
	if facts.ZincMg != nil {
		dish.ZincMg = facts.ZincMg
	}
	if facts.MagnesiumMg != nil {
		dish.MagnesiumMg = facts.MagnesiumMg
	}
	if facts.VitAMcg != nil {
		dish.VitAMcg = facts.VitAMcg
	}
	if facts.VitB1Mg != nil {
		dish.VitB1Mg = facts.VitB1Mg
	}
	if facts.VitB2Mg != nil {
		dish.VitB2Mg = facts.VitB2Mg
	}
	if facts.VitB3Mg != nil {
		dish.VitB3Mg = facts.VitB3Mg
	}
	if facts.VitB5Mg != nil {
		dish.VitB5Mg = facts.VitB5Mg
	}
	if facts.VitB6Mg != nil {
		dish.VitB6Mg = facts.VitB6Mg
	}
	if facts.VitB9Mcg != nil {
		dish.VitB9Mcg = facts.VitB9Mcg
	}
	if facts.VitB12Mcg != nil {
		dish.VitB12Mcg = facts.VitB12Mcg
	}
	if facts.VitCMg != nil {
		dish.VitCMg = facts.VitCMg
	}
	if facts.VitDMcg != nil {
		dish.VitDMcg = facts.VitDMcg
	}
	if facts.VitEMg != nil {
		dish.VitEMg = facts.VitEMg
	}
	if facts.VitKMcg != nil {
		dish.VitKMcg = facts.VitKMcg
	}
}

func toDishResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:              dish.ID.String(),
		Name:            dish.Name,
		Description:     dish.Description,
		Cuisine:         dish.Cuisine,
		CookingSteps:    dish.CookingSteps,
		PrepTimeMinutes: dish.PrepTimeMinutes,
		CookTimeMinutes: dish.CookTimeMinutes,
		ImageURLs:       dish.ImageURLs,
		Servings:        dish.Servings,
		CreatedAt:       dish.CreatedAt,
		NutritionFacts: domain.NutritionFacts{
			Calories:    dish.Calories,
			ProteinG:    dish.ProteinG,
			CarbsG:      dish.CarbsG,
			FatsG:       dish.FatsG,
			SatFatsG:    dish.SatFatsG,
			UnsatFatsG:  dish.UnsatFatsG,
			TransFatsG:  dish.TransFatsG,
			FiberG:      dish.FiberG,
			SugarG:      dish.SugarG,
			CalciumMg:   dish.CalciumMg,
			IronMg:      dish.IronMg,
			PotassiumMg: dish.PotassiumMg,
			SodiumMg:    dish.SodiumMg,
			ZincMg:      dish.ZincMg,
			MagnesiumMg: dish.MagnesiumMg,
			VitAMcg:     dish.VitAMcg,
			VitB1Mg:     dish.VitB1Mg,
			VitB2Mg:     dish.VitB2Mg,
			VitB3Mg:     dish.VitB3Mg,
			VitB5Mg:     dish.VitB5Mg,
			VitB6Mg:     dish.VitB6Mg,
			VitB9Mcg:    dish.VitB9Mcg,
			VitB12Mcg:   dish.VitB12Mcg,
			VitCMg:      dish.VitCMg,
			VitDMcg:     dish.VitDMcg,
			VitEMg:      dish.VitEMg,
			VitKMcg:     dish.VitKMcg,
		},
	}
}
