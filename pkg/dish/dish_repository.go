package dish

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetDishByName(ctx context.Context, name string) (*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error
		DeleteDish(ctx context.Context, id string) error
		SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]entities.Dish, int64, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetDishByName(ctx context.Context, name string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) DeleteDish(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Dish{}).Error
}

func (r *dishRepository) SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]entities.Dish, int64, error) {
	var dishes []entities.Dish
	var count int64

	dbQuery := r.db.WithContext(ctx).Model(&entities.Dish{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name ILIKE ?", "%"+query.Name+"%")
	}
	if query.Cuisine != "" {
		dbQuery = dbQuery.Where("cuisine = ?", query.Cuisine)
	}
	if query.MinCalories != nil {
		dbQuery = dbQuery.Where("calories >= ?", query.MinCalories)
	}
	if query.MaxCalories != nil {
		dbQuery = dbQuery.Where("calories <= ?", query.MaxCalories)
	}

	if err := dbQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := dbQuery.Offset(offset).Limit(query.Limit).
		Order("name asc").
		Find(&dishes).Error; err != nil {
		return nil, 0, err
	}

	return dishes, count, nil
}
