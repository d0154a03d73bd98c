package dish

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDishRepository struct {
	dishes      map[string]*entities.Dish
	searchQuery domain.SearchDishesQuery
}

func newFakeDishRepository() *fakeDishRepository {
	return &fakeDishRepository{dishes: make(map[string]*entities.Dish)}
}

func (r *fakeDishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	r.dishes[dish.ID.String()] = dish
	return nil
}

func (r *fakeDishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	dish, ok := r.dishes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dish, nil
}

func (r *fakeDishRepository) GetDishByName(ctx context.Context, name string) (*entities.Dish, error) {
	for _, dish := range r.dishes {
		if strings.EqualFold(dish.Name, name) {
			return dish, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	r.dishes[dish.ID.String()] = dish
	return nil
}

func (r *fakeDishRepository) DeleteDish(ctx context.Context, id string) error {
	delete(r.dishes, id)
	return nil
}

func (r *fakeDishRepository) SearchDishes(ctx context.Context, query domain.SearchDishesQuery) ([]entities.Dish, int64, error) {
	r.searchQuery = query
	dishes := make([]entities.Dish, 0, len(r.dishes))
	for _, dish := range r.dishes {
		dishes = append(dishes, *dish)
	}
	return dishes, int64(len(dishes)), nil
}

type fakeAwsS3 struct {
	deleted  []string
	uploaded []string
}

func (s *fakeAwsS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	link := "https://bucket.s3.region.amazonaws.com/" + folder + "/" + file.Filename
	s.uploaded = append(s.uploaded, link)
	return link, nil
}

func (s *fakeAwsS3) UpdateFile(oldLink string, folder string, file *multipart.FileHeader) (string, error) {
	return s.UploadFile(folder, file)
}

func (s *fakeAwsS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *fakeAwsS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

func (s *fakeAwsS3) AllowImage(file *multipart.FileHeader) bool {
	return strings.HasSuffix(file.Filename, ".jpg") || strings.HasSuffix(file.Filename, ".png")
}

func caloriesPtr(value float64) *decimal.Decimal {
	d := decimal.NewFromFloat(value)
	return &d
}

func TestCreateDish(t *testing.T) {
	repo := newFakeDishRepository()
	service := NewDishService(repo, &fakeAwsS3{})
	userID := uuid.New().String()

	res, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		Name:    "Nasi Goreng",
		Cuisine: "Indonesian",
		NutritionFacts: domain.NutritionFacts{
			Calories: caloriesPtr(640),
			ProteinG: caloriesPtr(20),
		},
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "Nasi Goreng", res.Name)
	require.NotNil(t, res.Calories)
	assert.True(t, res.Calories.Equal(decimal.NewFromInt(640)))

	stored := repo.dishes[res.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.CreatedByUserID)
	assert.Equal(t, userID, stored.CreatedByUserID.String())

	// Omitted nutrients stay unknown.
	assert.Nil(t, stored.CarbsG)
}

func TestSearchDishes_DefaultsPagination(t *testing.T) {
	repo := newFakeDishRepository()
	service := NewDishService(repo, &fakeAwsS3{})

	_, _, err := service.SearchDishes(context.Background(), domain.SearchDishesQuery{Name: "nasi"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchQuery.Page)
	assert.Equal(t, 20, repo.searchQuery.Limit)
}

func TestUpdateDish_OwnershipEnforced(t *testing.T) {
	repo := newFakeDishRepository()
	service := NewDishService(repo, &fakeAwsS3{})
	owner := uuid.New().String()

	created, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		Name: "Rendang",
	}, owner)
	require.NoError(t, err)

	_, err = service.UpdateDish(context.Background(), created.ID, domain.UpdateDishRequest{
		Name: "Rendang Padang",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	updated, err := service.UpdateDish(context.Background(), created.ID, domain.UpdateDishRequest{
		Name: "Rendang Padang",
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "Rendang Padang", updated.Name)
}

func TestUpdateDish_KeepsExistingNutrients(t *testing.T) {
	repo := newFakeDishRepository()
	service := NewDishService(repo, &fakeAwsS3{})
	owner := uuid.New().String()

	created, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		Name: "Soto",
		NutritionFacts: domain.NutritionFacts{
			Calories: caloriesPtr(300),
			SodiumMg: caloriesPtr(900),
		},
	}, owner)
	require.NoError(t, err)

	updated, err := service.UpdateDish(context.Background(), created.ID, domain.UpdateDishRequest{
		NutritionFacts: domain.NutritionFacts{
			Calories: caloriesPtr(350),
		},
	}, owner)
	require.NoError(t, err)

	require.NotNil(t, updated.Calories)
	assert.True(t, updated.Calories.Equal(decimal.NewFromInt(350)))
	require.NotNil(t, updated.SodiumMg)
	assert.True(t, updated.SodiumMg.Equal(decimal.NewFromInt(900)))
}

func TestDeleteDish_RemovesImages(t *testing.T) {
	repo := newFakeDishRepository()
	s3 := &fakeAwsS3{}
	service := NewDishService(repo, s3)
	owner := uuid.New().String()

	created, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		Name: "Gado-gado",
	}, owner)
	require.NoError(t, err)

	repo.dishes[created.ID].ImageURLs = []string{
		"https://bucket.s3.region.amazonaws.com/dishes/photo.jpg",
	}

	err = service.DeleteDish(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.Contains(t, s3.deleted, "dishes/photo.jpg")
	assert.NotContains(t, repo.dishes, created.ID)
}

func TestUploadDishImage(t *testing.T) {
	repo := newFakeDishRepository()
	s3 := &fakeAwsS3{}
	service := NewDishService(repo, s3)
	owner := uuid.New().String()

	created, err := service.CreateDish(context.Background(), domain.CreateDishRequest{
		Name: "Bakso",
	}, owner)
	require.NoError(t, err)

	_, err = service.UploadDishImage(context.Background(), created.ID, &multipart.FileHeader{Filename: "menu.pdf"}, owner)
	assert.Error(t, err)

	link, err := service.UploadDishImage(context.Background(), created.ID, &multipart.FileHeader{Filename: "bakso.jpg"}, owner)
	require.NoError(t, err)
	assert.Contains(t, repo.dishes[created.ID].ImageURLs, link)

	_, err = service.UploadDishImage(context.Background(), created.ID, &multipart.FileHeader{Filename: "bakso.jpg"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetDishByID_NotFound(t *testing.T) {
	service := NewDishService(newFakeDishRepository(), &fakeAwsS3{})

	_, err := service.GetDishByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}
