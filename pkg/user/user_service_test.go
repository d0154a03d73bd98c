package user

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[string]*entities.User),
	}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

type fakeJWTService struct {
	verificationClaims jwt.MapClaims
}

func (s *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (s *fakeJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (s *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (s *fakeJWTService) GenerateTokenVerification(data map[string]any, duration time.Duration) (string, error) {
	return "verify-token", nil
}

func (s *fakeJWTService) ValidateTokenVerification(token string) (jwt.MapClaims, error) {
	if s.verificationClaims == nil {
		return jwt.MapClaims{}, domain.ErrTokenInvalid
	}
	return s.verificationClaims, nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ayu", res.Name)
	assert.Equal(t, "ayu@example.com", res.Email)

	stored := repo.byEmail["ayu@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.False(t, stored.IsVerified)

	// Password is stored hashed, never in the clear.
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name: "Ayu", Email: "ayu@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name: "Other", Email: "ayu@example.com", Password: "different",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email: "budi@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name: "Budi", Email: "budi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email: "budi@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe_NotFound(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Me(context.Background(), "1b671a64-40d5-491e-99b0-da01ff1f3341")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name: "Citra", Email: "citra@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	err = service.UpdateUser(context.Background(), domain.UpdateUserRequest{Name: "Citra Dewi"}, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Citra Dewi", repo.byID[res.ID].Name)
}

func TestVerifyEmail(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := &fakeJWTService{
		verificationClaims: jwt.MapClaims{"email": "dewi@example.com"},
	}
	service := NewUserService(repo, jwtService)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name: "Dewi", Email: "dewi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	err = service.VerifyEmail(context.Background(), "verify-token")
	require.NoError(t, err)
	assert.True(t, repo.byEmail["dewi@example.com"].IsVerified)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	err := service.VerifyEmail(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
