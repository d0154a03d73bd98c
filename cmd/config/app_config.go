package config

import (
	"NutriTrack-Backend/internal/api/handlers"
	"NutriTrack-Backend/internal/api/routes"
	"NutriTrack-Backend/internal/middleware"
	"NutriTrack-Backend/internal/utils"
	"NutriTrack-Backend/internal/utils/storage"
	"NutriTrack-Backend/pkg/chat"
	"NutriTrack-Backend/pkg/community"
	"NutriTrack-Backend/pkg/dish"
	"NutriTrack-Backend/pkg/fitness"
	"NutriTrack-Backend/pkg/healthhistory"
	"NutriTrack-Backend/pkg/ingredient"
	"NutriTrack-Backend/pkg/intake"
	"NutriTrack-Backend/pkg/jwt"
	"NutriTrack-Backend/pkg/profile"
	"NutriTrack-Backend/pkg/stats"
	"NutriTrack-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	dishRepository := dish.NewDishRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	intakeRepository := intake.NewIntakeRepository(db)
	healthHistoryRepository := healthhistory.NewHealthHistoryRepository(db)
	statsRepository := stats.NewStatsRepository(db)
	fitnessRepository := fitness.NewFitnessRepository(db)
	communityRepository := community.NewCommunityRepository(db)
	chatRepository := chat.NewChatRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	profileService := profile.NewProfileService(profileRepository, s3)
	dishService := dish.NewDishService(dishRepository, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	intakeService := intake.NewIntakeService(intakeRepository, dishRepository)
	healthHistoryService := healthhistory.NewHealthHistoryService(healthHistoryRepository)
	statsService := stats.NewStatsService(statsRepository)
	fitnessService := fitness.NewFitnessService(fitnessRepository)
	communityService := community.NewCommunityService(communityRepository)
	chatService := chat.NewChatService(chatRepository, dishService, intakeService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	intakeHandler := handlers.NewIntakeHandler(intakeService, validator)
	healthHistoryHandler := handlers.NewHealthHistoryHandler(healthHistoryService, validator)
	statsHandler := handlers.NewStatsHandler(statsService, validator)
	fitnessHandler := handlers.NewFitnessHandler(fitnessService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		ProfileHandler:       profileHandler,
		DishHandler:          dishHandler,
		IngredientHandler:    ingredientHandler,
		IntakeHandler:        intakeHandler,
		HealthHistoryHandler: healthHistoryHandler,
		StatsHandler:         statsHandler,
		FitnessHandler:       fitnessHandler,
		CommunityHandler:     communityHandler,
		ChatHandler:          chatHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
