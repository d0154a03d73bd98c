package routes

import (
	"NutriTrack-Backend/internal/api/handlers"
	"NutriTrack-Backend/internal/middleware"
	"NutriTrack-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	ProfileHandler       handlers.ProfileHandler
	DishHandler          handlers.DishHandler
	IngredientHandler    handlers.IngredientHandler
	IntakeHandler        handlers.IntakeHandler
	HealthHistoryHandler handlers.HealthHistoryHandler
	StatsHandler         handlers.StatsHandler
	FitnessHandler       handlers.FitnessHandler
	CommunityHandler     handlers.CommunityHandler
	ChatHandler          handlers.ChatHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Profile()
	c.Dishes()
	c.Ingredients()
	c.Intakes()
	c.HealthHistory()
	c.Stats()
	c.Fitness()
	c.Community()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))

	profile.Post("", c.ProfileHandler.CreateProfile)
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Patch("", c.ProfileHandler.UpdateProfile)
	profile.Post("/picture", c.ProfileHandler.UploadProfilePicture)
	profile.Delete("", c.ProfileHandler.DeleteProfile)
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes", c.Middleware.AuthMiddleware(c.JWTService))

	dishes.Post("", c.DishHandler.CreateDish)
	dishes.Get("", c.DishHandler.SearchDishes)
	dishes.Get("/:id", c.DishHandler.GetDishByID)
	dishes.Put("/:id", c.DishHandler.UpdateDish)
	dishes.Delete("/:id", c.DishHandler.DeleteDish)
	dishes.Post("/:id/image", c.DishHandler.UploadDishImage)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientByID)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Intakes() {
	intakes := c.App.Group("/api/v1/intakes", c.Middleware.AuthMiddleware(c.JWTService))

	intakes.Post("", c.IntakeHandler.CreateIntake)
	intakes.Post("/by-name", c.IntakeHandler.CreateIntakeByName)
	intakes.Get("", c.IntakeHandler.GetIntakes)
	intakes.Get("/:id", c.IntakeHandler.GetIntakeByID)
	intakes.Put("/:id", c.IntakeHandler.UpdateIntake)
	intakes.Delete("/:id", c.IntakeHandler.DeleteIntake)
}

func (c *Config) HealthHistory() {
	health := c.App.Group("/api/v1/health-history", c.Middleware.AuthMiddleware(c.JWTService))

	health.Post("", c.HealthHistoryHandler.AddRecord)
	health.Get("", c.HealthHistoryHandler.GetRecords)
	health.Get("/:id", c.HealthHistoryHandler.GetRecordByID)
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService))

	stats.Get("/quick", c.StatsHandler.GetQuickStats)
	stats.Get("/comprehensive", c.StatsHandler.GetComprehensiveStats)
	stats.Get("/calories", c.StatsHandler.GetCalorieStats)
	stats.Get("/macronutrients", c.StatsHandler.GetMacronutrientStats)
	stats.Get("/micronutrients", c.StatsHandler.GetMicronutrientStats)
	stats.Get("/consumption-patterns", c.StatsHandler.GetConsumptionPatterns)
	stats.Get("/progress", c.StatsHandler.GetProgressStats)
	stats.Get("/nutrition-overview", c.StatsHandler.GetNutritionOverview)
}

func (c *Config) Fitness() {
	fitness := c.App.Group("/api/v1/fitness-plans", c.Middleware.AuthMiddleware(c.JWTService))

	fitness.Post("", c.FitnessHandler.CreatePlan)
	fitness.Get("", c.FitnessHandler.GetPlans)
	fitness.Get("/:id", c.FitnessHandler.GetPlanByID)
	fitness.Get("/:id/progress", c.FitnessHandler.GetPlanProgress)
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community", c.Middleware.AuthMiddleware(c.JWTService))

	community.Post("/posts", c.CommunityHandler.CreatePost)
	community.Get("/posts", c.CommunityHandler.GetFeed)
	community.Get("/posts/:id", c.CommunityHandler.GetPostByID)
	community.Post("/posts/:id/comments", c.CommunityHandler.CreateComment)
	community.Get("/posts/:id/comments", c.CommunityHandler.GetComments)
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService))

	chat.Post("/conversations", c.ChatHandler.CreateConversation)
	chat.Get("/conversations", c.ChatHandler.GetConversations)
	chat.Get("/conversations/:id/messages", c.ChatHandler.GetMessages)
	chat.Post("/conversations/:id/messages", c.ChatHandler.SendMessage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
