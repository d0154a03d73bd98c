package migration

import (
	"NutriTrack-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.UserProfile{},
		&entities.HealthHistory{},
		&entities.Ingredient{},
		&entities.Dish{},
		&entities.DishIngredient{},
		&entities.Intake{},
		&entities.FitnessPlan{},
		&entities.Post{},
		&entities.Comment{},
		&entities.Conversation{},
		&entities.Message{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
