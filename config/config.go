package config

import (
	"log"
	"os"

	"food-truck-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_truck_super_secret_2024"))

// Config holds everything the server needs from the environment
type Config struct {
	Port           string
	DBPath         string
	GeocodeBaseURL string
	GeocodeAPIKey  string
	MapBaseURL     string
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "food_truck.db"),
		GeocodeBaseURL: getEnv("GEOCODE_API_BASE_URL", "https://www.mapquestapi.com/geocoding/v1"),
		GeocodeAPIKey:  getEnv("GEOCODE_API_KEY", ""),
		MapBaseURL:     getEnv("MAP_API_BASE_URL", "https://www.mapquestapi.com/staticmap/v5/map"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates all models.
// TranslateError maps driver unique-constraint failures onto
// gorm.ErrDuplicatedKey so the store can report conflicts distinctly.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate all models
	err = db.AutoMigrate(
		&models.User{},
		&models.Truck{},
		&models.Review{},
		&models.Favorite{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}
