package config

import (
	"os"

	"bistro-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
}

// Load reads configuration from the environment, with a .env file as an
// optional source.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "5000"),
		DBPath:    getEnv("DB_PATH", "bistro.db"),
		JWTSecret: []byte(getEnv("ACCESS_TOKEN_SECRET", "bistro_boss_super_secret_2024")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates all models. A connect or
// migrate failure is returned to the caller; startup must not proceed
// without a working database.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
