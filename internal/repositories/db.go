// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"log"
	"os"
	"time"

	"credlytics/internal/config"
	"credlytics/internal/models"
	"credlytics/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB
var CacheService *cache.CacheService

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB initializes the database connection.
// It sets up the connection pool, performs migrations,
// and configures the database with proper settings.
func InitDB() error {
	initPostgres()

	redisClient := cache.NewRedisClient(cache.LoadRedisConfig())
	CacheService = cache.NewCacheService(redisClient, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))

	err := DB.AutoMigrate(
		&models.User{},
		&models.CardTemplate{},
		&models.CardTemplateBenefit{},
		&models.UserCard{},
		&models.UserBenefit{},
		&models.Notification{},
	)

	if err != nil {
		return err
	}

	return nil
}

func initPostgres() {
	dbName := config.GetEnv("DB_NAME", "credlytics")

	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + dbName +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	// Configure GORM logger to ignore "record not found" errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db.Logger = newLogger

	log.Println("✅ PostgreSQL connected successfully!")
}

func ResetDatabase() error {
	err := DB.Migrator().DropTable(
		&models.User{},
		&models.CardTemplate{},
		&models.CardTemplateBenefit{},
		&models.UserCard{},
		&models.UserBenefit{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.User{},
		&models.CardTemplate{},
		&models.CardTemplateBenefit{},
		&models.UserCard{},
		&models.UserBenefit{},
		&models.Notification{},
	)
}
