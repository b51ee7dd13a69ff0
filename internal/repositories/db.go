// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"context"
	"log"
	"os"
	"time"

	"facilita/internal/config"
	"facilita/internal/models"

	"facilita/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB
var CacheService *cache.CacheService
var Events *cache.Publisher

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
// It sets up the connection pool, performs migrations, seeds the
// default plan catalog and ATM dataset, and wires Redis for caching
// and change events.
func InitDB() error {
	initPostgres()

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewCacheService(redisClient, 24*time.Hour)
	Events = cache.NewPublisher(redisClient)

	err := DB.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.Follow{},
		&models.Company{},
		&models.Product{},
		&models.ProductImage{},
		&models.Plan{},
		&models.Transaction{},
		&models.WithdrawalRequest{},
		&models.Message{},
		&models.Notification{},
		&models.ATM{},
		&models.ATMVote{},
		&models.PlatformBankAccount{},
		&models.PaymentGatewayConfig{},
	)
	if err != nil {
		return err
	}

	seedDefaults()
	return nil
}

// seedDefaults loads the default plan catalog and ATM dataset when the
// corresponding tables are empty. The ATM fallback mirrors the offline
// default collection of the storefront client.
func seedDefaults() {
	var planCount int64
	DB.Model(&models.Plan{}).Count(&planCount)
	if planCount == 0 {
		for _, p := range models.DefaultPlans() {
			plan := p
			if err := DB.Create(&plan).Error; err != nil {
				log.Printf("failed to seed plan %s: %v", plan.Type, err)
			}
		}
		log.Println("seeded default plan catalog")
	}

	var atmCount int64
	DB.Model(&models.ATM{}).Count(&atmCount)
	if atmCount == 0 {
		for _, a := range models.DefaultATMs() {
			atm := a
			if err := DB.Create(&atm).Error; err != nil {
				log.Printf("failed to seed ATM %s: %v", atm.Name, err)
			}
		}
		log.Println("seeded default ATM dataset")
	}
}

func initPostgres() {
	dbName := config.GetEnv("DB_NAME", "facilita")
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

	log.Println("✅ PostgreSQL connected & migrations applied successfully!")
}

// PublishChange emits a best-effort change event for a table row.
// Consumers invalidate and refetch; a publish failure never fails the
// mutation that caused it.
func PublishChange(table, op string, id uint) {
	if Events == nil {
		return
	}
	if err := Events.Publish(context.Background(), table, op, id); err != nil {
		log.Printf("failed to publish %s change for %s/%d: %v", op, table, id, err)
	}
}
