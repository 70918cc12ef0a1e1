package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Dataset configuration
	Dataset DatasetConfig

	// Analytics configuration
	Analytics AnalyticsConfig

	// Export configuration
	ExportDir string

	// Optional Postgres sink for the output tables
	Database DatabaseConfig

	// Optional Redis KPI publisher
	Redis RedisConfig
}

// DatasetConfig holds the synthetic dataset parameters
type DatasetConfig struct {
	Seed      int64
	Clients   int
	Products  int
	Stores    int
	Sales     int
	StartDate time.Time
	EndDate   time.Time
}

// AnalyticsConfig holds the clustering and anomaly parameters
type AnalyticsConfig struct {
	ClusterCount     int
	Restarts         int
	MaxIterations    int
	AnomalyThreshold float64

	// JoinPolicy is "fail" (abort on a dangling dimension key) or "drop"
	// (plain inner join, unmatched sales skipped)
	JoinPolicy string
}

// DatabaseConfig holds the Postgres sink configuration. The sink only runs
// when Enabled is true, i.e. DB_HOST is set.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// RedisConfig holds the Redis publisher configuration. Publishing only runs
// when Enabled is true, i.e. REDIS_HOST is set.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Dataset: DatasetConfig{
			Seed:      int64(getEnvInt("DATASET_SEED", 42)),
			Clients:   getEnvInt("DATASET_CLIENTS", 200),
			Products:  getEnvInt("DATASET_PRODUCTS", 50),
			Stores:    getEnvInt("DATASET_STORES", 8),
			Sales:     getEnvInt("DATASET_SALES", 5000),
			StartDate: getEnvDate("DATASET_START_DATE", "2023-01-01"),
			EndDate:   getEnvDate("DATASET_END_DATE", "2024-12-31"),
		},

		Analytics: AnalyticsConfig{
			ClusterCount:     getEnvInt("KMEANS_CLUSTERS", 3),
			Restarts:         getEnvInt("KMEANS_RESTARTS", 25),
			MaxIterations:    getEnvInt("KMEANS_MAX_ITERATIONS", 300),
			AnomalyThreshold: getEnvFloat("ANOMALY_Z_THRESHOLD", 3.0),
			JoinPolicy:       getEnvOrDefault("JOIN_POLICY", "fail"),
		},

		ExportDir: getEnvOrDefault("EXPORT_DIR", "exports"),

		Database: DatabaseConfig{
			Enabled:  os.Getenv("DB_HOST") != "",
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_NAME", "retail_mining"),
			User:     getEnvOrDefault("DB_USER", "retail"),
			Password: getEnvOrDefault("DB_PASSWORD", ""),
		},

		Redis: RedisConfig{
			Enabled:  os.Getenv("REDIS_HOST") != "",
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			TTL:      time.Duration(getEnvInt("REDIS_TTL_MINUTES", 60)) * time.Minute,
		},
	}
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat gets environment variable as float64 or returns default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var floatValue float64
	if _, err := fmt.Sscanf(value, "%f", &floatValue); err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDate parses environment variable as a 2006-01-02 date, falling back
// to the default on any parse failure
func getEnvDate(key, defaultValue string) time.Time {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, _ = time.Parse("2006-01-02", defaultValue)
	}
	return t
}
