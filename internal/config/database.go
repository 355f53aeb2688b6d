package config

import (
	"time"

	"cms-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig assembles the pool configuration for the database
// layer from environment variables.
func LoadDatabaseConfig() *database.DBConfig {
	return &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "cms"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxOpenConns:    getEnvInt("DB_MAX_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MIN_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime: getEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute),

		MaxRetries:     getEnvInt("DB_MAX_RETRIES", 5),
		RetryDelay:     getEnvDuration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
}
