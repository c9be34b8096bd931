package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Booking    BookingConfig
	Dispatcher DispatcherConfig
	Authz      AuthzConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type BookingConfig struct {
	TokenSecret string
	FrontendURL string
}

type DispatcherConfig struct {
	Workers      int
	QueueSize    int
	NotifyPerSec float64
	NotifyBurst  int
}

type AuthzConfig struct {
	PolicyPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "arbeit_interviews"),
		},
		Booking: BookingConfig{
			TokenSecret: getEnv("BOOKING_TOKEN_SECRET", "arbeit-secret-key"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Dispatcher: DispatcherConfig{
			Workers:      getEnvAsInt("DISPATCHER_WORKERS", 2),
			QueueSize:    getEnvAsInt("DISPATCHER_QUEUE_SIZE", 512),
			NotifyPerSec: getEnvAsFloat("NOTIFY_RATE_PER_SEC", 20),
			NotifyBurst:  getEnvAsInt("NOTIFY_RATE_BURST", 50),
		},
		Authz: AuthzConfig{
			PolicyPath: getEnv("AUTHZ_POLICY_PATH", ""),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
