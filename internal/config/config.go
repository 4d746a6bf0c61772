package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBPath           string
	ServerPort       string
	GinMode          string
	LogLevel         string
	LogFormat        string
	TaskNameUnique   bool
	UserRoleRequired bool
	ShutdownTimeout  time.Duration
}

// Load reads configuration from the environment. Values from a .env file in the
// working directory are used for keys that are not already set.
func Load() *Config {
	// A missing .env is not an error
	_ = godotenv.Load()

	return &Config{
		DBDriver:         getEnv("DB_DRIVER", DriverMySQL),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "taskuser"),
		DBPassword:       getEnv("DB_PASSWORD", "taskpassword"),
		DBName:           getEnv("DB_NAME", "task_tracker"),
		DBSSLMode:        getEnv("DB_SSL_MODE", "disable"),
		DBPath:           getEnv("DB_PATH", "task_tracker.db"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		TaskNameUnique:   getEnvBool("TASK_NAME_UNIQUE", true),
		UserRoleRequired: getEnvBool("USER_ROLE_REQUIRED", false),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// DSN builds the driver-specific connection string.
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.DBPort,
			c.DBName,
		), nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost,
			c.DBPort,
			c.DBUser,
			c.DBPassword,
			c.DBName,
			c.DBSSLMode,
		), nil
	case DriverSQLite:
		return c.DBPath, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
