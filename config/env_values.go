package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker          bool
	Port              string
	Environment       string
	CorsAllowedOrigin string

	// Auth configs
	JWTSecret                        string
	JWTExpirationMilliseconds        int
	JWTRefreshExpirationMilliseconds int
	AdminUser                        string
	AdminPassword                    string

	// Database configs
	MongoURI          string
	MongoDatabaseName string

	// Redis configs
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string

	// Data configs
	SchemaPath     string
	SampleDataPath string
	SetupOnStart   bool
	SeedOnSetup    bool

	CacheTTLSeconds         int
	OperationTimeoutSeconds int
}

var Env Environment

const (
	defaultJWTSecret     = "eduhub_jwt_secret"
	defaultAdminPassword = "eduhub"
)

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3000")
	Env.Environment = getEnvWithDefault("ENVIRONMENT", "DEVELOPMENT")
	Env.CorsAllowedOrigin = getEnvWithDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	// Auth configs
	Env.JWTSecret = getEnvWithDefault("JWT_SECRET", defaultJWTSecret)
	Env.JWTExpirationMilliseconds = getIntEnvWithDefault("JWT_EXPIRATION_MILLISECONDS", 1000*60*60*24)                 // 1 day default
	Env.JWTRefreshExpirationMilliseconds = getIntEnvWithDefault("JWT_REFRESH_EXPIRATION_MILLISECONDS", 1000*60*60*24*7) // 7 days default
	Env.AdminUser = getEnvWithDefault("EDUHUB_ADMIN_USERNAME", "eduhub")
	Env.AdminPassword = getEnvWithDefault("EDUHUB_ADMIN_PASSWORD", defaultAdminPassword)

	// Database configs
	Env.MongoURI = getEnvWithDefault("EDUHUB_MONGODB_URI", "mongodb://localhost:27017/")
	Env.MongoDatabaseName = getEnvWithDefault("EDUHUB_MONGODB_NAME", "eduhub_db")
	Env.RedisHost = getEnvWithDefault("EDUHUB_REDIS_HOST", "localhost")
	Env.RedisPort = getEnvWithDefault("EDUHUB_REDIS_PORT", "6379")
	Env.RedisUsername = getEnvWithDefault("EDUHUB_REDIS_USERNAME", "")
	Env.RedisPassword = getEnvWithDefault("EDUHUB_REDIS_PASSWORD", "")

	// Data configs
	Env.SchemaPath = getEnvWithDefault("EDUHUB_SCHEMA_PATH", "data/schema_validation.json")
	Env.SampleDataPath = getEnvWithDefault("EDUHUB_SAMPLE_DATA_PATH", "data/sample_data.json")
	Env.SetupOnStart = getBoolEnvWithDefault("EDUHUB_SETUP_ON_START", false)
	Env.SeedOnSetup = getBoolEnvWithDefault("EDUHUB_SEED_ON_SETUP", true)

	Env.CacheTTLSeconds = getIntEnvWithDefault("EDUHUB_CACHE_TTL_SECONDS", 300)
	Env.OperationTimeoutSeconds = getIntEnvWithDefault("EDUHUB_OPERATION_TIMEOUT_SECONDS", 15)

	return validateConfig()
}

// IsProduction reports whether the service runs in PRODUCTION mode.
func (e Environment) IsProduction() bool {
	return strings.EqualFold(e.Environment, "PRODUCTION")
}

// Helper functions to get environment variables with defaults
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnvWithDefault(key string, defaultValue bool) bool {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %t\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	// Validate MongoDB URI format
	if !isValidURI(Env.MongoURI) {
		return fmt.Errorf("invalid EDUHUB_MONGODB_URI format: %s", Env.MongoURI)
	}

	if Env.MongoDatabaseName == "" {
		return fmt.Errorf("EDUHUB_MONGODB_NAME must not be empty")
	}

	// Validate JWT expiration
	if Env.JWTExpirationMilliseconds <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MILLISECONDS must be positive, got: %d", Env.JWTExpirationMilliseconds)
	}

	if Env.CacheTTLSeconds <= 0 {
		return fmt.Errorf("EDUHUB_CACHE_TTL_SECONDS must be positive, got: %d", Env.CacheTTLSeconds)
	}

	if Env.OperationTimeoutSeconds <= 0 {
		return fmt.Errorf("EDUHUB_OPERATION_TIMEOUT_SECONDS must be positive, got: %d", Env.OperationTimeoutSeconds)
	}

	// The setup routes drop every collection, so production must not run behind
	// the built-in credentials.
	if Env.IsProduction() {
		if Env.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if Env.AdminPassword == defaultAdminPassword {
			return fmt.Errorf("EDUHUB_ADMIN_PASSWORD must be set in production")
		}
	}

	return nil
}

func isValidURI(uri string) bool {
	return strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://")
}
