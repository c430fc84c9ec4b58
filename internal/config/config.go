package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Inventory InventoryConfig
	Recipes   RecipesConfig
	Archive   ArchiveConfig
	LogLevel  string
}

type ServerConfig struct {
	Port        int
	PingMessage string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration

	HashIterations uint32
	HashMemoryKB   uint32
	HashThreads    uint8
}

type InventoryConfig struct {
	ExpirySoonDays int
}

type RecipesConfig struct {
	SpoonacularAPIKey string
}

// ArchiveConfig describes the S3-compatible bucket used for CSV exports.
// Archiving is disabled when Bucket is empty.
type ArchiveConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// Load reads the environment, after overlaying an optional .env file.
// It refuses to build a config without an explicit signing secret.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvInt("SERVER_PORT", 8080),
			PingMessage: getEnv("PING_MESSAGE", "ping"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			TokenTTL:       time.Duration(getEnvInt("JWT_TTL_HOURS", 7*24)) * time.Hour,
			HashIterations: uint32(getEnvInt("HASH_ITERATIONS", 1)),
			HashMemoryKB:   uint32(getEnvInt("HASH_MEMORY_KB", 64*1024)),
			HashThreads:    uint8(min(getEnvInt("HASH_THREADS", 4), 255)),
		},
		Inventory: InventoryConfig{
			ExpirySoonDays: getEnvInt("EXPIRY_SOON_DAYS", 3),
		},
		Recipes: RecipesConfig{
			SpoonacularAPIKey: getEnv("SPOONACULAR_API_KEY", getEnv("SPOON_API_KEY", "")),
		},
		Archive: ArchiveConfig{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue for unparseable or non-positive values.
func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
