package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string

	// Object storage for card images
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3UseSSL    bool
	S3Bucket    string
	S3PublicURL string // URL prefix clients use to fetch uploaded images

	// eBay Browse API (primary image search provider)
	EbayAppID  string
	EbayCertID string

	// Generic image-search proxy (secondary provider)
	ImageSearchURL string
	ImageSearchKey string

	// When true, an unresolved reference name at import time is a hard
	// per-row error instead of a null foreign key.
	ImportStrictRefs bool

	// Days to keep entries in the logs collection before the nightly prune.
	LogRetentionDays int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "cardvault"),
		SkipAuth:    getEnv("SKIP_AUTH", "false") == "true",
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "cardvault"),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
		S3Bucket:    getEnv("S3_BUCKET", "card-images"),
		S3PublicURL: getEnv("S3_PUBLIC_URL", "http://localhost:9000/card-images"),

		EbayAppID:  getEnv("EBAY_APP_ID", ""),
		EbayCertID: getEnv("EBAY_CERT_ID", ""),

		ImageSearchURL: getEnv("IMAGE_SEARCH_URL", ""),
		ImageSearchKey: getEnv("IMAGE_SEARCH_KEY", ""),

		ImportStrictRefs: getEnv("IMPORT_STRICT_REFS", "false") == "true",
		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
