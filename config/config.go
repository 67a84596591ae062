package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	SiteBaseURL       string `mapstructure:"SITE_BASE_URL"`

	// Catalog data.
	BusinessSource  string `mapstructure:"BUSINESS_SOURCE"`
	BusinessCSVPath string `mapstructure:"BUSINESS_CSV_PATH"`
	ProvidersFile   string `mapstructure:"PROVIDERS_FILE"`

	// MongoDB configuration, used when BUSINESS_SOURCE=mongo.
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	MongoDatabase           string `mapstructure:"MONGO_DATABASE"`
	MongoBusinessCollection string `mapstructure:"MONGO_BUSINESS_COLLECTION"`

	// Page cache configuration.
	CacheBackend    string `mapstructure:"CACHE_BACKEND"`
	CacheTTLSeconds int    `mapstructure:"CACHE_TTL_SECONDS"`
	CacheMaxEntries int    `mapstructure:"CACHE_MAX_ENTRIES"` // memory backend only

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

const (
	BusinessSourceCSV   = "csv"
	BusinessSourceMongo = "mongo"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

func LoadConfig() {
	// Local overrides first so AutomaticEnv sees them.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("SITE_BASE_URL", "http://localhost:8080")
	viper.SetDefault("BUSINESS_SOURCE", BusinessSourceCSV)
	viper.SetDefault("BUSINESS_CSV_PATH", "data/llc_data.csv")
	viper.SetDefault("PROVIDERS_FILE", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "llcdirectory")
	viper.SetDefault("MONGO_BUSINESS_COLLECTION", "local_businesses")
	viper.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("CACHE_MAX_ENTRIES", 500)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
