package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Booking store backend: "memory", "redis" or "mongo".
	BookingStore string `mapstructure:"BOOKING_STORE"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisBookingDB int    `mapstructure:"REDIS_BOOKING_DB"`

	// Gemini upstream. The API key is required; startup fails without it.
	GeminiAPIKey           string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel            string `mapstructure:"GEMINI_MODEL"`
	GeminiConnectTimeoutMs int    `mapstructure:"GEMINI_CONNECT_TIMEOUT_MS"`
	GeminiReadTimeoutMs    int    `mapstructure:"GEMINI_READ_TIMEOUT_MS"`
}

var AppConfig Config

func LoadConfig() {
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BOOKING_STORE", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_BOOKING_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_CONNECT_TIMEOUT_MS", 2500)
	viper.SetDefault("GEMINI_READ_TIMEOUT_MS", 7000)

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
