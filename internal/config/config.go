package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Payout    PayoutConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis-specific configuration (rate-limit counters)
type RedisConfig struct {
	Addr string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// PayoutConfig holds tenure payout engine configuration
type PayoutConfig struct {
	MinTenureMonths int
	PrepayThreshold float64
	MaxWinners      int
	Amount          float64
}

// RateLimitConfig holds per-IP request limits for the auth endpoints
type RateLimitConfig struct {
	AuthMaxRequests int
	WindowSeconds   int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "home-solutions")
	viper.SetDefault("Redis.Addr", "localhost:6379")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Payout.MinTenureMonths", 12)
	viper.SetDefault("Payout.PrepayThreshold", 300)
	viper.SetDefault("Payout.MaxWinners", 3)
	viper.SetDefault("Payout.Amount", 300)
	viper.SetDefault("RateLimit.AuthMaxRequests", 5)
	viper.SetDefault("RateLimit.WindowSeconds", 60)
	viper.SetDefault("LogLevel", "info")
}
