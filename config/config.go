package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	ResortName        string `mapstructure:"RESORT_NAME"`

	// Storage slot configuration. STORAGE_DRIVER is one of memory, redis, mongo.
	StorageDriver  string        `mapstructure:"STORAGE_DRIVER"`
	StorageKey     string        `mapstructure:"STORAGE_KEY"`
	StorageTimeout time.Duration `mapstructure:"STORAGE_TIMEOUT"`
	HealthInterval time.Duration `mapstructure:"HEALTH_INTERVAL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Mongo configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Booking form rules.
	MinNameLength   int      `mapstructure:"MIN_NAME_LENGTH"`
	MaxParticipants int      `mapstructure:"MAX_PARTICIPANTS"`
	Packages        []string `mapstructure:"PACKAGES"`
}

const DefaultStorageKey = "jiperaha_resort_booking_data"

var AppConfig Config

// DefaultPackages are offered when no PACKAGES list is configured.
var DefaultPackages = []string{
	"Safari",
	"Beach Getaway",
	"Spa Retreat",
	"Cultural Tour",
	"Honeymoon",
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	normalize(&AppConfig)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("RESORT_NAME", "Jiperaha Resort")
	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("STORAGE_KEY", DefaultStorageKey)
	v.SetDefault("STORAGE_TIMEOUT", 2*time.Second)
	v.SetDefault("HEALTH_INTERVAL", 60*time.Second)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "jiperaha")
	v.SetDefault("MIN_NAME_LENGTH", 2)
	v.SetDefault("MAX_PARTICIPANTS", 10)
	v.SetDefault("PACKAGES", DefaultPackages)
}

// normalize repairs values an env override may have left unusable.
func normalize(cfg *Config) {
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 2 * time.Second
	}
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = 60 * time.Second
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = DefaultPackages
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
