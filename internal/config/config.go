package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"launchdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Server    ServerConfig
	Slider    SliderConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// DataConfig selects the launch records source
type DataConfig struct {
	File        string
	Sheet       string
	DatabaseURL string
	Table       string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// SliderConfig holds the payload range slider settings in kg
type SliderConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:      loadDataConfig(),
		Server:    loadServerConfig(),
		Slider:    loadSliderConfig(),
		Profiling: loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() DataConfig {
	return DataConfig{
		File:        getEnvOrDefault("DATA_FILE", "data/spacex_launch_dash.csv"),
		Sheet:       getEnvOrDefault("DATA_SHEET", ""),
		DatabaseURL: getEnvOrDefault("DATABASE_URL", ""),
		Table:       getEnvOrDefault("DATA_TABLE", ""),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8050"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadSliderConfig() SliderConfig {
	return SliderConfig{
		Min:  getEnvFloatOrDefault("SLIDER_MIN", 0),
		Max:  getEnvFloatOrDefault("SLIDER_MAX", 10000),
		Step: getEnvFloatOrDefault("SLIDER_STEP", 1000),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" && config.Data.DatabaseURL == "" {
		return errors.ConfigInvalid("DATA_FILE or DATABASE_URL is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("PORT must be numeric, got %q", config.Server.Port))
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("GIN_MODE must be debug, release or test, got %q", config.Server.GinMode))
	}
	if config.Slider.Step <= 0 {
		return errors.ConfigInvalid("SLIDER_STEP must be positive")
	}
	if config.Slider.Min > config.Slider.Max {
		return errors.ConfigInvalid("SLIDER_MIN must not exceed SLIDER_MAX")
	}
	if config.Profiling.Enabled && config.Profiling.Port == config.Server.Port {
		return errors.ConfigInvalid("PPROF_PORT must differ from PORT")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
