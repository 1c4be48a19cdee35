package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// gateway config
	API_BASE_URL string
	HTTP_TIMEOUT time.Duration
	// simulator config
	APP_PORT string
	// logger config
	LOG_FILE_PATH string
}

func LoadEnvConfig() error {
	// A missing .env file is fine; the environment itself may carry everything.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		API_BASE_URL:  getEnvString("HRMS_API_BASE_URL", "http://localhost:8000/api"),
		HTTP_TIMEOUT:  getEnvDuration("HRMS_HTTP_TIMEOUT", 30*time.Second),
		APP_PORT:      getEnvString("APP_PORT", "8000"),
		LOG_FILE_PATH: getEnvString("LOG_FILE_PATH", ""),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
