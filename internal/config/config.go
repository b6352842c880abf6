package config

import "os"

type Config struct {
	Port      string
	DBDSN     string
	UploadDir string
	JWTSecret string
	LogLevel  string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3002"),
		DBDSN:     getEnv("DB_DSN", ""),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
