package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
}
type ServerConfig struct {
	SecretKey         string
	Port              string
	UploadDir         string
	ExpirationMinutes int
}
type DatabaseConfig struct {
	Host         string
	Username     string
	Password     string
	DatabaseName string
	Port         string
}
type RedisConfig struct {
	Addr string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	expiration := 60
	if raw := os.Getenv("TOKEN_EXPIRATION_MINUTES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			expiration = parsed
		} else {
			slog.Warn("invalid TOKEN_EXPIRATION_MINUTES, using default", "value", raw)
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "static"
	}

	return &Config{
		Server: ServerConfig{
			SecretKey:         os.Getenv("SECRET_KEY"),
			Port:              os.Getenv("SERVER_PORT"),
			UploadDir:         uploadDir,
			ExpirationMinutes: expiration,
		},
		Database: DatabaseConfig{
			Host:         os.Getenv("DATABASE_HOST"),
			Username:     os.Getenv("DATABASE_USER"),
			Password:     os.Getenv("DATABASE_PASSWORD"),
			DatabaseName: os.Getenv("DATABASE_NAME"),
			Port:         os.Getenv("DATABASE_PORT"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
	}
}
