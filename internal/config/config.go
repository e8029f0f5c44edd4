package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend del taller (API REST de citas)
	APIBaseURL string

	// Registro de placas (API externa)
	PlacasBaseURL string

	// Almacenamiento local del dispositivo
	StoragePath string

	PollInterval time.Duration
	DefaultLang  string

	// Solo para el backend de desarrollo (cmd/mockapi)
	JWTSecret  string
	ServerPort string
}

func Load() *Config {
	// .env es opcional; en el dispositivo la config llega por entorno
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:    getEnv("TALLER_API_URL", "http://localhost:8080"),
		PlacasBaseURL: getEnv("PLACAS_API_URL", "https://registro.example.cr/api"),
		StoragePath:   getEnv("STORAGE_PATH", "taller_local.db"),
		PollInterval:  time.Duration(getIntEnv("POLL_INTERVAL_SECONDS", 8)) * time.Second,
		DefaultLang:   getEnv("DEFAULT_LANG", "es"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
