package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Host      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// static asset root, served under /assets
	AssetsDir string

	// swagger docs basic auth
	DocsUser     string
	DocsPassword string

	AutoMigrate bool
}

func LoadConfig() *Config {
	// .env is optional; deployments inject the environment directly
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 168
	}

	return &Config{
		Port:         getEnv("PORT", "3000"),
		Host:         getEnv("HOST", "localhost"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBSource:     getEnv("DB_SOURCE", "foodigo.db"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(ttlHours) * time.Hour,
		AssetsDir:    getEnv("ASSETS_DIR", "assets"),
		DocsUser:     getEnv("DOCS_USER", "admin"),
		DocsPassword: getEnv("DOCS_PASSWORD", "123456"),
		AutoMigrate:  getEnv("AUTO_MIGRATE", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
