package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"todolist/internal/core/domain"
)

const (
	StorageMemory   = "memory"
	StorageMySQL    = "mysql"
	StoragePostgres = "postgres"
)

type Config struct {
	AppPort            string
	StorageDriver      string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	PostgresDSN        string
	RedisAddr          string
	RedisEventsChannel string
	TranslationFolder  string
	TrustedProxies     []string
	Limits             domain.Limits
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "todolist"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "todolist"),
		DbName:             getEnv("MYSQL_DATABASE", "todolist"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		PostgresDSN:        getEnv("POSTGRES_DSN", "postgres://todolist:todolist@db:5432/todolist?sslmode=disable"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisEventsChannel: getEnv("REDIS_EVENTS_CHANNEL", "todo-events"),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:     parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		Limits: domain.Limits{
			MaxTitleLength:       getPositiveInt("TODO_MAX_TITLE_LENGTH", domain.DefaultMaxTitleLength),
			MaxDescriptionLength: getPositiveInt("TODO_MAX_DESCRIPTION_LENGTH", domain.DefaultMaxDescriptionLength),
			MaxTodosPerOwner:     getPositiveInt("TODO_MAX_PER_OWNER", domain.DefaultMaxTodosPerOwner),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getPositiveInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
