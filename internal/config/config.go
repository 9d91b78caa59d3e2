package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSheetExportURL is the CSV export of the group attendance sheet.
const DefaultSheetExportURL = "https://docs.google.com/spreadsheets/d/1OmPRt9XXVSnn7lcruKcThq6pVnzO_muoRmePd_W1Ojk/export?format=csv"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	StoreBackend string
	DatabaseFile string
	BoltPath     string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string

	SessionSecret string
	SessionTTL    time.Duration
	// ResolveRequiresStaff restricts resolving absences to admins and
	// teachers. Off by default: resolution has always been open.
	ResolveRequiresStaff bool

	SheetExportURL string
	SwaggerHost    string
}

// Load reads an optional .env file and builds Config from the environment
// with sensible defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env ignored: %v", err)
	}

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "3000"),
		StoreBackend:         getEnv("STORE_BACKEND", "file"),
		DatabaseFile:         getEnv("DATABASE_FILE", "database.json"),
		BoltPath:             getEnv("BOLT_PATH", "data/ukd.db"),
		MySQLDSN:             getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/ukd?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		SessionSecret:        getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:           time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		ResolveRequiresStaff: getEnvBool("RESOLVE_REQUIRES_STAFF", false),
		SheetExportURL:       getEnv("SHEET_EXPORT_URL", DefaultSheetExportURL),
		SwaggerHost:          os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
