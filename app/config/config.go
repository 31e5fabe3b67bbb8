package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sskrishnan03/krishnan-study-planner/app/store"
)

// Config is the process-wide configuration and the opened store.
type Config struct {
	Store        *store.Store
	GeminiAPIKey string
	Port         string
}

var AppConfig *Config

// LoadEnv pulls a .env file into the environment when one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Init opens the durable storage backend selected by STORAGE_BACKEND
// (file, postgres or redis; file by default) and fills AppConfig. A
// backend that cannot be opened is fatal.
func Init() {
	backendName := getEnv("STORAGE_BACKEND", "file")

	var backend store.Backend
	var err error
	switch backendName {
	case "file":
		backend, err = store.NewFileBackend(getEnv("DATA_DIR", "./data"))
	case "postgres":
		backend, err = store.NewPostgresBackend(getEnv("DATABASE_URL",
			"host=localhost port=5432 user=postgres dbname=studyplanner sslmode=disable"))
	case "redis":
		redisDB, convErr := strconv.Atoi(getEnv("REDIS_DB", "0"))
		if convErr != nil {
			log.Fatalf("Invalid REDIS_DB value: %v", convErr)
		}
		backend, err = store.NewRedisBackend(getEnv("REDIS_ADDR", "127.0.0.1:6379"), redisDB)
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (expected file, postgres or redis)", backendName)
	}
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", backendName, err)
	}
	log.Printf("Using %s storage backend", backendName)

	AppConfig = &Config{
		Store:        store.New(backend),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         getEnv("PORT", "8080"),
	}
}

// GetStore returns the opened store.
func GetStore() *store.Store {
	return AppConfig.Store
}
