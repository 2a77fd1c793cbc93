package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	API_URI        string
	ADDR           string
	SESSION_SECRET string
	SESSION_DB     string
	KAFKA_ADDRESS  string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		API_URI:        os.Getenv("API_URI"),
		ADDR:           os.Getenv("ADDR"),
		SESSION_SECRET: os.Getenv("SESSION_SECRET"),
		SESSION_DB:     os.Getenv("SESSION_DB"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
	}

	if config.ADDR == "" {
		config.ADDR = ":8080"
	}
	if config.SESSION_DB == "" {
		config.SESSION_DB = "sessions.db"
	}

	return config, nil
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
