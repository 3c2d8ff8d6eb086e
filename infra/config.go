package infra

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerHost    string
	ServerPort    string
	Environment   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBDatabase    string
	DBSSLMode     string
	DBDriver      string
	AsaasApiUrl   string
	AsaasApiKey   string
	SiteUrl       string
	N8nWebhookUrl string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnv("SERVER_PORT", "82"),
		Environment:   os.Getenv("ENVIRONMENT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBDatabase:    os.Getenv("DB_DATABASE"),
		DBSSLMode:     os.Getenv("DB_SSL_MODE"),
		DBDriver:      os.Getenv("DB_DRIVER"),
		AsaasApiUrl:   getEnv("ASAAS_API_URL", "https://sandbox.asaas.com/api/v3"),
		AsaasApiKey:   os.Getenv("ASAAS_API_KEY"),
		SiteUrl:       getEnv("SITE_URL", "https://medmoney.me"),
		N8nWebhookUrl: os.Getenv("N8N_WEBHOOK_URL"),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
