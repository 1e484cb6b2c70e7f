package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
type Config struct {
	Port      string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	SpreadsheetID     string
	CustomerSheet     string
	EmailSheet        string
	DriveRootFolderID string
	// Service-account key JSON, shared by the Sheets and Drive clients.
	GoogleCredentials string
}

// Load reads configs/.env when present, then the process environment, with
// development defaults for everything but the Google credentials.
func Load() Config {
	_ = godotenv.Load("configs/.env")

	return Config{
		Port:      getenv("PORT", "8080"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASSWORD", "postgres"),
		DBName:    getenv("DB_NAME", "postgres"),
		DBSSLMode: getenv("DB_SSLMODE", "disable"),

		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		CustomerSheet:     getenv("CUSTOMER_SHEET", "CUSTOMER DATA"),
		EmailSheet:        getenv("EMAIL_SHEET", "FORAPPROVALEMAIL"),
		DriveRootFolderID: os.Getenv("DRIVE_ROOT_FOLDER_ID"),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
	}
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
