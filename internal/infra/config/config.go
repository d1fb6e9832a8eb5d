// internal/infra/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration for the whole service.
type Config struct {
	Port string

	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Product images (object storage)
	ProductImageBucket   string
	PlaceholderImagePath string

	// Optional: latest-updates cache
	RedisAddr     string
	RedisPassword string

	// Optional: order archive
	DatabaseURL string

	// Receipt mail
	SendGridAPIKey     string
	SendGridSecretName string
	MailFrom           string

	AllowedOrigin string
}

// Load reads environment variables into a Config.
// A .env file is loaded first when present (local dev parity; no-op on Cloud Run).
func Load() *Config {
	_ = godotenv.Load()

	defaultProject := getenvDefault("GCP_PROJECT_ID", "hanyang-market")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ProductImageBucket:   os.Getenv("PRODUCT_IMAGE_BUCKET"),
		PlaceholderImagePath: getenvDefault("PLACEHOLDER_IMAGE_PATH", "/default-image.png"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		MailFrom:           getenvDefault("MAIL_FROM", "no-reply@hanyang.market"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
