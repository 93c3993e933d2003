// internal/infra/config/config.go
package config

import "os"

// Config holds the process-wide environment configuration.
type Config struct {
	Port                     string
	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Identity Toolkit (password sign-in). When the env var is empty the DI
	// layer tries Secret Manager with FirebaseWebAPIKeySecret.
	FirebaseWebAPIKey       string
	FirebaseWebAPIKeySecret string
	IdentityToolkitBaseURL  string

	// Menu images uploaded by the seeder.
	GCSBucket string

	// Optional PostgreSQL catalog mirror. Empty = serve the menu from Firestore.
	MenuPGDSN string

	// Welcome email. Empty api key disables mail entirely.
	SendGridAPIKey string
	MailFrom       string

	AllowedOrigin string
}

// Load reads environment variables and returns the Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "forkful-development")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		FirebaseWebAPIKey:       os.Getenv("FIREBASE_WEB_API_KEY"),
		FirebaseWebAPIKeySecret: getenvDefault("FIREBASE_WEB_API_KEY_SECRET", "firebase-web-api-key"),
		IdentityToolkitBaseURL:  os.Getenv("IDENTITY_TOOLKIT_BASE_URL"),

		GCSBucket: os.Getenv("GCS_BUCKET"),
		MenuPGDSN: os.Getenv("MENU_PG_DSN"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       os.Getenv("MAIL_FROM"),

		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
