package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string
	GoalFile    string
	CORSOrigins []string
	Eventbrite  EventbriteConfig
	Snapshot    SnapshotConfig
	S3          S3Config
	Logging     LoggingConfig
}

type EventbriteConfig struct {
	APIKey     string
	OAuthToken string
	OrgID      string
	EventID    string
	BaseURL    string
}

type SnapshotConfig struct {
	File string
}

type S3Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func Load() (*Config, error) {
	// Local development keeps credentials in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getenv("APP_ENV", "dev"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GoalFile:    getenv("GOAL_FILE", "goal.txt"),
		CORSOrigins: parseOrigins(getenv("BACKEND_CORS_ORIGINS", "http://localhost:5173")),
		Eventbrite: EventbriteConfig{
			APIKey:     os.Getenv("EVENTBRITE_API_KEY"),
			OAuthToken: os.Getenv("EVENTBRITE_OAUTH_TOKEN"),
			OrgID:      os.Getenv("EVENTBRITE_ORG_ID"),
			EventID:    getenv("EVENTBRITE_EVENT_ID", "1367969235809"),
			BaseURL:    getenv("EVENTBRITE_BASE_URL", ""),
		},
		Snapshot: SnapshotConfig{
			File: getenv("SNAPSHOT_FILE", "eventbrite_response.json"),
		},
		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Region:    getenv("S3_REGION", "us-east-1"),
			UseSSL:    getenvBool("S3_USE_SSL", true),
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

// parseOrigins splits a comma-separated origin list, tolerating the
// bracketed/quoted form some deployments export, e.g. ["https://a","https://b"].
func parseOrigins(val string) []string {
	var origins []string
	for _, part := range strings.Split(val, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'[]`)
		if part == "" {
			continue
		}
		origins = append(origins, part)
	}
	return origins
}
