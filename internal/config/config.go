package config

import "os"

// Config holds the application configuration
// Note: the studio keeps no user state - everything it produces lives in
// the asset tree on local disk plus optional MongoDB records, and no
// endpoint requires auth
type Config struct {
	// Environment
	Environment string
	Port        string

	// Asset storage root (static/audio, static/midi, uploads, ...)
	BaseDir string

	// MongoDB connection. An empty URI disables persistence: history and
	// preset listings come back empty and record writes are skipped.
	MongoURI string
	MongoDB  string

	// Observability
	SentryDSN string // Sentry DSN for error tracking
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseDir:     getEnv("BASE_DIR", "/tmp/ai_music_studio"),
		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDB:     getEnv("MONGODB_DB", "ai_music_studio"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction reports whether the service runs with production settings
// (release gin mode, CloudWatch metrics enabled)
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
