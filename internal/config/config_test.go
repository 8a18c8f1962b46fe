package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "BASE_DIR", "MONGODB_URI", "MONGODB_DB", "SENTRY_DSN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "/tmp/ai_music_studio", cfg.BaseDir)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "ai_music_studio", cfg.MongoDB)
	assert.Empty(t, cfg.SentryDSN)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_DIR", "/var/lib/studio")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "studio_test")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/var/lib/studio", cfg.BaseDir)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "studio_test", cfg.MongoDB)
	assert.True(t, cfg.IsProduction())
}
