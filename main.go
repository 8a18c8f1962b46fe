package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nalin-pixel/ai-music-studio-api/internal/api"
	"github.com/nalin-pixel/ai-music-studio-api/internal/config"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	connectTimeout        = 10 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "ai-music-studio-api@" + releaseVersion,  // Use embedded release version
			EnableTracing:    true,                                     // Enable tracing for spans
			TracesSampleRate: 1.0,                                      // 100% sampling for now, adjust based on volume
			EnableLogs:       true,                                     // Enable Sentry Logs feature
			Debug:            cfg.Environment != environmentProduction, // Enable debug in non-prod
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Initialize asset storage
	store, err := storage.New(cfg.BaseDir)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to create storage directories:", err)
	}

	// Initialize database. The store is optional: without a MongoDB URI, or
	// when the connection fails, the API runs without history.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		sentry.CaptureException(err)
		log.Printf("⚠️  Database unavailable, continuing without history: %v", err)
		db = database.NewStore(nil)
	} else if db.Enabled() {
		log.Printf("✅ Connected to MongoDB (database: %s)", cfg.MongoDB)
	} else {
		log.Println("⚠️  MongoDB not configured (MONGODB_URI not set), history disabled")
	}

	// Initialize CloudWatch metrics (enabled in production only)
	cloudwatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		log.Printf("Failed to initialize CloudWatch metrics: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(store, db, cloudwatch, GetVersion())

	// Start server
	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
