package api

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/api/handlers"
	apimiddleware "github.com/nalin-pixel/ai-music-studio-api/internal/api/middleware"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/services"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
)

func SetupRouter(store *storage.Store, db *database.Store, cloudwatch *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Generated assets (audio, video, midi)
	router.Static("/static", store.StaticDir())

	// Basic endpoints
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)

	statusHandler := handlers.NewStatusHandler(db)
	router.GET("/test", statusHandler.TestDatabase)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, db)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Simulated analysis and melodies share one seeded random source each
	analyzer := services.NewAnalyzer(rand.New(rand.NewSource(time.Now().UnixNano())))
	theoryHandler := handlers.NewTheoryHandler(rand.New(rand.NewSource(time.Now().UnixNano())))

	api := router.Group("/api")
	{
		// Uploads
		uploadHandler := handlers.NewUploadHandler(store, db, analyzer, cloudwatch)
		api.POST("/upload/reference", uploadHandler.Reference)
		api.POST("/upload/voice", uploadHandler.Voice)

		// Music and video generation (simulated)
		generateHandler := handlers.NewGenerateHandler(store, db, cloudwatch)
		api.POST("/generate/music", generateHandler.Music)
		api.POST("/generate/video", generateHandler.Video)

		// Theory helpers
		api.GET("/generate/chords", theoryHandler.Chords)
		api.GET("/generate/melody", theoryHandler.Melody)

		// Exports
		exportHandler := handlers.NewExportHandler(store, cloudwatch)
		api.GET("/export/audio/:file", exportHandler.Audio)
		api.GET("/export/stems/:music_id", exportHandler.Stems)
		api.GET("/export/midi/:music_id", exportHandler.MIDI)

		// History and presets
		historyHandler := handlers.NewHistoryHandler(db)
		api.GET("/history", historyHandler.List)

		presetsHandler := handlers.NewPresetsHandler(db)
		api.POST("/presets", presetsHandler.Create)
		api.GET("/presets", presetsHandler.List)

		// Remix and mastering (simulated)
		remixHandler := handlers.NewRemixHandler(store, analyzer, cloudwatch)
		api.POST("/remix", remixHandler.Remix)

		masterHandler := handlers.NewMasterHandler(store)
		api.POST("/master", masterHandler.Master)
	}

	return router
}
