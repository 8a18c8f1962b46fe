package handlers

import (
	"bytes"
	"math/rand"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/services"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
	"github.com/stretchr/testify/require"
)

const testSeed = 1

// setupTestRouter builds a router with every endpoint wired against a
// temporary asset tree and a disabled database, the way the API runs
// without MongoDB.
func setupTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	db := database.NewStore(nil)
	analyzer := services.NewAnalyzer(rand.New(rand.NewSource(testSeed)))

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", Root)
	router.GET("/health", HealthCheck)

	statusHandler := NewStatusHandler(db)
	router.GET("/test", statusHandler.TestDatabase)

	metricsHandler := NewMetricsHandler("test", db)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	theoryHandler := NewTheoryHandler(rand.New(rand.NewSource(testSeed)))

	api := router.Group("/api")
	{
		uploadHandler := NewUploadHandler(store, db, analyzer, nil)
		api.POST("/upload/reference", uploadHandler.Reference)
		api.POST("/upload/voice", uploadHandler.Voice)

		generateHandler := NewGenerateHandler(store, db, nil)
		api.POST("/generate/music", generateHandler.Music)
		api.POST("/generate/video", generateHandler.Video)

		api.GET("/generate/chords", theoryHandler.Chords)
		api.GET("/generate/melody", theoryHandler.Melody)

		exportHandler := NewExportHandler(store, nil)
		api.GET("/export/audio/:file", exportHandler.Audio)
		api.GET("/export/stems/:music_id", exportHandler.Stems)
		api.GET("/export/midi/:music_id", exportHandler.MIDI)

		historyHandler := NewHistoryHandler(db)
		api.GET("/history", historyHandler.List)

		presetsHandler := NewPresetsHandler(db)
		api.POST("/presets", presetsHandler.Create)
		api.GET("/presets", presetsHandler.List)

		remixHandler := NewRemixHandler(store, analyzer, nil)
		api.POST("/remix", remixHandler.Remix)

		masterHandler := NewMasterHandler(store)
		api.POST("/master", masterHandler.Master)
	}

	return router, store
}

// multipartBody builds a multipart form with one file part and optional
// extra fields, returning the body and its content type.
func multipartBody(t *testing.T, field, filename string, content []byte, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if field != "" {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}
