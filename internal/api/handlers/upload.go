package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
	"github.com/nalin-pixel/ai-music-studio-api/internal/services"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
)

const voiceIDPrefixLen = 8

type UploadHandler struct {
	store      *storage.Store
	db         *database.Store
	analyzer   *services.Analyzer
	cloudwatch *metrics.Client
}

func NewUploadHandler(store *storage.Store, db *database.Store, analyzer *services.Analyzer, cloudwatch *metrics.Client) *UploadHandler {
	return &UploadHandler{
		store:      store,
		db:         db,
		analyzer:   analyzer,
		cloudwatch: cloudwatch,
	}
}

// Reference stores a reference track and returns a simulated analysis.
// POST /api/upload/reference
func (h *UploadHandler) Reference(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := uuid.New().String()
	dest := h.store.UploadPath(storage.PrefixReference, uid, file.Filename, ".mp3")

	if err := c.SaveUploadedFile(file, dest); err != nil {
		logger.Error("Failed to store reference upload", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analysis := h.analyzer.AnalyzeFile(dest)

	// History is best effort: the demo keeps working without a database.
	record := &models.UploadRecord{
		Filename:   file.Filename,
		StoredPath: dest,
		Kind:       "reference",
		Analysis:   &analysis,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.db.SaveUpload(c.Request.Context(), record); err != nil && !errors.Is(err, database.ErrUnavailable) {
		logger.Warn("Failed to save upload record", logger.Fields{
			"request_id": c.GetString("request_id"),
			"filename":   file.Filename,
			"error":      err.Error(),
		})
	}

	h.cloudwatch.RecordUpload("reference", file.Size)

	c.JSON(http.StatusOK, gin.H{
		"id":       uid,
		"analysis": analysis,
	})
}

// Voice stores a voice sample for simulated voice cloning. No record is
// kept; the voice ID is derived from the upload ID.
// POST /api/upload/voice
func (h *UploadHandler) Voice(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := uuid.New().String()
	dest := h.store.UploadPath(storage.PrefixVoice, uid, file.Filename, ".wav")

	if err := c.SaveUploadedFile(file, dest); err != nil {
		logger.Error("Failed to store voice upload", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.cloudwatch.RecordUpload("voice", file.Size)

	c.JSON(http.StatusOK, gin.H{
		"id":       uid,
		"voice_id": "voice_custom_" + uid[:voiceIDPrefixLen],
		"message":  "Voice uploaded (simulated)",
	})
}
