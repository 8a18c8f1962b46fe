package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
	"github.com/nalin-pixel/ai-music-studio-api/internal/synth"
)

const trackSeconds = 10.0

type GenerateHandler struct {
	store      *storage.Store
	db         *database.Store
	metrics    *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

func NewGenerateHandler(store *storage.Store, db *database.Store, cloudwatch *metrics.Client) *GenerateHandler {
	return &GenerateHandler{
		store:      store,
		db:         db,
		metrics:    metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
	}
}

// Music renders a placeholder track for the request and records it in the
// generation history.
// POST /api/generate/music
func (h *GenerateHandler) Music(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := uuid.New().String()
	audioPath := h.store.TrackPath(uid)

	start := time.Now()
	err := synth.WriteWAV(audioPath, synth.Params{
		Seconds: trackSeconds,
		Freq:    synth.FreqForBPM(req.BPM),
	})
	duration := time.Since(start)

	h.metrics.RecordRenderDuration(c.Request.Context(), "track", duration, err == nil)
	h.cloudwatch.RecordRenderDuration("track", duration, err == nil)

	if err != nil {
		logger.Error("Failed to render track", err, logger.Fields{
			"request_id": c.GetString("request_id"),
			"track_id":   uid,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.LogRender("track", duration, logger.Fields{
		"request_id": c.GetString("request_id"),
		"track_id":   uid,
		"bpm":        req.BPM,
		"style":      req.Style,
	})

	// History is best effort: the demo keeps working without a database.
	record := &models.GenerationRecord{
		Prompt:      req.Prompt,
		Settings:    req,
		AudioPath:   audioPath,
		AudioFormat: "wav",
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.db.SaveGeneration(c.Request.Context(), record); err != nil && !errors.Is(err, database.ErrUnavailable) {
		logger.Warn("Failed to save generation record", logger.Fields{
			"request_id": c.GetString("request_id"),
			"track_id":   uid,
			"error":      err.Error(),
		})
	}

	c.JSON(http.StatusOK, models.GenerationResponse{
		ID:          uid,
		AudioURL:    fmt.Sprintf("/static/audio/%s.wav", uid),
		AudioFormat: "wav",
	})
}

type videoForm struct {
	Prompt  string `form:"prompt" binding:"required"`
	MusicID string `form:"music_id"`
}

// Video simulates video generation. No file is written; the frontend
// renders its own visual for simulated videos.
// POST /api/generate/video
func (h *GenerateHandler) Video(c *gin.Context) {
	var form videoForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := form.MusicID
	if uid == "" {
		uid = uuid.New().String()
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        uid,
		"video_url": fmt.Sprintf("/static/video/%s.mp4", uid),
		"status":    "simulated",
	})
}
