package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/services"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
	"github.com/nalin-pixel/ai-music-studio-api/internal/synth"
)

const remixSeconds = 8.0

type RemixHandler struct {
	store      *storage.Store
	analyzer   *services.Analyzer
	metrics    *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

func NewRemixHandler(store *storage.Store, analyzer *services.Analyzer, cloudwatch *metrics.Client) *RemixHandler {
	return &RemixHandler{
		store:      store,
		analyzer:   analyzer,
		metrics:    metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
	}
}

type remixForm struct {
	Style string                `form:"style" binding:"required"`
	File  *multipart.FileHeader `form:"file" binding:"required"`
}

// Remix stores the uploaded source track and renders a placeholder remix
// in the requested style.
// POST /api/remix
func (h *RemixHandler) Remix(c *gin.Context) {
	var form remixForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := uuid.New().String()
	dest := h.store.UploadPath(storage.PrefixRemix, uid, form.File.Filename, ".mp3")

	if err := c.SaveUploadedFile(form.File, dest); err != nil {
		logger.Error("Failed to store remix upload", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.cloudwatch.RecordUpload("remix", form.File.Size)

	start := time.Now()
	err := synth.WriteWAV(h.store.TrackPath(uid), synth.Params{
		Seconds: remixSeconds,
		Freq:    h.analyzer.RemixFreq(),
	})
	duration := time.Since(start)

	h.metrics.RecordRenderDuration(c.Request.Context(), "remix", duration, err == nil)
	h.cloudwatch.RecordRenderDuration("remix", duration, err == nil)

	if err != nil {
		logger.Error("Failed to render remix", err, logger.Fields{
			"request_id": c.GetString("request_id"),
			"track_id":   uid,
			"style":      form.Style,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.LogRender("remix", duration, logger.Fields{
		"request_id": c.GetString("request_id"),
		"track_id":   uid,
		"style":      form.Style,
	})

	c.JSON(http.StatusOK, gin.H{
		"id":        uid,
		"style":     form.Style,
		"audio_url": fmt.Sprintf("/static/audio/%s.wav", uid),
	})
}
