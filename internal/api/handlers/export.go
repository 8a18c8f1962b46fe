package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/metrics"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
	"github.com/nalin-pixel/ai-music-studio-api/internal/synth"
)

const (
	stemSeconds = 6.0
	stemVolume  = 0.25
)

// stemFrequencies maps each stem name to the tone used for its
// placeholder render.
var stemFrequencies = map[string]float64{
	"vocals": 440.0,
	"drums":  120.0,
	"bass":   55.0,
	"piano":  261.6,
	"synth":  329.6,
}

type ExportHandler struct {
	store      *storage.Store
	metrics    *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

func NewExportHandler(store *storage.Store, cloudwatch *metrics.Client) *ExportHandler {
	return &ExportHandler{
		store:      store,
		metrics:    metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
	}
}

// Audio serves a rendered track as a download. The route captures a single
// "<music_id>.<ext>" segment; the WAV render is returned regardless of the
// requested extension.
// GET /api/export/audio/:file
func (h *ExportHandler) Audio(c *gin.Context) {
	file := c.Param("file")

	dot := strings.LastIndex(file, ".")
	if dot <= 0 || dot == len(file)-1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not found"})
		return
	}
	musicID, ext := file[:dot], file[dot+1:]

	if !h.store.TrackExists(musicID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not found"})
		return
	}

	c.Header("Content-Type", "audio/wav")
	c.FileAttachment(h.store.TrackPath(musicID), fmt.Sprintf("track_%s.%s", musicID, ext))
}

// Stems renders any missing stem tracks and returns their URLs.
// GET /api/export/stems/:music_id
func (h *ExportHandler) Stems(c *gin.Context) {
	musicID := c.Param("music_id")

	urls := make(map[string]string, len(stemFrequencies))
	for name, freq := range stemFrequencies {
		if !h.store.StemExists(musicID, name) {
			start := time.Now()
			err := synth.WriteWAV(h.store.StemPath(musicID, name), synth.Params{
				Seconds: stemSeconds,
				Freq:    freq,
				Volume:  stemVolume,
			})
			duration := time.Since(start)

			h.metrics.RecordRenderDuration(c.Request.Context(), "stem", duration, err == nil)
			h.cloudwatch.RecordRenderDuration("stem", duration, err == nil)

			if err != nil {
				logger.Error("Failed to render stem", err, logger.Fields{
					"request_id": c.GetString("request_id"),
					"track_id":   musicID,
					"stem":       name,
				})
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		urls[name] = fmt.Sprintf("/static/audio/%s_%s.wav", musicID, name)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    musicID,
		"stems": urls,
	})
}

// MIDI writes the demo MIDI sketch if it does not exist yet and returns
// its URL.
// GET /api/export/midi/:music_id
func (h *ExportHandler) MIDI(c *gin.Context) {
	musicID := c.Param("music_id")

	if _, err := h.store.EnsureMIDIText(musicID); err != nil {
		logger.Error("Failed to write MIDI sketch", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       musicID,
		"midi_url": fmt.Sprintf("/static/midi/%s.mid.txt", musicID),
	})
}
