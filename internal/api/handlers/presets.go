package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
)

type PresetsHandler struct {
	db *database.Store
}

func NewPresetsHandler(db *database.Store) *PresetsHandler {
	return &PresetsHandler{db: db}
}

// Create stores a named settings preset. Unlike the read endpoints this
// one reports database failures, since the caller expects the preset to
// persist.
// POST /api/presets
func (h *PresetsHandler) Create(c *gin.Context) {
	var preset models.Preset
	if err := c.ShouldBindJSON(&preset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset.CreatedAt = time.Now().UTC()
	id, err := h.db.CreatePreset(c.Request.Context(), &preset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// List returns all stored presets, newest first, or an empty list when the
// database is unavailable.
// GET /api/presets
func (h *PresetsHandler) List(c *gin.Context) {
	items, err := h.db.Presets(c.Request.Context())
	if err != nil {
		if !errors.Is(err, database.ErrUnavailable) {
			logger.Warn("Failed to load presets", logger.Fields{
				"request_id": c.GetString("request_id"),
				"error":      err.Error(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": []models.Preset{}})
		return
	}
	if items == nil {
		items = []models.Preset{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
