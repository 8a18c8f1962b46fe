package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
	"github.com/nalin-pixel/ai-music-studio-api/internal/logger"
	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
)

const defaultHistoryLimit = 20

type HistoryHandler struct {
	db *database.Store
}

func NewHistoryHandler(db *database.Store) *HistoryHandler {
	return &HistoryHandler{db: db}
}

// List returns the most recent generations, newest first. History degrades
// to an empty list when the database is unavailable.
// GET /api/history
func (h *HistoryHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", defaultHistoryLimit)

	items, err := h.db.RecentGenerations(c.Request.Context(), int64(limit))
	if err != nil {
		if !errors.Is(err, database.ErrUnavailable) {
			logger.Warn("Failed to load history", logger.Fields{
				"request_id": c.GetString("request_id"),
				"error":      err.Error(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": []models.GenerationRecord{}})
		return
	}
	if items == nil {
		items = []models.GenerationRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
