package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/database"
)

// Root returns the API identity used by the demo frontend
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "AI Music Studio API",
		"status": "ok",
	})
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

type StatusHandler struct {
	db *database.Store
}

func NewStatusHandler(db *database.Store) *StatusHandler {
	return &StatusHandler{db: db}
}

// TestDatabase reports backend and database connectivity. The database is
// optional at runtime, so a missing or failing connection never turns into
// an error status code.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	info := gin.H{
		"backend":     "✅ Running",
		"database":    "❌ Not Available",
		"collections": []string{},
	}

	if h.db.Enabled() {
		names, err := h.db.CollectionNames(c.Request.Context())
		if err != nil {
			info["database"] = fmt.Sprintf("⚠️ %s", err.Error())
		} else {
			info["database"] = "✅ Connected"
			info["collections"] = names
		}
	}

	c.JSON(http.StatusOK, info)
}
