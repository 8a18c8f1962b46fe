package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
)

const defaultMasteringPreset = "Clean Balanced Master"

type MasterHandler struct {
	store *storage.Store
}

func NewMasterHandler(store *storage.Store) *MasterHandler {
	return &MasterHandler{store: store}
}

type masterForm struct {
	MusicID string `form:"music_id" binding:"required"`
	Preset  string `form:"preset"`
}

// Master simulates mastering an existing track with a preset. The track is
// returned unchanged with the preset echoed in the metadata.
// POST /api/master
func (h *MasterHandler) Master(c *gin.Context) {
	var form masterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.Preset == "" {
		form.Preset = defaultMasteringPreset
	}

	if !h.store.TrackExists(form.MusicID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        form.MusicID,
		"preset":    form.Preset,
		"audio_url": fmt.Sprintf("/static/audio/%s.wav", form.MusicID),
	})
}
