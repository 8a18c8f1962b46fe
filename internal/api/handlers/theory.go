package handlers

import (
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/ai-music-studio-api/internal/theory"
)

const (
	defaultKey  = "C Major"
	defaultBars = 2
	defaultBPM  = 90
)

// TheoryHandler serves the music theory helper endpoints. The random
// source is shared across requests, so access is serialized.
type TheoryHandler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTheoryHandler(rng *rand.Rand) *TheoryHandler {
	return &TheoryHandler{rng: rng}
}

// Chords returns a I-vi-IV-V progression for the requested key. The key is
// echoed back as given, even when it falls back internally.
// GET /api/generate/chords
func (h *TheoryHandler) Chords(c *gin.Context) {
	key := c.DefaultQuery("key", defaultKey)

	c.JSON(http.StatusOK, gin.H{
		"key":         key,
		"progression": theory.GenerateChords(key),
	})
}

// Melody returns a random diatonic melody. Malformed numeric parameters
// fall back to their defaults instead of failing the request.
// GET /api/generate/melody
func (h *TheoryHandler) Melody(c *gin.Context) {
	key := c.DefaultQuery("key", defaultKey)
	bars := intQuery(c, "bars", defaultBars)
	bpm := intQuery(c, "bpm", defaultBPM)

	h.mu.Lock()
	melody := theory.GenerateMelody(h.rng, key, bars)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"key":    key,
		"bpm":    bpm,
		"melody": melody,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
