// Package services implements the simulated audio analysis behind the
// upload and remix endpoints.
package services

import (
	"math/rand"
	"os"
	"sync"

	"github.com/dhowden/tag"
	"github.com/h2non/filetype"

	"github.com/nalin-pixel/ai-music-studio-api/internal/models"
)

// Profile sampling domains. The analysis is simulated; these are the
// plausible-looking values the demo hands back.
var (
	analysisKeys   = []string{"C Major", "A Minor", "G Minor", "D Major", "F# Minor"}
	analysisStyles = []string{"LoFi", "Trap", "EDM", "Rock", "Bollywood", "Chillhop", "Romantic"}
	remixFreqs     = []float64{200, 240, 300}
)

const (
	analysisBPMMin = 70
	analysisBPMMax = 140
)

// sniffLen covers every magic number filetype knows about.
const sniffLen = 262

// Analyzer produces simulated analysis profiles and randomized remix
// parameters. All randomness goes through one injected source so tests
// can seed it; a mutex guards it because handlers run concurrently.
type Analyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyzer wraps rng for concurrent use by the upload handlers.
func NewAnalyzer(rng *rand.Rand) *Analyzer {
	return &Analyzer{rng: rng}
}

// Profile invents a bpm/key/style reading for a reference upload.
func (a *Analyzer) Profile() models.Analysis {
	a.mu.Lock()
	defer a.mu.Unlock()

	return models.Analysis{
		BPM:   analysisBPMMin + a.rng.Intn(analysisBPMMax-analysisBPMMin+1),
		Key:   analysisKeys[a.rng.Intn(len(analysisKeys))],
		Style: analysisStyles[a.rng.Intn(len(analysisStyles))],
	}
}

// RemixFreq picks the tone frequency for a remix render.
func (a *Analyzer) RemixFreq() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return remixFreqs[a.rng.Intn(len(remixFreqs))]
}

// AnalyzeFile combines the simulated profile with whatever content
// inspection can actually read from the stored upload: the sniffed media
// type and any embedded title/artist tags. Inspection is best-effort and
// never fails the upload.
func (a *Analyzer) AnalyzeFile(path string) models.Analysis {
	analysis := a.Profile()

	f, err := os.Open(path)
	if err != nil {
		return analysis
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, _ := f.Read(head)
	if n == 0 {
		return analysis
	}
	if kind, err := filetype.Match(head[:n]); err == nil && kind != filetype.Unknown {
		analysis.MediaType = kind.MIME.Value
	}

	if _, err := f.Seek(0, 0); err != nil {
		return analysis
	}
	if meta, err := tag.ReadFrom(f); err == nil {
		analysis.Title = meta.Title()
		analysis.Artist = meta.Artist()
	}
	return analysis
}
