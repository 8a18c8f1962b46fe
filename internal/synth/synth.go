// Package synth renders the placeholder audio behind simulated
// generation: pure sine tones encoded as stereo 16-bit WAV files.
package synth

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Render defaults, applied wherever Params leaves a field zero.
const (
	DefaultSeconds    = 8.0
	DefaultFreq       = 220.0
	DefaultSampleRate = 44100
	DefaultVolume     = 0.3
)

const (
	numChannels = 2
	bitDepth    = 16
)

// Params describes a tone to render. Zero values fall back to the
// package defaults.
type Params struct {
	Seconds    float64
	Freq       float64
	SampleRate int
	Volume     float64
}

func (p Params) withDefaults() Params {
	if p.Seconds <= 0 {
		p.Seconds = DefaultSeconds
	}
	if p.Freq <= 0 {
		p.Freq = DefaultFreq
	}
	if p.SampleRate <= 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Volume <= 0 {
		p.Volume = DefaultVolume
	}
	return p
}

// FreqForBPM maps a track tempo to the tone frequency used for its
// placeholder audio: 110 Hz at the 40 BPM floor, rising 1.5 Hz per BPM.
// Tracks without a tempo get the default 220 Hz.
func FreqForBPM(bpm int) float64 {
	if bpm <= 0 {
		return DefaultFreq
	}
	return 110.0 + float64(bpm-40)*1.5
}

// WriteWAV renders a sine tone described by p into a WAV file at path.
// Both stereo channels carry the same signal.
func WriteWAV(path string, p Params) error {
	p = p.withDefaults()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}
	defer file.Close()

	frames := int(p.Seconds * float64(p.SampleRate))
	buffer := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: numChannels, SampleRate: p.SampleRate},
		Data:   make([]int, 0, frames*numChannels),
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(p.SampleRate)
		value := int(p.Volume * 32767 * math.Sin(2*math.Pi*p.Freq*t))
		buffer.Data = append(buffer.Data, value, value)
	}

	enc := wav.NewEncoder(file, p.SampleRate, bitDepth, numChannels, 1)
	if err := enc.Write(buffer); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav encoder: %w", err)
	}
	return nil
}
