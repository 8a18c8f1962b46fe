// Package theory implements the lightweight music-theory engine behind
// the chord and melody endpoints: sharp-spelled scales, a fixed
// I-vi-IV-V progression, and uniformly sampled melodies.
package theory

import (
	"math/rand"
	"strconv"
	"strings"
)

// notesSharp is the chromatic circle used for all spelling. Flat names
// are never produced; D# stands in for Eb and so on.
var notesSharp = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Interval patterns in semitones. The last step closes the octave and is
// never walked, so a scale always holds seven names.
var (
	majorSteps = []int{2, 2, 1, 2, 2, 2, 1}
	minorSteps = []int{2, 1, 2, 2, 1, 2, 2}
)

// progressionDegrees indexes the scale for the progression: I, vi, IV, V.
var progressionDegrees = []int{0, 5, 3, 4}

// melodyDurations is sampled uniformly per note; 1.0 is listed twice so
// quarter notes come up half the time.
var melodyDurations = []float64{0.5, 1.0, 1.0, 2.0}

// melodyOctaves keeps generated pitches in a singable middle range.
var melodyOctaves = []int{4, 5}

const notesPerBar = 4

// Note is a single melody event: a pitch name with octave suffix ("E4")
// and a duration in beats.
type Note struct {
	Note     string  `json:"note"`
	Duration float64 `json:"duration"`
}

// BuildScale returns the seven pitch names of the named key.
//
// Keys look like "C Major" or "F# Minor". Parsing never fails: anything
// that is not exactly "<tonic> <quality>" is treated as a tonic with
// Major quality, an unknown tonic falls back to C, and a quality that
// does not start with "maj" (case-insensitive) selects minor.
func BuildScale(key string) []string {
	tonic, quality := splitKey(key)

	idx := noteIndex(tonic)
	steps := minorSteps
	if strings.HasPrefix(strings.ToLower(quality), "maj") {
		steps = majorSteps
	}

	scale := make([]string, 0, len(steps))
	scale = append(scale, notesSharp[idx])
	for _, step := range steps[:len(steps)-1] {
		idx = (idx + step) % len(notesSharp)
		scale = append(scale, notesSharp[idx])
	}
	return scale
}

// GenerateChords returns the progression for key as chord symbols, e.g.
// ["C", "Am", "F", "G"] for C Major. Degrees 0, 3 and 4 stay plain
// (major), every other degree gets an "m" suffix. The mapping is by
// scale index, not diatonic analysis; clients depend on the exact
// symbols.
func GenerateChords(key string) []string {
	scale := BuildScale(key)
	prog := make([]string, 0, len(progressionDegrees))
	for _, d := range progressionDegrees {
		symbol := scale[d]
		if d != 0 && d != 3 && d != 4 {
			symbol += "m"
		}
		prog = append(prog, symbol)
	}
	return prog
}

// GenerateMelody samples bars*4 notes from the key's scale. Each note
// independently draws a pitch from the scale, a duration from
// melodyDurations and an octave of 4 or 5. All randomness comes from
// rng, so a fixed seed reproduces the melody exactly.
func GenerateMelody(rng *rand.Rand, key string, bars int) []Note {
	scale := BuildScale(key)

	count := bars * notesPerBar
	if count < 0 {
		count = 0
	}

	melody := make([]Note, 0, count)
	for i := 0; i < count; i++ {
		pitch := scale[rng.Intn(len(scale))]
		dur := melodyDurations[rng.Intn(len(melodyDurations))]
		octave := melodyOctaves[rng.Intn(len(melodyOctaves))]
		melody = append(melody, Note{
			Note:     pitch + strconv.Itoa(octave),
			Duration: dur,
		})
	}
	return melody
}

func splitKey(key string) (tonic, quality string) {
	fields := strings.Fields(key)
	if len(fields) == 2 {
		return fields[0], fields[1]
	}
	return key, "Major"
}

func noteIndex(tonic string) int {
	for i, n := range notesSharp {
		if n == tonic {
			return i
		}
	}
	return 0 // unknown tonics resolve to C
}
