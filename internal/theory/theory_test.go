package theory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScale(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{
			name: "C major",
			key:  "C Major",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
		{
			name: "A natural minor",
			key:  "A Minor",
			want: []string{"A", "B", "C", "D", "E", "F", "G"},
		},
		{
			name: "G minor spelled with sharps",
			key:  "G Minor",
			want: []string{"G", "A", "A#", "C", "D", "D#", "F"},
		},
		{
			name: "F sharp minor",
			key:  "F# Minor",
			want: []string{"F#", "G#", "A", "B", "C#", "D", "E"},
		},
		{
			name: "D major",
			key:  "D Major",
			want: []string{"D", "E", "F#", "G", "A", "B", "C#"},
		},
		{
			name: "unknown tonic falls back to C",
			key:  "Z Major",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
		{
			name: "bare tonic defaults to major",
			key:  "G",
			want: []string{"G", "A", "B", "C", "D", "E", "F#"},
		},
		{
			name: "three tokens collapse to C major",
			key:  "C harmonic minor",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
		{
			name: "quality match is case-insensitive",
			key:  "C MAJOR",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
		{
			name: "non-major quality selects minor steps",
			key:  "C Dorian",
			want: []string{"C", "D", "D#", "F", "G", "G#", "A#"},
		},
		{
			name: "empty key is C major",
			key:  "",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
		{
			name: "lowercase tonic is not recognized",
			key:  "c Major",
			want: []string{"C", "D", "E", "F", "G", "A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildScale(tt.key)
			require.Len(t, got, 7)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateChords(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{
			name: "C major progression",
			key:  "C Major",
			want: []string{"C", "Am", "F", "G"},
		},
		{
			name: "A minor keeps fixed degree qualities",
			key:  "A Minor",
			want: []string{"A", "Fm", "D", "E"},
		},
		{
			name: "G minor",
			key:  "G Minor",
			want: []string{"G", "D#m", "C", "D"},
		},
		{
			name: "D major",
			key:  "D Major",
			want: []string{"D", "Bm", "G", "A"},
		},
		{
			name: "invalid tonic behaves like C major",
			key:  "Z Major",
			want: []string{"C", "Am", "F", "G"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateChords(tt.key))
		})
	}
}

func TestGenerateMelodyLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Len(t, GenerateMelody(rng, "C Major", 1), 4)
	assert.Len(t, GenerateMelody(rng, "C Major", 2), 8)
	assert.Len(t, GenerateMelody(rng, "C Major", 8), 32)
	assert.Empty(t, GenerateMelody(rng, "C Major", 0))
	assert.Empty(t, GenerateMelody(rng, "C Major", -3))
}

func TestGenerateMelodyDomains(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	scale := BuildScale("F# Minor")

	melody := GenerateMelody(rng, "F# Minor", 16)
	require.Len(t, melody, 64)

	for _, n := range melody {
		require.GreaterOrEqual(t, len(n.Note), 2)
		pitch := n.Note[:len(n.Note)-1]
		octave := n.Note[len(n.Note)-1:]

		assert.Contains(t, scale, pitch, "pitch %q outside scale", n.Note)
		assert.Contains(t, []string{"4", "5"}, octave)
		assert.Contains(t, []float64{0.5, 1.0, 2.0}, n.Duration)
	}
}

func TestGenerateMelodyDeterministic(t *testing.T) {
	first := GenerateMelody(rand.New(rand.NewSource(42)), "A Minor", 4)
	second := GenerateMelody(rand.New(rand.NewSource(42)), "A Minor", 4)
	require.Equal(t, first, second)

	other := GenerateMelody(rand.New(rand.NewSource(43)), "A Minor", 4)
	assert.NotEqual(t, first, other)
}
