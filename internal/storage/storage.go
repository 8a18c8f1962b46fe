// Package storage manages the on-disk asset tree for generated and
// uploaded media. Everything lives under one base directory:
//
//	<base>/static/audio   generated tracks, stems and mastered output
//	<base>/static/video   reserved for video exports (simulated, never written)
//	<base>/static/midi    pseudo-MIDI text exports
//	<base>/uploads        reference, voice and remix uploads
//
// The static subtree is served by the router under /static.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Upload name prefixes, one per upload flow.
const (
	PrefixReference = "ref_"
	PrefixVoice     = "voice_"
	PrefixRemix     = "remix_"
)

// midiDemoBody is the placeholder exported for every MIDI request.
const midiDemoBody = "MIDI DEMO\nC4:1 D4:1 E4:2 G4:2 C5:4\n"

// Store resolves asset paths under a single base directory.
type Store struct {
	base string
}

// New creates the asset directory tree under base and returns a Store
// rooted there.
func New(base string) (*Store, error) {
	s := &Store{base: base}
	for _, dir := range []string{s.AudioDir(), s.VideoDir(), s.MIDIDir(), s.UploadDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create asset dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// StaticDir is the subtree exposed over HTTP.
func (s *Store) StaticDir() string { return filepath.Join(s.base, "static") }

func (s *Store) AudioDir() string  { return filepath.Join(s.base, "static", "audio") }
func (s *Store) VideoDir() string  { return filepath.Join(s.base, "static", "video") }
func (s *Store) MIDIDir() string   { return filepath.Join(s.base, "static", "midi") }
func (s *Store) UploadDir() string { return filepath.Join(s.base, "uploads") }

// TrackPath is the canonical WAV location for a generated track id.
func (s *Store) TrackPath(id string) string {
	return filepath.Join(s.AudioDir(), id+".wav")
}

// TrackExists reports whether a generated track's WAV is on disk.
func (s *Store) TrackExists(id string) bool {
	_, err := os.Stat(s.TrackPath(id))
	return err == nil
}

// StemPath is the WAV location for one stem of a track.
func (s *Store) StemPath(id, stem string) string {
	return filepath.Join(s.AudioDir(), fmt.Sprintf("%s_%s.wav", id, stem))
}

// StemExists reports whether a stem WAV is already rendered.
func (s *Store) StemExists(id, stem string) bool {
	_, err := os.Stat(s.StemPath(id, stem))
	return err == nil
}

// UploadPath builds the destination for an uploaded file. The original
// extension is kept when present, fallbackExt otherwise.
func (s *Store) UploadPath(prefix, id, filename, fallbackExt string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = fallbackExt
	}
	return filepath.Join(s.UploadDir(), prefix+id+ext)
}

// MIDIPath is the pseudo-MIDI text location for a track id.
func (s *Store) MIDIPath(id string) string {
	return filepath.Join(s.MIDIDir(), id+".mid.txt")
}

// EnsureMIDIText writes the demo MIDI text for id unless it already
// exists, and returns its path.
func (s *Store) EnsureMIDIText(id string) (string, error) {
	path := s.MIDIPath(id)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, []byte(midiDemoBody), 0o644); err != nil {
		return "", fmt.Errorf("write midi export: %w", err)
	}
	return path, nil
}
