package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Analysis is the simulated audio profile attached to reference uploads.
// BPM, key and style are always present; the remaining fields are filled
// only when content inspection of the upload succeeds
type Analysis struct {
	BPM       int    `json:"bpm" bson:"bpm"`
	Key       string `json:"key" bson:"key"`
	Style     string `json:"style" bson:"style"`
	MediaType string `json:"media_type,omitempty" bson:"media_type,omitempty"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Artist    string `json:"artist,omitempty" bson:"artist,omitempty"`
}

// GenerationRecord is one entry of generation history, stored in the
// "generationrecord" collection
type GenerationRecord struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Prompt      string             `json:"prompt" bson:"prompt"`
	Settings    GenerationRequest  `json:"settings" bson:"settings"`
	AudioPath   string             `json:"audio_path" bson:"audio_path"`
	AudioFormat string             `json:"audio_format" bson:"audio_format"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// Preset is a saved mixer/generation configuration, stored in the
// "preset" collection
type Preset struct {
	ID        primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string                 `json:"title" bson:"title" binding:"required"`
	Settings  map[string]interface{} `json:"settings" bson:"settings" binding:"required"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}

// UploadRecord tracks a stored reference upload, stored in the
// "uploadrecord" collection
type UploadRecord struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Filename   string             `json:"filename" bson:"filename"`
	StoredPath string             `json:"stored_path" bson:"stored_path"`
	Kind       string             `json:"type" bson:"type"`
	Analysis   *Analysis          `json:"analysis,omitempty" bson:"analysis,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}
