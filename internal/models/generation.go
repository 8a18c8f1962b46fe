package models

import "encoding/json"

// InstrumentType identifies one instrument channel in a generation request
type InstrumentType string

const (
	InstrumentDrums   InstrumentType = "drums"
	InstrumentBass    InstrumentType = "bass"
	InstrumentGuitar  InstrumentType = "guitar"
	InstrumentPiano   InstrumentType = "piano"
	InstrumentSynth   InstrumentType = "synth"
	InstrumentStrings InstrumentType = "strings"
	InstrumentBrass   InstrumentType = "brass"
	InstrumentPads    InstrumentType = "pads"
	InstrumentVox     InstrumentType = "vox"
)

// InstrumentSettings carries the per-channel mixer controls the client
// exposes. Ranges: volume 0..1, pan -1..1, EQ bands -12..+12 dB, sends 0..1
type InstrumentSettings struct {
	Type   InstrumentType `json:"type" bson:"type" binding:"required,oneof=drums bass guitar piano synth strings brass pads vox"`
	Name   string         `json:"name,omitempty" bson:"name,omitempty"`
	Volume float64        `json:"volume" bson:"volume" binding:"gte=0,lte=1"`
	Pan    float64        `json:"pan" bson:"pan" binding:"gte=-1,lte=1"`
	EQLow  float64        `json:"eq_low" bson:"eq_low" binding:"gte=-12,lte=12"`
	EQMid  float64        `json:"eq_mid" bson:"eq_mid" binding:"gte=-12,lte=12"`
	EQHigh float64        `json:"eq_high" bson:"eq_high" binding:"gte=-12,lte=12"`
	Reverb float64        `json:"reverb" bson:"reverb" binding:"gte=0,lte=1"`
	Delay  float64        `json:"delay" bson:"delay" binding:"gte=0,lte=1"`

	// Drum-specific
	KickIntensity *float64 `json:"kick_intensity,omitempty" bson:"kick_intensity,omitempty" binding:"omitempty,gte=0,lte=1"`
	SnareType     string   `json:"snare_type,omitempty" bson:"snare_type,omitempty"`
	HihatPattern  string   `json:"hihat_pattern,omitempty" bson:"hihat_pattern,omitempty"`

	// Bass-specific
	BassType   string   `json:"bass_type,omitempty" bson:"bass_type,omitempty" binding:"omitempty,oneof=808 sub plucked"`
	Distortion *float64 `json:"distortion,omitempty" bson:"distortion,omitempty" binding:"omitempty,gte=0,lte=1"`

	// Synth-specific
	SynthType  string   `json:"synth_type,omitempty" bson:"synth_type,omitempty" binding:"omitempty,oneof=pad lead pluck"`
	Modulation *float64 `json:"modulation,omitempty" bson:"modulation,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// UnmarshalJSON decodes over the channel defaults so omitted mixer fields
// keep them
func (s *InstrumentSettings) UnmarshalJSON(data []byte) error {
	type alias InstrumentSettings
	v := alias{Volume: 0.8, Reverb: 0.1}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = InstrumentSettings(v)
	return nil
}

// VoiceSettings configures the simulated vocal channel
type VoiceSettings struct {
	VoiceID    string  `json:"voice_id" bson:"voice_id"`
	Gender     string  `json:"gender,omitempty" bson:"gender,omitempty" binding:"omitempty,oneof=male female neutral"`
	Reverb     float64 `json:"reverb" bson:"reverb" binding:"gte=0,lte=1"`
	Echo       float64 `json:"echo" bson:"echo" binding:"gte=0,lte=1"`
	Autotune   float64 `json:"autotune" bson:"autotune" binding:"gte=0,lte=1"`
	PitchShift float64 `json:"pitch_shift" bson:"pitch_shift" binding:"gte=-12,lte=12"`
}

// UnmarshalJSON decodes over the voice defaults so omitted fields keep them
func (s *VoiceSettings) UnmarshalJSON(data []byte) error {
	type alias VoiceSettings
	v := alias{VoiceID: "ai_voice_female_01", Reverb: 0.1, Autotune: 0.2}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = VoiceSettings(v)
	return nil
}

// LoopOptions toggles which song sections the generator should produce
type LoopOptions struct {
	Intro  bool `json:"intro" bson:"intro"`
	Verse  bool `json:"verse" bson:"verse"`
	Chorus bool `json:"chorus" bson:"chorus"`
	Drop   bool `json:"drop" bson:"drop"`
	Outro  bool `json:"outro" bson:"outro"`
}

// DefaultLoopOptions returns the section toggles used when a request
// omits loop_options: every section on except the drop
func DefaultLoopOptions() LoopOptions {
	return LoopOptions{Intro: true, Verse: true, Chorus: true, Outro: true}
}

// GenerationRequest wraps the user's generation parameters
type GenerationRequest struct {
	Prompt            string               `json:"prompt" bson:"prompt" binding:"required"`
	Lyrics            string               `json:"lyrics,omitempty" bson:"lyrics,omitempty"`
	Style             string               `json:"style" bson:"style"`
	BPM               int                  `json:"bpm" bson:"bpm" binding:"omitempty,gte=40,lte=200"`
	Key               string               `json:"key" bson:"key"`
	Mood              string               `json:"mood" bson:"mood"`
	Instruments       []InstrumentSettings `json:"instruments" bson:"instruments" binding:"dive"`
	Voice             *VoiceSettings       `json:"voice,omitempty" bson:"voice,omitempty"`
	MasteringPreset   string               `json:"mastering_preset" bson:"mastering_preset"`
	LoopOptions       LoopOptions          `json:"loop_options" bson:"loop_options"`
	ReferenceUploadID string               `json:"reference_upload_id,omitempty" bson:"reference_upload_id,omitempty"`
}

// UnmarshalJSON decodes over the request defaults: omitted fields keep
// the product's standard LoFi/90bpm profile and the default loop sections
func (r *GenerationRequest) UnmarshalJSON(data []byte) error {
	type alias GenerationRequest
	v := alias{
		Style:           "LoFi",
		BPM:             90,
		Key:             "C Minor",
		Mood:            "Chill",
		MasteringPreset: "Clean Balanced Master",
		LoopOptions:     DefaultLoopOptions(),
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = GenerationRequest(v)
	return nil
}

// GenerationResponse is the payload returned by the generate endpoints
type GenerationResponse struct {
	ID          string  `json:"id"`
	AudioURL    string  `json:"audio_url"`
	AudioFormat string  `json:"audio_format"`
	WaveformURL *string `json:"waveform_url"`
	VideoURL    *string `json:"video_url"`
}
