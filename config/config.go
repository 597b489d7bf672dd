package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// BackendType selects how sound is produced
type BackendType string

const (
	BackendSynth BackendType = "synth"
	BackendMIDI  BackendType = "midi"
)

// MixerConfig stores per-track settings
type MixerConfig struct {
	GuitarVolume float64 `json:"guitarVolume"`
	BassVolume   float64 `json:"bassVolume"`
	DrumVolume   float64 `json:"drumVolume"`
	BassEnabled  bool    `json:"bassEnabled"`
	DrumsEnabled bool    `json:"drumsEnabled"`
}

// Config is the main configuration structure
type Config struct {
	Backend     BackendType `json:"backend"`
	MIDIPort    string      `json:"midiPort,omitempty"`
	Tempo       float64     `json:"tempo,omitempty"`
	Swing       float64     `json:"swing"`
	StrumMs     int         `json:"strumMs,omitempty"`
	Rhythm      string      `json:"rhythm,omitempty"`
	DrumPattern string      `json:"drumPattern,omitempty"`
	BassPattern string      `json:"bassPattern,omitempty"`
	Mixer       MixerConfig `json:"mixer"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend:     BackendSynth,
		Tempo:       92,
		Swing:       0,
		StrumMs:     15,
		Rhythm:      "folk",
		DrumPattern: "rock",
		BassPattern: "root-fifth",
		Mixer: MixerConfig{
			GuitarVolume: 1.0,
			BassVolume:   0.9,
			DrumVolume:   0.8,
			BassEnabled:  true,
			DrumsEnabled: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "strummer"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fillDefaults patches zero values left by older config files
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.Tempo == 0 {
		c.Tempo = def.Tempo
	}
	if c.StrumMs == 0 {
		c.StrumMs = def.StrumMs
	}
	if c.Rhythm == "" {
		c.Rhythm = def.Rhythm
	}
	if c.DrumPattern == "" {
		c.DrumPattern = def.DrumPattern
	}
	if c.BassPattern == "" {
		c.BassPattern = def.BassPattern
	}
	if c.Mixer.GuitarVolume == 0 {
		c.Mixer = def.Mixer
	}
}
