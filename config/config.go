// SPDX-License-Identifier: MIT

// Package config loads YAML descriptions of a SAME message and output
// options, and turns them into ready-to-use generator inputs.
//
// The expected lifecycle is Load (or Parse), then Normalize, then
// Validate, then Header/Engine. Validation lives here rather than in
// the generation core: the engine treats malformed fields as caller
// bugs, so configuration-driven callers vet their input first.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Message MessageConfig `yaml:"message"`
	Output  OutputConfig  `yaml:"output"`
}

// ---- MESSAGE ----

type MessageConfig struct {
	Originator string   `yaml:"originator"`
	Event      string   `yaml:"event"`
	Locations  []string `yaml:"locations"`

	ValidTimePeriod string `yaml:"valid_time_period"`
	OriginatorTime  string `yaml:"originator_time"`
	Callsign        string `yaml:"callsign"`

	// Attention-signal duration in seconds (8..25).
	AttnSigDuration uint `yaml:"attn_sig_duration"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	SampleRate int `yaml:"sample_rate"`

	// Engine selects the sine oracle: "libc", "lut" or "taylor".
	Engine string `yaml:"engine"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(raw)
}

// Parse parses YAML configuration bytes.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
