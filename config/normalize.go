// SPDX-License-Identifier: MIT

package config

import "strings"

// Default output values applied by Normalize when unset.
const (
	DefaultSampleRate = 44100
	DefaultEngine     = "libc"
)

// Normalize fills defaults and canonicalizes fields.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Message

	m.Originator = strings.ToUpper(strings.TrimSpace(m.Originator))
	m.Event = strings.ToUpper(strings.TrimSpace(m.Event))
	for i := range m.Locations {
		m.Locations[i] = strings.TrimSpace(m.Locations[i])
	}
	m.ValidTimePeriod = strings.TrimSpace(m.ValidTimePeriod)
	m.OriginatorTime = strings.TrimSpace(m.OriginatorTime)

	// Callsigns shorter than the protocol field are space-padded on the
	// right; trailing spaces in the input are significant and kept.
	if len(m.Callsign) < callsignLen {
		m.Callsign += strings.Repeat(" ", callsignLen-len(m.Callsign))
	}

	if m.AttnSigDuration == 0 {
		m.AttnSigDuration = attnSigDurationMin
	}

	o := &cfg.Output
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	o.Engine = strings.ToLower(strings.TrimSpace(o.Engine))
}
