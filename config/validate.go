// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/mcroddev/libsame/gen"
)

const (
	callsignLen        = gen.CallsignLen
	attnSigDurationMin = gen.AttnSigDurationMin
	attnSigDurationMax = gen.AttnSigDurationMax
)

// Validate checks configuration correctness against the protocol field
// rules. It performs declarative validation only and MUST NOT mutate
// configuration; run Normalize first.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil configuration")
	}

	m := &cfg.Message

	if err := alphaField("originator", m.Originator, gen.OriginatorCodeLen); err != nil {
		return err
	}
	if err := alphaField("event", m.Event, gen.EventCodeLen); err != nil {
		return err
	}

	if len(m.Locations) == 0 {
		return fmt.Errorf("at least one location code is required")
	}
	if len(m.Locations) > gen.LocationCodesMax {
		return fmt.Errorf("%d locations given, at most %d allowed",
			len(m.Locations), gen.LocationCodesMax)
	}
	for i, loc := range m.Locations {
		if err := digitField(fmt.Sprintf("locations[%d]", i), loc, gen.LocationCodeLen); err != nil {
			return err
		}
	}

	if err := digitField("valid_time_period", m.ValidTimePeriod, gen.ValidTimePeriodLen); err != nil {
		return err
	}
	if err := digitField("originator_time", m.OriginatorTime, gen.OriginatorTimeLen); err != nil {
		return err
	}

	if len(m.Callsign) != callsignLen {
		return fmt.Errorf("callsign %q must be %d characters after normalization",
			m.Callsign, callsignLen)
	}
	for i := 0; i < len(m.Callsign); i++ {
		if m.Callsign[i] < 0x20 || m.Callsign[i] > 0x7E {
			return fmt.Errorf("callsign must contain printable ASCII characters only")
		}
	}

	if m.AttnSigDuration < attnSigDurationMin || m.AttnSigDuration > attnSigDurationMax {
		return fmt.Errorf("attn_sig_duration %d outside [%d, %d]",
			m.AttnSigDuration, attnSigDurationMin, attnSigDurationMax)
	}

	o := &cfg.Output
	if o.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", o.SampleRate)
	}
	switch o.Engine {
	case "libc", "lut", "taylor":
	default:
		return fmt.Errorf("unknown engine %q (want libc, lut or taylor)", o.Engine)
	}

	return nil
}

func alphaField(name, v string, want int) error {
	if len(v) != want {
		return fmt.Errorf("%s %q must be exactly %d characters", name, v, want)
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 'A' || v[i] > 'Z' {
			return fmt.Errorf("%s %q must contain uppercase letters only", name, v)
		}
	}
	return nil
}

func digitField(name, v string, want int) error {
	if len(v) != want {
		return fmt.Errorf("%s %q must be exactly %d digits", name, v, want)
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return fmt.Errorf("%s %q must contain digits only", name, v)
		}
	}
	return nil
}
