// SPDX-License-Identifier: MIT

package gen

import "fmt"

// Header describes one SAME transmission. Every string field must hold
// exactly its protocol length; the callsign is padded with trailing
// spaces to CallsignLen by the caller (the config package does both for
// configuration-driven use).
type Header struct {
	// OriginatorCode indicates who initiated the activation, e.g. "WXR".
	OriginatorCode string

	// EventCode indicates the nature of the activation, e.g. "TOR".
	EventCode string

	// LocationCodes lists the affected PSSCCC region codes, between 1
	// and LocationCodesMax entries of LocationCodeLen digits each.
	LocationCodes []string

	// ValidTimePeriod is the TTTT purge time of the message.
	ValidTimePeriod string

	// OriginatorTime is the JJJHHMM release time of the message.
	OriginatorTime string

	// Callsign identifies the transmitting EAS participant, exactly
	// CallsignLen characters.
	Callsign string

	// AttnSigDuration is the attention-signal length in seconds, within
	// [AttnSigDurationMin, AttnSigDurationMax].
	AttnSigDuration uint
}

// Validate reports whether h can be serialized to a well-formed header.
// Ctx.Init does not call it; it exists for callers that prefer an error
// over the engine's misuse panics.
func (h *Header) Validate() error {
	if h == nil {
		return ErrNilHeader
	}

	if err := fieldAlpha("originator code", h.OriginatorCode, OriginatorCodeLen); err != nil {
		return err
	}
	if err := fieldAlpha("event code", h.EventCode, EventCodeLen); err != nil {
		return err
	}

	if len(h.LocationCodes) == 0 {
		return ErrNoLocationCodes
	}
	if len(h.LocationCodes) > LocationCodesMax {
		return fmt.Errorf("%d location codes given, at most %d allowed",
			len(h.LocationCodes), LocationCodesMax)
	}
	for i, loc := range h.LocationCodes {
		if err := fieldDigits(fmt.Sprintf("location code %d", i), loc, LocationCodeLen); err != nil {
			return err
		}
	}

	if err := fieldDigits("valid time period", h.ValidTimePeriod, ValidTimePeriodLen); err != nil {
		return err
	}
	if err := fieldDigits("originator time", h.OriginatorTime, OriginatorTimeLen); err != nil {
		return err
	}

	if len(h.Callsign) != CallsignLen {
		return fmt.Errorf("callsign %q must be exactly %d characters (pad with spaces)",
			h.Callsign, CallsignLen)
	}
	for i := 0; i < len(h.Callsign); i++ {
		if h.Callsign[i] < 0x20 || h.Callsign[i] > 0x7E {
			return fmt.Errorf("callsign %q contains a non-printable byte at %d", h.Callsign, i)
		}
	}

	if h.AttnSigDuration < AttnSigDurationMin || h.AttnSigDuration > AttnSigDurationMax {
		return fmt.Errorf("attention signal duration %d s outside [%d, %d]",
			h.AttnSigDuration, AttnSigDurationMin, AttnSigDurationMax)
	}

	return nil
}

func fieldAlpha(name, v string, want int) error {
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

func fieldDigits(name, v string, want int) error {
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
