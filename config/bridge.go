// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/mcroddev/libsame/gen"
	"github.com/mcroddev/libsame/sine"
)

// Header builds the generator header described by the configuration.
// Call only after Normalize and Validate.
func (c *Config) Header() *gen.Header {
	return &gen.Header{
		OriginatorCode:  c.Message.Originator,
		EventCode:       c.Message.Event,
		LocationCodes:   c.Message.Locations,
		ValidTimePeriod: c.Message.ValidTimePeriod,
		OriginatorTime:  c.Message.OriginatorTime,
		Callsign:        c.Message.Callsign,
		AttnSigDuration: c.Message.AttnSigDuration,
	}
}

// Engine builds the configured sine generator.
func (c *Config) Engine() (sine.Generator, error) {
	switch c.Output.Engine {
	case "libc":
		return sine.Libc{}, nil
	case "lut":
		return sine.NewLUT(c.Output.SampleRate), nil
	case "taylor":
		return sine.Taylor{}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", c.Output.Engine)
	}
}
