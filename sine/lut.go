// SPDX-License-Identifier: MIT

package sine

import (
	"sync"

	"github.com/mcroddev/libsame/utils"
)

// LUTSize is the number of table entries covering one full sine period.
// A power of two keeps index wrapping to a mask.
const LUTSize = 1024

const lutMask = LUTSize - 1

var (
	lutOnce  sync.Once
	lutTable [LUTSize]int16
)

// Init populates the process-wide lookup table. It is idempotent and
// race-free; call it eagerly at startup to keep the first LUT sample
// off the slow path, or let NewLUT trigger it lazily.
func Init() {
	lutOnce.Do(func() {
		for i := range lutTable {
			lutTable[i] = utils.Float32ToInt16(sinf(2 * pi * float32(i) / LUTSize))
		}
	})
}

// LUT samples the shared lookup table through a per-voice phase
// accumulator with linear interpolation between adjacent entries. The
// t argument is ignored; phase carries all timing, which makes LUT
// bursts phase-continuous across bit boundaries.
type LUT struct {
	rate float32
}

// NewLUT returns a table-driven generator for the given sample rate,
// populating the shared table if this is the first use.
func NewLUT(sampleRate int) LUT {
	Init()
	return LUT{rate: float32(sampleRate)}
}

func (l LUT) Sample(phase *float32, _, freq float32) int16 {
	idx := int(*phase) & lutMask
	frac := *phase - float32(int(*phase))

	y0 := float32(lutTable[idx])
	y1 := float32(lutTable[(idx+1)&lutMask])
	sample := int16(utils.Lerp(y0, y1, frac))

	// Reduce by repeated subtraction rather than a float modulus to
	// preserve the sub-integer part of the accumulator.
	*phase += freq * LUTSize / l.rate
	for *phase >= LUTSize {
		*phase -= LUTSize
	}

	return sample
}

func (LUT) Name() string { return "lut" }

func (LUT) Description() string {
	return "lookup table with phase accumulator and linear interpolation"
}
