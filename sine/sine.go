// SPDX-License-Identifier: MIT

package sine

import "math"

const pi float32 = math.Pi

// Generator produces one full-scale signed 16-bit sample of
// sin(2*pi*freq*t).
//
// phase is a per-voice accumulator owned by the caller; table-driven
// implementations read and advance it, the rest ignore it. Callers keep
// one accumulator per concurrent tone and zero it when a tone sequence
// ends.
type Generator interface {
	Sample(phase *float32, t, freq float32) int16

	// Name is a short stable identifier for the engine, e.g. "libc".
	Name() string

	// Description is a one-line human-readable engine summary.
	Description() string
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
