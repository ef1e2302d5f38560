// SPDX-License-Identifier: MIT

package sine

import "github.com/mcroddev/libsame/utils"

// Taylor approximates samples with a 4-term odd-power Taylor polynomial
// (through x^7) after reducing the argument into [0, pi]. Stateless.
// Accuracy degrades toward the edge of the reduced domain (about 7.5% of
// full scale at pi), which is inaudible for AFSK and attention-tone use.
type Taylor struct{}

func (Taylor) Sample(_ *float32, t, freq float32) int16 {
	x := 2 * pi * freq * t
	if x < 0 {
		x = -x
	}

	// Reduce into [0, 2*pi), then fold the upper half onto [0, pi) with
	// a sign flip.
	x -= float32(int32(x/(2*pi))) * 2 * pi
	sign := float32(1)
	if x >= pi {
		sign = -1
		x -= pi
	}

	s := x - (x*x*x)/6 + (x*x*x*x*x)/120 - (x*x*x*x*x*x*x)/5040
	return utils.Float32ToInt16(sign * s)
}

func (Taylor) Name() string { return "taylor" }

func (Taylor) Description() string {
	return "low-order Taylor series approximation"
}
