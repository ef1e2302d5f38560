// SPDX-License-Identifier: MIT

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to a full-scale
// signed 16-bit sample, clamping out-of-range input.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(math.Round(float64(x) * 32767.0))
}
