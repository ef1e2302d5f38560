// SPDX-License-Identifier: MIT

package sine

import "github.com/mcroddev/libsame/utils"

// Libc computes samples directly from the math library. Stateless.
type Libc struct{}

func (Libc) Sample(_ *float32, t, freq float32) int16 {
	return utils.Float32ToInt16(sinf(2 * pi * freq * t))
}

func (Libc) Name() string { return "libc" }

func (Libc) Description() string {
	return "math library sine, computed per sample"
}
