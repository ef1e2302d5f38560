// SPDX-License-Identifier: MIT

package wav

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoSamples         = errors.New("no samples to write")
)
