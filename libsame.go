// SPDX-License-Identifier: MIT

package libsame

import (
	"errors"
	"fmt"

	"github.com/mcroddev/libsame/gen"
	"github.com/mcroddev/libsame/sine"
)

var ErrInvalidSampleRate = errors.New("sample rate must be positive")

// Generate renders the complete transmission described by h into a
// freshly allocated sample slice at sampleRate Hz using the default
// sine engine.
//
// Unlike the gen package, which treats malformed input as a caller bug,
// Generate validates h first and reports problems as errors, making it
// the right entry point for configuration-driven callers.
//
// Note: this is a convenience function. The result holds the entire
// transmission (roughly 1.7 MB for a typical 8-second alert at
// 44100 Hz); callers with tighter memory budgets should drive a gen.Ctx
// chunk by chunk instead.
func Generate(h *gen.Header, sampleRate int) ([]int16, error) {
	return GenerateWith(h, sampleRate, sine.Libc{})
}

// GenerateWith is Generate with an explicit sine engine.
func GenerateWith(h *gen.Header, sampleRate int, engine sine.Generator) ([]int16, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	var ctx gen.Ctx
	ctx.InitWithSine(h, sampleRate, engine)

	out := make([]int16, 0, ctx.TotalSamples())
	for !ctx.Done() {
		out = append(out, ctx.NextChunk()...)
	}

	return out, nil
}
