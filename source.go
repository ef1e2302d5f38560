// SPDX-License-Identifier: MIT

package libsame

import (
	"io"

	"github.com/mcroddev/libsame/gen"
)

// Source adapts a generation context to a pull-style mono audio source:
// float32 samples in [-1, 1], io.EOF once the transmission completes.
// It takes ownership of the context; the caller must not call NextChunk
// on it while the Source is in use.
type Source struct {
	ctx     *gen.Ctx
	pending []int16
}

// NewSource wraps an initialized generation context.
func NewSource(ctx *gen.Ctx) *Source {
	return &Source{ctx: ctx}
}

// SampleRate of the PCM stream in Hz.
func (s *Source) SampleRate() int { return s.ctx.SampleRate() }

// Channels count; the generator is always mono.
func (s *Source) Channels() int { return 1 }

// BufSize is the natural read granularity of the underlying generator.
func (s *Source) BufSize() int { return gen.ChunkSamples }

// Close releases nothing; the context holds no external resources.
func (s *Source) Close() error { return nil }

// ReadSamples fills dst with normalized samples. Returns the number of
// samples written; io.EOF accompanies (or follows) the final samples of
// the transmission.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.ctx.Done() {
				if written == 0 {
					return 0, io.EOF
				}
				return written, io.EOF
			}
			s.pending = s.ctx.NextChunk()
		}

		n := min(len(dst)-written, len(s.pending))
		for i := 0; i < n; i++ {
			dst[written+i] = float32(s.pending[i]) / 32768.0
		}
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}
