// SPDX-License-Identifier: MIT

// Package gentest holds shared helpers for the generator test suites.
package gentest

import (
	"io"
	"math"

	"github.com/mcroddev/libsame/gen"
)

// Drain runs a generation context to completion and returns every
// sample it emits.
func Drain(ctx *gen.Ctx) []int16 {
	out := make([]int16, 0, ctx.TotalSamples())
	for !ctx.Done() {
		out = append(out, ctx.NextChunk()...)
	}
	return out
}

// Goertzel returns the spectral magnitude of samples at freq Hz for the
// given sample rate. Single-bin DFT; cheap enough to scan a band of
// candidate frequencies in a test.
func Goertzel(samples []int16, sampleRate int, freq float64) float64 {
	w := 2 * math.Pi * freq / float64(sampleRate)
	coeff := 2 * math.Cos(w)

	var s1, s2 float64
	for _, x := range samples {
		s0 := float64(x) + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}

	power := s1*s1 + s2*s2 - coeff*s1*s2
	if power < 0 {
		power = 0
	}
	return math.Sqrt(power)
}

// WriteSeeker is an in-memory io.WriteSeeker for encoder tests.
type WriteSeeker struct {
	buf []byte
	pos int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	need := ws.pos + int64(len(p))
	if need > int64(len(ws.buf)) {
		grown := make([]byte, need)
		copy(grown, ws.buf)
		ws.buf = grown
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos = need
	return len(p), nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = ws.pos + offset
	case io.SeekEnd:
		next = int64(len(ws.buf)) + offset
	default:
		return 0, io.ErrUnexpectedEOF
	}
	if next < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	ws.pos = next
	return next, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.buf }
