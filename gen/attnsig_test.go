// SPDX-License-Identifier: MIT

package gen

import (
	"math"
	"testing"

	"github.com/mcroddev/libsame/sine"
)

// attnSamples renders n attention-signal samples straight from the
// sub-generator, bypassing the surrounding sequence.
func attnSamples(ctx *Ctx, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		ctx.attnSigGen(0)
		out[i] = ctx.sampleData[0]
	}
	return out
}

// goertzel is a single-bin DFT magnitude, enough to scan a band for
// spectral peaks.
func goertzel(samples []int16, sampleRate int, freq float64) float64 {
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

func TestAttnSig_DominantFrequencies(t *testing.T) {
	t.Parallel()

	var ctx Ctx
	ctx.Init(canonicalHeader(), 44100)

	// One full second gives 1 Hz bins with no leakage at the two
	// integer fundamentals.
	samples := attnSamples(&ctx, 44100)

	const lo, hi = 500, 1500
	mags := make(map[int]float64, hi-lo+1)
	for f := lo; f <= hi; f++ {
		mags[f] = goertzel(samples, 44100, float64(f))
	}

	peakFirst := mags[853]
	peakSecond := mags[960]
	if peakFirst == 0 || peakSecond == 0 {
		t.Fatal("no energy at the attention fundamentals")
	}

	threshold := 0.25 * math.Min(peakFirst, peakSecond)
	for f := lo; f <= hi; f++ {
		if f >= 851 && f <= 855 || f >= 958 && f <= 962 {
			continue
		}
		if mags[f] > threshold {
			t.Errorf("bin %d Hz magnitude %.0f exceeds 25%% of the peaks (%.0f / %.0f)",
				f, mags[f], peakFirst, peakSecond)
		}
	}

	// Both fundamentals carry comparable energy.
	ratio := peakFirst / peakSecond
	if ratio < 0.8 || ratio > 1.25 {
		t.Errorf("fundamental magnitude ratio = %.2f, want near 1", ratio)
	}
}

func TestAttnSig_NeverClips(t *testing.T) {
	t.Parallel()

	var ctx Ctx
	ctx.Init(canonicalHeader(), 44100)

	samples := attnSamples(&ctx, 8*44100)

	var peak int32
	for _, s := range samples {
		v := int32(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	// The two tones are summed in int32 and the sum is halved, so the
	// combined waveform can never leave int16 range; the beat envelope
	// still approaches full scale.
	if peak > 32767 {
		t.Errorf("peak = %d, waveform left int16 range", peak)
	}
	if peak < 25000 {
		t.Errorf("peak = %d, beat envelope should approach full scale", peak)
	}
}

func TestAttnSig_StartsAtZeroTime(t *testing.T) {
	t.Parallel()

	var ctx Ctx
	ctx.Init(canonicalHeader(), 44100)

	samples := attnSamples(&ctx, 2)
	if samples[0] != 0 {
		t.Errorf("first attention sample = %d, want 0 (both sines start at t=0)", samples[0])
	}
	if samples[1] == 0 {
		t.Error("second attention sample = 0, want nonzero")
	}
}

func TestAttnSig_LUTMatchesLibc(t *testing.T) {
	t.Parallel()

	var libcCtx, lutCtx Ctx
	libcCtx.Init(canonicalHeader(), 44100)
	lutCtx.InitWithSine(canonicalHeader(), 44100, sine.NewLUT(44100))

	a := attnSamples(&libcCtx, 4410)
	b := attnSamples(&lutCtx, 4410)

	const tolerance = 2 * 32767 / 100
	for i := range a {
		diff := int(a[i]) - int(b[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			t.Fatalf("sample %d: libc %d vs lut %d differ by %d (> %d)",
				i, a[i], b[i], diff, tolerance)
		}
	}
}
