// SPDX-License-Identifier: MIT

// Package sine provides the pluggable sine oracles used by the
// generation engine.
//
// Four interchangeable implementations of the Generator interface are
// available:
//
//   - Libc: computes each sample directly with the math library.
//   - LUT: a precomputed full-period lookup table driven by a per-voice
//     phase accumulator with linear interpolation. Fastest on targets
//     where a library sine is expensive.
//   - Taylor: a low-order odd-power Taylor polynomial after domain
//     reduction. Useful where the multiplications pipeline well.
//   - Func: delegates to an application-supplied callback.
//
// All implementations produce full-scale int16 samples of
// sin(2*pi*freq*t) and are interchangeable at the engine interface; they
// differ only in waveform fidelity and in whether they derive phase from
// t (Libc, Taylor, Func) or from the accumulator (LUT).
//
// The lookup table is process-wide and immutable once populated. Init
// populates it eagerly; NewLUT does so lazily on first use. Either way
// the one-time population is race-free.
package sine
