// SPDX-License-Identifier: MIT

// Package aiff writes generated SAME audio as AIFF files.
//
// Output is always mono PCM 16-bit. Encoding is delegated to
// github.com/go-audio/aiff.
//
// AIFF is the big-endian sibling of WAV, common on Apple platforms and
// in broadcast tooling; both hold the same uncompressed PCM samples.
//
//	f, _ := os.Create("alert.aiff")
//	defer f.Close()
//	err := aiff.WritePCM16(f, 44100, samples)
package aiff
