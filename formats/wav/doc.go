// SPDX-License-Identifier: MIT

// Package wav writes generated SAME audio as WAV files.
//
// Output is always mono PCM 16-bit, the native format of the generator.
// Encoding is delegated to github.com/go-audio/wav.
//
// # Writing WAV Files
//
// Use WritePCM16 with any io.WriteSeeker (os.File qualifies):
//
//	samples, _ := libsame.Generate(hdr, 44100)
//
//	f, _ := os.Create("alert.wav")
//	defer f.Close()
//	err := wav.WritePCM16(f, 44100, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk: audio format, sample rate, channels, bit depth
//   - data chunk: the audio samples, little-endian int16
//
// WritePCM16 handles all format details automatically.
package wav
