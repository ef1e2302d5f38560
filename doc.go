// SPDX-License-Identifier: MIT

// Package libsame generates the audio of a Specific Area Message
// Encoding (SAME) transmission as used by the United States Emergency
// Alert System: three AFSK header bursts, the dual-tone attention
// signal, and three End of Message bursts, separated by one-second
// silences, rendered as mono signed 16-bit PCM.
//
// # Quick Start
//
// The simplest way to produce a transmission is Generate:
//
//	hdr := &gen.Header{
//		OriginatorCode:  "WXR",
//		EventCode:       "TOR",
//		LocationCodes:   []string{"048484", "048024"},
//		ValidTimePeriod: "1000",
//		OriginatorTime:  "1172221",
//		Callsign:        "WAEB/AM ",
//		AttnSigDuration: 8,
//	}
//
//	samples, err := libsame.Generate(hdr, 44100)
//
//	// samples is now the whole transmission as []int16 at 44100 Hz
//
// # Incremental Generation
//
// Generate collects everything into one slice, which costs a few
// megabytes at 44100 Hz. For playback pipelines and embedded-style use,
// drive a generation context directly; it produces fixed-size chunks
// and never allocates:
//
//	var ctx gen.Ctx
//	ctx.Init(hdr, 44100)
//
//	for !ctx.Done() {
//		chunk := ctx.NextChunk()
//		// push chunk to the audio device
//	}
//
// # Sine Engines
//
// Waveform synthesis is pluggable through the sine package. The default
// is the math-library engine; a lookup-table engine and a Taylor-series
// engine suit constrained targets, and sine.Func adapts an
// application-supplied callback:
//
//	samples, err := libsame.GenerateWith(hdr, 44100, sine.NewLUT(44100))
//
// # Streaming
//
// NewSource wraps a context in a pull-style mono source (float32
// samples in [-1, 1], io.EOF at end of transmission) for callers that
// compose audio pipelines:
//
//	var ctx gen.Ctx
//	ctx.Init(hdr, 44100)
//	src := libsame.NewSource(&ctx)
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Writing Files
//
// The formats subpackages export generated samples:
//
//	f, _ := os.Create("alert.wav")
//	wav.WritePCM16(f, 44100, samples)
//
// # Configuration
//
// The config package loads a YAML description of a message plus output
// options, validates field lengths and character classes, and produces
// a ready-to-use header and engine. The core itself performs no domain
// validation; see the gen package for its contract.
package libsame
