// SPDX-License-Identifier: MIT

// Package gen implements the incremental SAME/EAS sample-generation engine.
//
// A Ctx owns every piece of state needed to render one complete
// transmission: the serialized header bytes, the per-phase sample budgets,
// the AFSK and attention-signal sub-states, and the chunk output buffer.
// All of it lives inline in the struct; no Ctx method allocates.
//
// # Usage
//
//	var ctx gen.Ctx
//	ctx.Init(&gen.Header{
//		OriginatorCode:  "WXR",
//		EventCode:       "TOR",
//		LocationCodes:   []string{"048484", "048024"},
//		ValidTimePeriod: "1000",
//		OriginatorTime:  "1172221",
//		Callsign:        "WAEB/AM ",
//		AttnSigDuration: 8,
//	}, 44100)
//
//	for !ctx.Done() {
//		chunk := ctx.NextChunk()
//		// push chunk to an audio device, file, ...
//	}
//
// The context is a single-owner object. Distinct contexts are fully
// independent; sharing one context across goroutines is undefined.
//
// Misuse (nil header, non-positive sample rate, malformed field lengths,
// NextChunk on a finished context) is a caller bug and panics. Callers
// that want errors instead should validate with Header.Validate or use
// the root libsame package.
package gen
