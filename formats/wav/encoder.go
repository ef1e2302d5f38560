// SPDX-License-Identifier: MIT

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM16 writes samples as a mono 16-bit PCM WAV file at sampleRate.
// ws needs seeking because the RIFF sizes are patched once the sample
// count is final.
func WritePCM16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	// Convert in chunks so large transmissions don't need a second
	// full-size buffer
	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(samples), chunkSize)),
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
