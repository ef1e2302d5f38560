// SPDX-License-Identifier: MIT

package wav

import (
	"bytes"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/mcroddev/libsame/internal/gentest"
)

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32767, 12345, -12345}

	var ws gentest.WriteSeeker
	if err := WritePCM16(&ws, 44100, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(ws.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("encoder output is not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding encoder output: %v", err)
	}

	if got := buf.Format.SampleRate; got != 44100 {
		t.Errorf("decoded sample rate = %d, want 44100", got)
	}
	if got := buf.Format.NumChannels; got != 1 {
		t.Errorf("decoded channels = %d, want 1 (mono)", got)
	}

	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i, want := range samples {
		if got := buf.Data[i]; got != int(want) {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWritePCM16_LargeInput(t *testing.T) {
	t.Parallel()

	// Spans several conversion chunks.
	samples := make([]int16, 30000)
	for i := range samples {
		samples[i] = int16(i % 2000)
	}

	var ws gentest.WriteSeeker
	if err := WritePCM16(&ws, 8000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(ws.Bytes()))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding encoder output: %v", err)
	}

	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i := 0; i < len(samples); i += 997 {
		if buf.Data[i] != int(samples[i]) {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], samples[i])
		}
	}
}

func TestWritePCM16_Errors(t *testing.T) {
	t.Parallel()

	var ws gentest.WriteSeeker

	if err := WritePCM16(&ws, 0, []int16{1}); err != ErrInvalidSampleRate {
		t.Errorf("zero rate: err = %v, want ErrInvalidSampleRate", err)
	}
	if err := WritePCM16(&ws, -1, []int16{1}); err != ErrInvalidSampleRate {
		t.Errorf("negative rate: err = %v, want ErrInvalidSampleRate", err)
	}
	if err := WritePCM16(&ws, 44100, nil); err != ErrNoSamples {
		t.Errorf("no samples: err = %v, want ErrNoSamples", err)
	}
}

func TestWritePCM16_RIFFHeader(t *testing.T) {
	t.Parallel()

	var ws gentest.WriteSeeker
	if err := WritePCM16(&ws, 44100, []int16{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	raw := ws.Bytes()
	if len(raw) < 12 {
		t.Fatalf("output only %d bytes", len(raw))
	}
	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE markers in %q", raw[:12])
	}
	if !bytes.Contains(raw, []byte("data")) {
		t.Error("missing data chunk marker")
	}
}
