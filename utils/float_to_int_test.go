// SPDX-License-Identifier: MIT

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -math.MaxInt16,
		},
		{
			name:  "half scale rounds up",
			input: 0.5,
			want:  16384,
		},
		{
			name:  "negative half scale rounds away from zero",
			input: -0.5,
			want:  -16384,
		},
		{
			name:  "clamps above range",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamps below range",
			input: -2.0,
			want:  -math.MaxInt16,
		},
		{
			name:  "small value",
			input: 0.0001,
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for x := float32(-1); x <= 1; x += 0.001 {
		cur := Float32ToInt16(x)
		if cur < prev {
			t.Fatalf("Float32ToInt16 not monotonic at %v: %d < %d", x, cur, prev)
		}
		prev = cur
	}
}
