package render

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pipes/internal/testutil"
)

func TestDominantFrequencyOfRenderedTones(t *testing.T) {
	const sampleRate = 48000.0
	r := NewRenderer(WithSampleRate(sampleRate), WithToneDuration(0.5))

	for _, freq := range []float64{110, 261.6255653005987, 440, 2000} {
		tone, err := r.RenderTone(freq)
		if err != nil {
			t.Fatalf("RenderTone(%v) error = %v", freq, err)
		}
		got, err := DominantFrequency(tone, sampleRate)
		if err != nil {
			t.Fatalf("DominantFrequency() error = %v", err)
		}
		// Bin spacing at this block size is below 2 Hz; parabolic
		// refinement should land well inside one bin.
		testutil.RequireNearlyEqual(t, got, freq, 2)
	}
}

func TestDominantFrequencyPicksStrongerComponent(t *testing.T) {
	const sampleRate = 8000.0
	n := 4096
	samples := make([]float64, n)
	for i := range samples {
		ts := float64(i) / sampleRate
		samples[i] = 0.2*math.Sin(2*math.Pi*300*ts) + 0.9*math.Sin(2*math.Pi*1200*ts)
	}

	got, err := DominantFrequency(samples, sampleRate)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	testutil.RequireNearlyEqual(t, got, 1200, 3)
}

func TestDominantFrequencyErrors(t *testing.T) {
	if _, err := DominantFrequency([]float64{1, 2}, 48000); !errors.Is(err, ErrBlockTooShort) {
		t.Fatalf("short block: error = %v, want ErrBlockTooShort", err)
	}
	if _, err := DominantFrequency(make([]float64, 64), 0); err == nil {
		t.Fatalf("zero sample rate should fail")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Fatalf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
