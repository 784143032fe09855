package tonedetect

import (
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

func TestPowerPeaksAtTargetFrequency(t *testing.T) {
	const sampleRate = 48000.0
	block := sine(1000, sampleRate, 4800) // 100 whole cycles

	onTarget, err := New(1000, sampleRate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	offTarget, err := New(1500, sampleRate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	on := onTarget.Power(block)
	off := offTarget.Power(block)
	if on < 100*off {
		t.Fatalf("target power %v not dominant over off-target %v", on, off)
	}
}

func TestAmplitudeRecoversUnitSine(t *testing.T) {
	const sampleRate = 48000.0
	block := sine(440, sampleRate, 48000) // 440 whole cycles

	d, err := New(440, sampleRate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	amp := d.Amplitude(block)
	if math.Abs(amp-1) > 1e-3 {
		t.Fatalf("amplitude = %v, want ~1", amp)
	}
}

func TestAmplitudeOfSilenceIsZero(t *testing.T) {
	d, err := New(440, 48000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if amp := d.Amplitude(make([]float64, 1024)); amp != 0 {
		t.Fatalf("amplitude = %v, want 0", amp)
	}
	if amp := d.Amplitude(nil); amp != 0 {
		t.Fatalf("amplitude of empty block = %v, want 0", amp)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(440, 0); err == nil {
		t.Fatalf("sample rate 0 should fail")
	}
	if _, err := New(-1, 48000); err == nil {
		t.Fatalf("negative frequency should fail")
	}
	if _, err := New(30000, 48000); err == nil {
		t.Fatalf("frequency above Nyquist should fail")
	}
}
