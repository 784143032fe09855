package render

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrBlockTooShort reports a sample block too small for spectral analysis.
var ErrBlockTooShort = errors.New("sample block too short for spectral analysis")

// DominantFrequency estimates the frequency in Hz of the strongest spectral
// component of samples. The block is Hann-windowed, zero-padded to the next
// power of two, transformed, and the peak magnitude bin refined by parabolic
// interpolation.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("render: sample rate must be > 0: %v", sampleRate)
	}
	if len(samples) < 4 {
		return 0, fmt.Errorf("render: %w: %d samples", ErrBlockTooShort, len(samples))
	}

	fftSize := nextPowerOfTwo(len(samples))
	in := make([]complex128, fftSize)
	coeffs := hann(len(samples))
	for i, s := range samples {
		in[i] = complex(s*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("render: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("render: forward fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	mag := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	vecmath.Magnitude(mag, re, im)

	// Skip DC; the preview has none, but windowing smears any offset there.
	peak := 1
	for i := 2; i < half; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	// Parabolic refinement over the peak and its neighbors.
	delta := 0.0
	if peak > 0 && peak < half-1 {
		denom := mag[peak-1] - 2*mag[peak] + mag[peak+1]
		if denom != 0 {
			delta = 0.5 * (mag[peak-1] - mag[peak+1]) / denom
		}
	}

	return (float64(peak) + delta) * sampleRate / float64(fftSize), nil
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// hann returns symmetric Hann window coefficients.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
