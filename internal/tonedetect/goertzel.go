// Package tonedetect measures the strength of a single frequency component
// in a sample block using the Goertzel recurrence. It evaluates one DFT bin
// without a full transform, which is all the preview verification needs.
package tonedetect

import (
	"fmt"
	"math"
)

// Detector evaluates one target frequency. Stateless between calls; each
// Power call processes a complete block.
type Detector struct {
	coeff      float64
	frequency  float64
	sampleRate float64
}

// New creates a detector for the target frequency.
//
// frequency must be between 0 and sampleRate/2.
func New(frequency, sampleRate float64) (*Detector, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("tonedetect: sample rate must be > 0: %v", sampleRate)
	}
	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("tonedetect: frequency must be between 0 and sampleRate/2: %v", frequency)
	}
	return &Detector{
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
		frequency:  frequency,
		sampleRate: sampleRate,
	}, nil
}

// Frequency returns the target frequency in Hz.
func (d *Detector) Frequency() float64 {
	return d.frequency
}

// Power returns the squared magnitude of the target frequency component in
// the block.
func (d *Detector) Power(samples []float64) float64 {
	var s1, s2 float64
	for _, x := range samples {
		s0 := x + d.coeff*s1 - s2
		s2 = s1
		s1 = s0
	}
	return s1*s1 + s2*s2 - d.coeff*s1*s2
}

// Amplitude returns the estimated peak amplitude of the target component,
// assuming the block contains a whole number of cycles.
func (d *Detector) Amplitude(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	return 2 * math.Sqrt(d.Power(samples)) / float64(n)
}
