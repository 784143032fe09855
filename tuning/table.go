package tuning

import (
	"fmt"
	"math"
)

// ChromaticTable holds one octave of equal-tempered frequencies. Entry 0 is
// the fundamental; entry k is entry k-1 times 2^(1/N). Immutable once built.
type ChromaticTable struct {
	freqs []float64
}

// NewChromaticTable builds the chromatic table for one octave above
// fundamental, divided into stepsPerOctave equal logarithmic steps.
//
// Entries are computed by the multiplicative recurrence rather than a closed
// form; downstream results depend on the exact rounding of the running
// product.
func NewChromaticTable(fundamental float64, stepsPerOctave int) (ChromaticTable, error) {
	if stepsPerOctave <= 0 {
		return ChromaticTable{}, fmt.Errorf("tuning: %w: %d", ErrInvalidStepCount, stepsPerOctave)
	}
	if fundamental <= 0 || math.IsNaN(fundamental) || math.IsInf(fundamental, 0) {
		return ChromaticTable{}, fmt.Errorf("tuning: %w: %v", ErrZeroFundamental, fundamental)
	}

	ratio := math.Pow(2, 1/float64(stepsPerOctave))
	freqs := make([]float64, stepsPerOctave)
	freqs[0] = fundamental
	for i := 1; i < stepsPerOctave; i++ {
		freqs[i] = freqs[i-1] * ratio
	}

	return ChromaticTable{freqs: freqs}, nil
}

// Len returns the number of chromatic steps per octave.
func (t ChromaticTable) Len() int {
	return len(t.freqs)
}

// At returns the frequency in Hz at chromatic index i (0-based, i < Len).
func (t ChromaticTable) At(i int) float64 {
	return t.freqs[i]
}

// Fundamental returns entry 0.
func (t ChromaticTable) Fundamental() float64 {
	return t.freqs[0]
}

// Frequencies returns a copy of the table entries.
func (t ChromaticTable) Frequencies() []float64 {
	out := make([]float64, len(t.freqs))
	copy(out, t.freqs)
	return out
}
