package tuning

import "fmt"

// PipeFrequencies returns one frequency per pipe, walking the scale pattern
// cyclically across as many octaves as numPipes requires. Pipe 0 is always
// the fundamental.
//
// Two pieces of state track the walk: the chromatic table index, which wraps
// modulo the table size, and an octave multiplier, which doubles whenever the
// pipe index lands on a pattern-cycle boundary (before that pipe's step is
// consumed). The two agree only when the pattern sums to the octave; for a
// mismatched pattern they fall out of phase and the series drifts away from
// true octaves. That drift is the documented behavior for mismatched
// patterns, guarded only by the caller-side SumsTo advisory.
func PipeFrequencies(table ChromaticTable, pattern Pattern, numPipes int) ([]float64, error) {
	if numPipes <= 0 {
		return nil, fmt.Errorf("tuning: %w: %d", ErrInvalidPipeCount, numPipes)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("tuning: %w: zero-value chromatic table", ErrInvalidStepCount)
	}
	cycle := pattern.CycleLength()
	if cycle == 0 {
		return nil, fmt.Errorf("tuning: %w: zero-value pattern", ErrEmptyPattern)
	}

	size := table.Len()
	freqs := make([]float64, numPipes)
	freqs[0] = table.At(0)

	chromaticIndex := 0
	octaveMultiplier := 1.0
	for i := 1; i < numPipes; i++ {
		if i%cycle == 0 {
			octaveMultiplier *= 2
		}
		step := pattern.At((i - 1) % cycle)
		// Floored modulo: negative steps are legal and walk backwards.
		chromaticIndex = ((chromaticIndex+step)%size + size) % size
		freqs[i] = table.At(chromaticIndex) * octaveMultiplier
	}

	return freqs, nil
}
