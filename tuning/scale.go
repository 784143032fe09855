package tuning

import "fmt"

// diatonicSteps is the major (Ionian) step pattern.
var diatonicSteps = []int{2, 2, 1, 2, 2, 2, 1}

// Pattern is a rotated scale step pattern. Each element is the number of
// chromatic steps from one scale degree to the next. Immutable once built.
type Pattern struct {
	steps []int
}

type patternConfig struct {
	steps     []int
	diatonic  bool
	rootIndex int
}

// PatternOption configures NewPattern.
type PatternOption func(*patternConfig)

// WithSteps sets an explicit step pattern, used verbatim as the base before
// rotation. Overrides WithDiatonic. Elements are not validated; a
// non-positive step is accepted and walks the chromatic table backwards.
func WithSteps(steps []int) PatternOption {
	return func(cfg *patternConfig) {
		cfg.steps = steps
	}
}

// WithDiatonic selects the major-scale pattern [2 2 1 2 2 2 1].
func WithDiatonic() PatternOption {
	return func(cfg *patternConfig) {
		cfg.diatonic = true
	}
}

// WithRootIndex sets the 1-based tonal index of the lowest pipe. The base
// pattern is rotated left by index-1 positions; values outside
// [1, pattern length] wrap around rather than fail.
func WithRootIndex(index int) PatternOption {
	return func(cfg *patternConfig) {
		cfg.rootIndex = index
	}
}

// NewPattern builds the rotated step pattern for one scale. Without options
// the pattern is chromatic: stepsPerOctave steps of one chromatic step each.
//
// The pattern sum is NOT required to equal stepsPerOctave; callers that care
// should check SumsTo and warn (see PipeFrequencies for the drift behavior
// of mismatched patterns).
func NewPattern(stepsPerOctave int, opts ...PatternOption) (Pattern, error) {
	if stepsPerOctave <= 0 {
		return Pattern{}, fmt.Errorf("tuning: %w: %d", ErrInvalidStepCount, stepsPerOctave)
	}

	cfg := patternConfig{rootIndex: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var base []int
	switch {
	case cfg.steps != nil:
		if len(cfg.steps) == 0 {
			return Pattern{}, fmt.Errorf("tuning: %w", ErrEmptyPattern)
		}
		base = cfg.steps
	case cfg.diatonic:
		base = diatonicSteps
	default:
		base = make([]int, stepsPerOctave)
		for i := range base {
			base[i] = 1
		}
	}

	n := len(base)
	// Floored modulo so negative and oversized root indices rotate cleanly.
	off := ((cfg.rootIndex-1)%n + n) % n

	steps := make([]int, 0, n)
	steps = append(steps, base[off:]...)
	steps = append(steps, base[:off]...)

	return Pattern{steps: steps}, nil
}

// CycleLength returns the number of scale degrees per pattern cycle.
func (p Pattern) CycleLength() int {
	return len(p.steps)
}

// At returns the step size at degree i (0-based, i < CycleLength).
func (p Pattern) At(i int) int {
	return p.steps[i]
}

// Steps returns a copy of the rotated step sequence.
func (p Pattern) Steps() []int {
	out := make([]int, len(p.steps))
	copy(out, p.steps)
	return out
}

// Sum returns the total chromatic span of one pattern cycle.
func (p Pattern) Sum() int {
	sum := 0
	for _, s := range p.steps {
		sum += s
	}
	return sum
}

// SumsTo reports whether one pattern cycle spans exactly stepsPerOctave
// chromatic steps, i.e. whether the scale closes cleanly on the octave.
func (p Pattern) SumsTo(stepsPerOctave int) bool {
	return p.Sum() == stepsPerOctave
}
