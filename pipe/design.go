package pipe

import (
	"fmt"

	"github.com/cwbudde/algo-pipes/tuning"
)

// Config holds every parameter of one calculation run. Value semantics; a
// Config is never mutated after being handed to Compute.
type Config struct {
	Fundamental    float64 // Hz, lowest pipe
	StepsPerOctave int
	PipeCount      int
	SpeedOfSound   float64 // m/s
	Steps          []int   // explicit scale pattern; nil means chromatic (or diatonic)
	Diatonic       bool    // shorthand for [2 2 1 2 2 2 1]; Steps wins if both set
	RootIndex      int     // 1-based tonal index of the lowest pipe
	PlugDepthCm    float64
	DiameterCm     float64
}

// DefaultConfig returns the reference defaults: 13 chromatic pipes per
// octave from middle C at 343 m/s.
func DefaultConfig() Config {
	return Config{
		Fundamental:    261.6255653005987,
		StepsPerOctave: 12,
		PipeCount:      13,
		SpeedOfSound:   343,
		RootIndex:      1,
	}
}

// Pipe is one computed resonator.
type Pipe struct {
	Index       int
	FrequencyHz float64
	LengthCm    float64
}

// Result is the outcome of one full calculation pass.
type Result struct {
	Pipes      []Pipe
	PatternSum int
	// SumMatches is false when the scale pattern does not span exactly one
	// octave; the frequencies are still computed but drift away from true
	// octaves (see tuning.PipeFrequencies). Callers should surface an
	// advisory when false.
	SumMatches bool
}

// Compute runs the whole pass: pattern, chromatic table, frequency series,
// lengths. All-or-nothing; any invalid parameter aborts with an error and no
// partial result.
func Compute(cfg Config) (Result, error) {
	patternOpts := []tuning.PatternOption{tuning.WithRootIndex(cfg.RootIndex)}
	if cfg.Diatonic {
		patternOpts = append(patternOpts, tuning.WithDiatonic())
	}
	if cfg.Steps != nil {
		patternOpts = append(patternOpts, tuning.WithSteps(cfg.Steps))
	}
	pattern, err := tuning.NewPattern(cfg.StepsPerOctave, patternOpts...)
	if err != nil {
		return Result{}, err
	}

	table, err := tuning.NewChromaticTable(cfg.Fundamental, cfg.StepsPerOctave)
	if err != nil {
		return Result{}, err
	}

	freqs, err := tuning.PipeFrequencies(table, pattern, cfg.PipeCount)
	if err != nil {
		return Result{}, err
	}

	calc, err := NewCalculator(cfg.SpeedOfSound,
		WithPlugDepth(cfg.PlugDepthCm),
		WithDiameter(cfg.DiameterCm))
	if err != nil {
		return Result{}, err
	}

	pipes := make([]Pipe, len(freqs))
	for i, f := range freqs {
		length, err := calc.Length(f)
		if err != nil {
			return Result{}, fmt.Errorf("pipe %d: %w", i, err)
		}
		pipes[i] = Pipe{Index: i, FrequencyHz: f, LengthCm: length}
	}

	return Result{
		Pipes:      pipes,
		PatternSum: pattern.Sum(),
		SumMatches: pattern.SumsTo(cfg.StepsPerOctave),
	}, nil
}
