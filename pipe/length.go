package pipe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpeedOfSound reports a non-positive speed of sound.
	ErrInvalidSpeedOfSound = errors.New("speed of sound must be > 0")
	// ErrZeroFrequency reports a length query for a zero frequency.
	ErrZeroFrequency = errors.New("frequency must not be zero")
)

// Calculator converts resonant frequencies into physical pipe lengths.
type Calculator struct {
	speedOfSound float64 // m/s
	plugDepthCm  float64
	diameterCm   float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPlugDepth sets the depth in cm of the plug stopping the tube; the
// plug eats into the measured tube, so its depth is added to the cut length.
func WithPlugDepth(cm float64) Option {
	return func(c *Calculator) {
		c.plugDepthCm = cm
	}
}

// WithDiameter sets the tube inner diameter in cm, applied as the standard
// 0.4*d open-end correction.
func WithDiameter(cm float64) Option {
	return func(c *Calculator) {
		c.diameterCm = cm
	}
}

// NewCalculator creates a length calculator for the given speed of sound in
// meters per second.
func NewCalculator(speedOfSoundMPS float64, opts ...Option) (*Calculator, error) {
	if speedOfSoundMPS <= 0 {
		return nil, fmt.Errorf("pipe: %w: %v", ErrInvalidSpeedOfSound, speedOfSoundMPS)
	}
	c := &Calculator{speedOfSound: speedOfSoundMPS}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Length returns the cut length in cm of a stopped quarter-wave pipe
// resonating at freqHz:
//
//	length = v*100/(4*f) + plugDepth - 0.4*diameter
//
// The result is not clamped; a large plug offset or diameter can yield a
// negative length, which is passed through for the caller to judge.
func (c *Calculator) Length(freqHz float64) (float64, error) {
	if freqHz == 0 {
		return 0, fmt.Errorf("pipe: %w", ErrZeroFrequency)
	}
	velocityCm := c.speedOfSound * 100
	return velocityCm/(4*freqHz) + c.plugDepthCm - 0.4*c.diameterCm, nil
}
