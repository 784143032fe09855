package tuning

import "errors"

var (
	// ErrInvalidStepCount reports a non-positive octave division.
	ErrInvalidStepCount = errors.New("steps per octave must be > 0")
	// ErrZeroFundamental reports a non-positive fundamental frequency.
	ErrZeroFundamental = errors.New("fundamental frequency must be > 0")
	// ErrEmptyPattern reports an explicit scale pattern with no steps.
	ErrEmptyPattern = errors.New("scale pattern must not be empty")
	// ErrInvalidPipeCount reports a non-positive pipe count.
	ErrInvalidPipeCount = errors.New("pipe count must be > 0")
)
