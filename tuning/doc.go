// Package tuning derives equal-tempered pipe frequencies. A Pattern
// describes the chromatic step sizes of a scale (mode), a ChromaticTable
// holds one octave of equal-tempered frequencies above a fundamental, and
// PipeFrequencies walks the pattern across the table to produce one
// frequency per pipe.
package tuning
