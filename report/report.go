// Package report renders computed pipe ranks as aligned text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-pipes/pipe"
)

// Formatter renders one line per pipe: a zero-padded index, the length in
// cm right-justified to the width of the first (longest) rendered length,
// and optionally the frequency and nearest note name.
type Formatter struct {
	Precision     int  // digits past the decimal point, clamped at 0
	ShowFrequency bool // append " (freq)" at the same precision
	ShowNotes     bool // append nearest 12-TET note name with cent deviation
}

// Render writes the report for pipes to w.
func (f *Formatter) Render(w io.Writer, pipes []pipe.Pipe) error {
	if len(pipes) == 0 {
		return nil
	}

	prec := f.Precision
	if prec < 0 {
		prec = 0
	}

	maxIndex := pipes[0].Index
	for _, p := range pipes {
		if p.Index > maxIndex {
			maxIndex = p.Index
		}
	}
	indexWidth := len(strconv.Itoa(maxIndex))

	// The first pipe is the lowest, therefore longest; its rendered width
	// sets the justification for every following line.
	lengthWidth := len(strconv.FormatFloat(pipes[0].LengthCm, 'f', prec, 64))

	for _, p := range pipes {
		length := strconv.FormatFloat(p.LengthCm, 'f', prec, 64)
		if _, err := fmt.Fprintf(w, "%0*d: %*s cm", indexWidth, p.Index, lengthWidth, length); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if f.ShowFrequency {
			if _, err := fmt.Fprintf(w, " (%.*f)", prec, p.FrequencyHz); err != nil {
				return fmt.Errorf("report: %w", err)
			}
		}
		if f.ShowNotes {
			if _, err := fmt.Fprintf(w, " %s", NoteName(p.FrequencyHz)); err != nil {
				return fmt.Errorf("report: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	return nil
}
