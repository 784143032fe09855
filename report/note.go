package report

import (
	"fmt"
	"math"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the nearest 12-TET note (A4 = 440 Hz) with the signed
// deviation in cents, e.g. "A4 +0c" or "C#3 -12c". Non-positive frequencies
// have no pitch and render as "-".
func NoteName(freqHz float64) string {
	if freqHz <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return "-"
	}

	midi := 69 + 12*math.Log2(freqHz/440)
	nearest := math.Round(midi)
	cents := int(math.Round((midi - nearest) * 100))

	n := int(nearest)
	name := noteNames[((n%12)+12)%12]
	octave := int(math.Floor(nearest/12)) - 1

	return fmt.Sprintf("%s%d %+dc", name, octave, cents)
}
