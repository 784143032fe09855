package tuning

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pipes/internal/testutil"
)

const middleC = 261.6255653005987

func TestNewChromaticTableSize(t *testing.T) {
	tbl, err := NewChromaticTable(middleC, 12)
	if err != nil {
		t.Fatalf("NewChromaticTable() error = %v", err)
	}
	if tbl.Len() != 12 {
		t.Fatalf("len = %d, want 12", tbl.Len())
	}
	if tbl.At(0) != middleC {
		t.Fatalf("entry 0 = %v, want exactly %v", tbl.At(0), middleC)
	}
	if tbl.Fundamental() != middleC {
		t.Fatalf("Fundamental() = %v, want exactly %v", tbl.Fundamental(), middleC)
	}
	testutil.RequireFinite(t, tbl.Frequencies())
}

func TestNewChromaticTableRecurrence(t *testing.T) {
	tbl, err := NewChromaticTable(middleC, 12)
	if err != nil {
		t.Fatalf("NewChromaticTable() error = %v", err)
	}

	// Entries must match the running product exactly, not a closed-form
	// fundamental*ratio^k, which rounds differently.
	ratio := math.Pow(2, 1.0/12)
	want := middleC
	for i := 1; i < tbl.Len(); i++ {
		want *= ratio
		if tbl.At(i) != want {
			t.Fatalf("entry %d = %v, want exactly %v", i, tbl.At(i), want)
		}
	}
}

func TestNewChromaticTableTopEntryBelowOctave(t *testing.T) {
	tbl, err := NewChromaticTable(middleC, 12)
	if err != nil {
		t.Fatalf("NewChromaticTable() error = %v", err)
	}
	top := tbl.At(tbl.Len() - 1)
	if top >= 2*middleC {
		t.Fatalf("top entry %v reaches the octave %v; table must stop short", top, 2*middleC)
	}
}

func TestNewChromaticTableNonStandardDivisions(t *testing.T) {
	for _, steps := range []int{1, 5, 19, 31, 53} {
		tbl, err := NewChromaticTable(440, steps)
		if err != nil {
			t.Fatalf("steps=%d: error = %v", steps, err)
		}
		if tbl.Len() != steps {
			t.Fatalf("steps=%d: len = %d", steps, tbl.Len())
		}
		testutil.RequireFinite(t, tbl.Frequencies())
	}
}

func TestNewChromaticTableErrors(t *testing.T) {
	if _, err := NewChromaticTable(0, 12); !errors.Is(err, ErrZeroFundamental) {
		t.Fatalf("fundamental=0: error = %v, want ErrZeroFundamental", err)
	}
	if _, err := NewChromaticTable(-440, 12); !errors.Is(err, ErrZeroFundamental) {
		t.Fatalf("fundamental=-440: error = %v, want ErrZeroFundamental", err)
	}
	if _, err := NewChromaticTable(math.NaN(), 12); !errors.Is(err, ErrZeroFundamental) {
		t.Fatalf("fundamental=NaN: error = %v, want ErrZeroFundamental", err)
	}
	if _, err := NewChromaticTable(440, 0); !errors.Is(err, ErrInvalidStepCount) {
		t.Fatalf("steps=0: error = %v, want ErrInvalidStepCount", err)
	}
}

func TestChromaticTableFrequenciesIsACopy(t *testing.T) {
	tbl, err := NewChromaticTable(440, 12)
	if err != nil {
		t.Fatalf("NewChromaticTable() error = %v", err)
	}
	fs := tbl.Frequencies()
	fs[0] = 0
	if tbl.At(0) != 440 {
		t.Fatalf("table mutated through Frequencies(): %v", tbl.At(0))
	}
}
