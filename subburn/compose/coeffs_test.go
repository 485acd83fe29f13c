package compose

import (
	"testing"

	"github.com/ausocean/av/subburn/frame"
)

// TestDeriveCoeffsCenter420 follows the original decoder's chroma
// coefficient derivation directly: wX = wY = 4-2 = 2, axis values are
// ((base[2]+base[3])/2, (base[3]+base[4])/2, (base[4]+base[5])/2,
// (base[5]+base[6])/2) = (18, 18, 6, 2).
func TestDeriveCoeffsCenter420(t *testing.T) {
	c := DeriveCoeffs(frame.ChromaCenter, 1, 1)
	want := [4]uint32{18, 18, 6, 2}
	if c.X != want {
		t.Errorf("X = %v, want %v", c.X, want)
	}
	if c.Y != want {
		t.Errorf("Y = %v, want %v", c.Y, want)
	}
}

// TestDeriveCoeffsAxisSymmetry is the spec's invariant: for CENTER/4:2:0
// (and any siting where wshift == hshift and the siting treats both axes
// alike), the horizontal and vertical kernels match.
func TestDeriveCoeffsAxisSymmetry(t *testing.T) {
	for _, loc := range []frame.ChromaLocation{frame.ChromaCenter, frame.ChromaUnspecified} {
		c := DeriveCoeffs(loc, 1, 1)
		if c.X != c.Y {
			t.Errorf("%v: X=%v Y=%v, want equal", loc, c.X, c.Y)
		}
	}
}

// TestDeriveCoeffsBottomMatchesTop asserts the preserved BOTTOM/TOPLEFT
// fall-through (§9): BOTTOM's vertical kernel equals TOP's, not a
// distinct value of its own.
func TestDeriveCoeffsBottomMatchesTop(t *testing.T) {
	top := DeriveCoeffs(frame.ChromaTop, 1, 1)
	bottom := DeriveCoeffs(frame.ChromaBottom, 1, 1)
	if top.Y != bottom.Y {
		t.Errorf("TOP.Y=%v BOTTOM.Y=%v, want equal (preserved fall-through)", top.Y, bottom.Y)
	}
}

func TestDeriveCoeffs444NoSubsampling(t *testing.T) {
	c := DeriveCoeffs(frame.ChromaCenter, 0, 0)
	if c.X[0] == 0 {
		t.Error("expected a non-zero weight for the single used tap at wshift=0")
	}
}
