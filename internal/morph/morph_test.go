package morph

import (
	"testing"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// gray builds an 8-bit grid from digit rows: '0'..'9' map to 0..9.
func gray(rows ...string) *grid.Uint8 {
	g := grid.NewUint8(grid.P2(len(rows[0]), len(rows)))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			g.Set(x, y, 0, row[x]-'0')
		}
	}
	return g
}

func TestDilate_SquareGrowsPoint(t *testing.T) {
	img := gray(
		"00000",
		"00000",
		"00900",
		"00000",
		"00000",
	)

	out, err := Dilate(img, Square, 1, nil)
	if err != nil {
		t.Fatalf("Dilate failed: %v", err)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0.0
			if abs(x-2) <= 1 && abs(y-2) <= 1 {
				want = 9
			}
			if got := out.Value(x, y, 0); got != want {
				t.Errorf("cell (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestDilate_CrossGrowsDiamond(t *testing.T) {
	img := gray(
		"00000",
		"00000",
		"00900",
		"00000",
		"00000",
	)

	out, err := Dilate(img, Cross, 1, nil)
	if err != nil {
		t.Fatalf("Dilate failed: %v", err)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0.0
			if abs(x-2)+abs(y-2) <= 1 {
				want = 9
			}
			if got := out.Value(x, y, 0); got != want {
				t.Errorf("cell (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestErode_RemovesThinStructure(t *testing.T) {
	// A one-cell-wide line cannot contain a radius-1 square window.
	img := gray(
		"00000",
		"99999",
		"00000",
	)

	out, err := Erode(img, Square, 1, nil)
	if err != nil {
		t.Fatalf("Erode failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := out.Value(x, y, 0); got != 0 {
				t.Errorf("cell (%d,%d): got %g, want 0", x, y, got)
			}
		}
	}
}

func TestOpen_KeepsLargePatchRemovesSpeck(t *testing.T) {
	img := gray(
		"0000000",
		"0999090",
		"0999000",
		"0999000",
		"0000000",
	)

	out, err := Open(img, Square, 1, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// The 3x3 patch survives exactly; the isolated speck at (5,1) is
	// gone.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if got := out.Value(x, y, 0); got != 9 {
				t.Errorf("patch cell (%d,%d): got %g, want 9", x, y, got)
			}
		}
	}
	if got := out.Value(5, 1, 0); got != 0 {
		t.Errorf("speck survived opening: got %g", got)
	}
}

func TestClose_FillsHole(t *testing.T) {
	img := gray(
		"99999",
		"99099",
		"99999",
	)

	out, err := Close(img, Square, 1, nil)
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := out.Value(2, 1, 0); got != 9 {
		t.Errorf("hole not closed: got %g, want 9", got)
	}
}

func TestGradient_FlatIsZeroEdgesBright(t *testing.T) {
	img := gray(
		"000999",
		"000999",
		"000999",
	)

	out, err := Gradient(img, Square, 1, nil)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			got := out.Value(x, y, 0)
			nearEdge := x >= 2 && x <= 3
			if nearEdge && got != 9 {
				t.Errorf("edge cell (%d,%d): got %g, want 9", x, y, got)
			}
			if !nearEdge && got != 0 {
				t.Errorf("flat cell (%d,%d): got %g, want 0", x, y, got)
			}
		}
	}
}

func TestFilter_NegativeRadius(t *testing.T) {
	if _, err := Erode(gray("00"), Square, -1, nil); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestShapeByName(t *testing.T) {
	if s, err := ShapeByName("cross"); err != nil || s != Cross {
		t.Fatalf("cross: got %v, %v", s, err)
	}
	if s, err := ShapeByName(""); err != nil || s != Square {
		t.Fatalf("default: got %v, %v", s, err)
	}
	if _, err := ShapeByName("disk"); err == nil {
		t.Fatal("expected error for unknown shape")
	}
}
