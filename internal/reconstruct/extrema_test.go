package reconstruct

import (
	"testing"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

func TestRegionalMaxima_PeaksAndPlateaus(t *testing.T) {
	// One two-cell plateau at 70 and one single-cell peak at 50.
	relief := gray8(
		"0000000",
		"0770000",
		"0000050",
		"0000000",
	)

	out, err := RegionalMaxima(relief, grid.C8, nil)
	if err != nil {
		t.Fatalf("RegionalMaxima failed: %v", err)
	}

	want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {5, 2}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			wantOn := want[[2]int{x, y}]
			got := out.At(x, y, 0) != 0
			if got != wantOn {
				t.Errorf("cell (%d,%d): marked=%v, want %v", x, y, got, wantOn)
			}
		}
	}
}

func TestRegionalMaxima_ConstantImage(t *testing.T) {
	relief := grid.NewUint8(grid.P2(3, 3))

	out, err := RegionalMaxima(relief, grid.C4, nil)
	if err != nil {
		t.Fatalf("RegionalMaxima failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 255 {
			t.Errorf("pixel %d: got %d, want 255 (one global plateau)", i, v)
		}
	}
}

func TestRegionalMinima_IsDualOfMaxima(t *testing.T) {
	relief := gray8(
		"9753579",
		"8642468",
		"9753579",
	)

	minima, err := RegionalMinima(relief, grid.C4, nil)
	if err != nil {
		t.Fatalf("RegionalMinima failed: %v", err)
	}
	maxima, err := RegionalMaxima(grid.Invert(relief), grid.C4, nil)
	if err != nil {
		t.Fatalf("RegionalMaxima failed: %v", err)
	}
	for i := range minima.Pix {
		if minima.Pix[i] != maxima.Pix[i] {
			t.Errorf("pixel %d: minima %d != inverted maxima %d", i, minima.Pix[i], maxima.Pix[i])
		}
	}
}

func TestRegionalMaxima_Volume(t *testing.T) {
	s := grid.P3(3, 3, 3)
	relief := grid.NewUint8(s)
	relief.Set(1, 1, 1, 80)

	out, err := RegionalMaxima(relief, grid.C26, nil)
	if err != nil {
		t.Fatalf("RegionalMaxima failed: %v", err)
	}
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				wantOn := x == 1 && y == 1 && z == 1
				if got := out.At(x, y, z) != 0; got != wantOn {
					t.Errorf("cell (%d,%d,%d): marked=%v, want %v", x, y, z, got, wantOn)
				}
			}
		}
	}
}

func TestExtendedMaxima_DynamicFiltersPeaks(t *testing.T) {
	// Peaks of height 90 and 40 over a zero base.
	relief := gray8(
		"00000000",
		"09000040",
		"09900040",
		"00000000",
	)

	// h=50 keeps only the tall peak.
	tall, err := ExtendedMaxima(relief, 50, grid.C8, nil)
	if err != nil {
		t.Fatalf("ExtendedMaxima failed: %v", err)
	}
	wantTall := map[[2]int]bool{{1, 1}: true, {1, 2}: true, {2, 2}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			wantOn := wantTall[[2]int{x, y}]
			if got := tall.At(x, y, 0) != 0; got != wantOn {
				t.Errorf("h=50 cell (%d,%d): marked=%v, want %v", x, y, got, wantOn)
			}
		}
	}

	// h=20 keeps both.
	both, err := ExtendedMaxima(relief, 20, grid.C8, nil)
	if err != nil {
		t.Fatalf("ExtendedMaxima failed: %v", err)
	}
	if both.At(6, 1, 0) == 0 || both.At(6, 2, 0) == 0 {
		t.Error("h=20 should keep the 40-high peak")
	}
	if both.At(1, 1, 0) == 0 {
		t.Error("h=20 should keep the 90-high peak")
	}
}

func TestExtendedMinima_OnInvertedRelief(t *testing.T) {
	relief := gray8(
		"99999999",
		"90999959",
		"90099959",
		"99999999",
	)

	basins, err := ExtendedMinima(relief, 50, grid.C8, nil)
	if err != nil {
		t.Fatalf("ExtendedMinima failed: %v", err)
	}

	// The 0-level basin is 90 deep and survives h=50; the 50-level
	// basin is only 40 deep and gets filled.
	wantOn := map[[2]int]bool{{1, 1}: true, {1, 2}: true, {2, 2}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if got := basins.At(x, y, 0) != 0; got != wantOn[[2]int{x, y}] {
				t.Errorf("cell (%d,%d): marked=%v, want %v", x, y, got, wantOn[[2]int{x, y}])
			}
		}
	}
}

func TestExtendedMaxima_NegativeDynamic(t *testing.T) {
	if _, err := ExtendedMaxima(grid.NewUint8(grid.P2(2, 2)), -1, grid.C4, nil); err == nil {
		t.Fatal("negative dynamic accepted")
	}
}
