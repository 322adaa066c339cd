package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/morph-tools-mcp/internal/chamfer"
	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// bruteGeodesic is a deliberately slow reference: relax every region
// cell against every neighbor until nothing changes.
func bruteGeodesic(marker, mask *grid.Uint8, weights *chamfer.Mask) []float64 {
	s := marker.Dims()
	n := s.N()
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		if mask.Pix[i] == 0 || marker.Pix[i] == 0 {
			dist[i] = math.Inf(1)
		}
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if mask.Pix[i] == 0 {
				continue
			}
			x, y, z := s.Coords(i)
			for _, o := range weights.Offsets() {
				nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
				if !s.Contains(nx, ny, nz) || mask.At(nx, ny, nz) == 0 {
					continue
				}
				if c := dist[s.Index(nx, ny, nz)] + float64(o.WeightShort); c < dist[i] {
					dist[i] = c
					changed = true
				}
			}
		}
	}
	return dist
}

func TestGeodesicShort_SpiralNeedsCorrection(t *testing.T) {
	// A spiral corridor: the path from the seed S to the far end winds
	// against both scan orders, so the two raster sweeps alone cannot
	// settle it and the FIFO correction must finish the job.
	region := binary(
		"#######",
		"......#",
		"#####.#",
		"#.#.#.#",
		"#.###.#",
		"#.....#",
		"#######",
	)
	marker := grid.NewUint8(region.Dims())
	marker.Set(0, 0, 0, 255)

	out, err := GeodesicShort(marker, region, chamfer.CityBlock, false, nil)
	if err != nil {
		t.Fatalf("GeodesicShort failed: %v", err)
	}

	want := bruteGeodesic(marker, region, chamfer.CityBlock)
	s := region.Dims()
	for i := 0; i < s.N(); i++ {
		got := float64(out.Pix[i])
		w := want[i]
		if math.IsInf(w, 1) {
			w = math.MaxUint16
		}
		if got != w {
			x, y, _ := s.Coords(i)
			t.Errorf("cell (%d,%d): got %g, want %g", x, y, got, w)
		}
	}

	// The spiral's end cell is a short straight line from the seed but
	// a long walk along the corridor.
	if d := out.At(2, 3, 0); d <= 20 {
		t.Errorf("spiral end: got %d, want a corridor distance > 20", d)
	}
}

func TestGeodesicShort_UnconstrainedMatchesTransform(t *testing.T) {
	marker := binary(
		"........",
		"..##....",
		"..##....",
		"........",
		"......#.",
		"........",
	)
	region := grid.NewUint8(marker.Dims())
	for i := range region.Pix {
		region.Pix[i] = 255
	}

	geo, err := GeodesicShort(marker, region, chamfer.Borgefors, false, nil)
	if err != nil {
		t.Fatalf("GeodesicShort failed: %v", err)
	}

	plain, err := TransformShort(grid.Invert(marker), chamfer.Borgefors, false, nil)
	if err != nil {
		t.Fatalf("TransformShort failed: %v", err)
	}

	for i := range geo.Pix {
		if geo.Pix[i] != plain.Pix[i] {
			x, y, _ := marker.Dims().Coords(i)
			t.Errorf("cell (%d,%d): geodesic %d != plain %d", x, y, geo.Pix[i], plain.Pix[i])
		}
	}
}

func TestGeodesicShort_OutsideAndUnreached(t *testing.T) {
	// Two separate corridors; the seed sits in the left one.
	region := binary(
		"##.##",
		"##.##",
	)
	marker := grid.NewUint8(region.Dims())
	marker.Set(0, 0, 0, 255)

	out, err := GeodesicShort(marker, region, chamfer.CityBlock, false, nil)
	if err != nil {
		t.Fatalf("GeodesicShort failed: %v", err)
	}

	if got := out.At(0, 0, 0); got != 0 {
		t.Errorf("seed: got %d, want 0", got)
	}
	if got := out.At(1, 1, 0); got != 2 {
		t.Errorf("left corridor: got %d, want 2", got)
	}
	if got := out.At(2, 0, 0); got != math.MaxUint16 {
		t.Errorf("outside region: got %d, want %d", got, math.MaxUint16)
	}
	if got := out.At(3, 0, 0); got != math.MaxUint16 {
		t.Errorf("unreached corridor: got %d, want %d", got, math.MaxUint16)
	}
}

func TestGeodesicFloat_NormalizedUnits(t *testing.T) {
	region := binary(
		"####",
		"####",
	)
	marker := grid.NewUint8(region.Dims())
	marker.Set(0, 0, 0, 255)

	out, err := GeodesicFloat(marker, region, chamfer.QuasiEuclidean, true, nil)
	if err != nil {
		t.Fatalf("GeodesicFloat failed: %v", err)
	}

	if got := float64(out.At(3, 0, 0)); math.Abs(got-3) > 1e-6 {
		t.Errorf("straight run: got %g, want 3", got)
	}
	if got := float64(out.At(1, 1, 0)); math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Errorf("diagonal step: got %g, want sqrt(2)", got)
	}
}

func TestGeodesicShort_SizeMismatch(t *testing.T) {
	marker := grid.NewUint8(grid.P2(4, 4))
	region := grid.NewUint8(grid.P2(5, 4))

	_, err := GeodesicShort(marker, region, chamfer.CityBlock, false, nil)
	if err == nil {
		t.Fatal("mismatched sizes accepted")
	}
	if !errors.Is(err, grid.ErrSizeMismatch) {
		t.Errorf("error is not ErrSizeMismatch: %v", err)
	}
}
