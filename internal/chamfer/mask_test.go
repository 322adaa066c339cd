package chamfer

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// w builds a planar weighted offset with matching weights in both
// domains.
func w(dx, dy int, weight uint16) WeightedOffset {
	return WeightedOffset{
		Offset:      grid.Offset{DX: dx, DY: dy},
		WeightShort: weight,
		Weight:      float64(weight),
	}
}

// crossAndDiag builds a full 3x3 mask offset list with the given
// orthogonal and diagonal weights.
func crossAndDiag(a, b uint16) []WeightedOffset {
	return []WeightedOffset{
		w(1, 0, a), w(-1, 0, a), w(0, 1, a), w(0, -1, a),
		w(1, 1, b), w(-1, 1, b), w(1, -1, b), w(-1, -1, b),
	}
}

func TestNew_Valid(t *testing.T) {
	m, err := New("test", crossAndDiag(3, 4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.Is3D() {
		t.Error("planar mask reported as 3D")
	}
	if got := len(m.Offsets()); got != 8 {
		t.Errorf("offset count: got %d, want 8", got)
	}
	if got := m.NormalizationFactor(); got != 3 {
		t.Errorf("NormalizationFactor: got %g, want 3", got)
	}
	if got := m.ShortNormalizationFactor(); got != 3 {
		t.Errorf("ShortNormalizationFactor: got %d, want 3", got)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		offsets []WeightedOffset
	}{
		{"empty", nil},
		{"zero offset", append(crossAndDiag(1, 2), w(0, 0, 1))},
		{"zero weight", []WeightedOffset{
			w(1, 0, 0), w(-1, 0, 0), w(0, 1, 0), w(0, -1, 0),
		}},
		{"missing negation", []WeightedOffset{
			w(1, 0, 1), w(-1, 0, 1), w(0, 1, 1), w(0, -1, 1), w(1, 1, 2),
		}},
		{"asymmetric weights", []WeightedOffset{
			w(1, 0, 1), w(-1, 0, 2), w(0, 1, 1), w(0, -1, 1),
		}},
		{"missing axis offsets", []WeightedOffset{
			w(1, 1, 1), w(-1, 1, 1), w(1, -1, 1), w(-1, -1, 1),
		}},
		{"decreasing weights", crossAndDiag(4, 3)},
		{"duplicate offset", append(crossAndDiag(1, 2), w(1, 0, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", tt.offsets)
			if err == nil {
				t.Fatal("New accepted an invalid mask")
			}
			if !errors.Is(err, grid.ErrInvalidMask) {
				t.Errorf("error is not ErrInvalidMask: %v", err)
			}
		})
	}
}

func TestMask_RasterSplit(t *testing.T) {
	for _, m := range []*Mask{CityBlock, Borgefors, ChessKnight, Borgefors3D, Svensson3D} {
		t.Run(m.Name(), func(t *testing.T) {
			fwd, bwd := m.ForwardOffsets(), m.BackwardOffsets()
			if len(fwd) != len(bwd) {
				t.Fatalf("split is uneven: %d forward, %d backward", len(fwd), len(bwd))
			}
			if len(fwd)+len(bwd) != len(m.Offsets()) {
				t.Fatalf("split loses offsets: %d+%d != %d", len(fwd), len(bwd), len(m.Offsets()))
			}

			// Forward offsets point at cells visited earlier in raster
			// order.
			for _, o := range fwd {
				if !precedesRaster(o.Offset) {
					t.Errorf("forward offset (%d,%d,%d) does not precede in raster order", o.DX, o.DY, o.DZ)
				}
			}

			// Backward offsets are exactly the negations of the forward
			// ones, at the same weights.
			negs := make(map[grid.Offset]WeightedOffset, len(fwd))
			for _, o := range fwd {
				negs[grid.Offset{DX: -o.DX, DY: -o.DY, DZ: -o.DZ}] = o
			}
			for _, o := range bwd {
				f, ok := negs[o.Offset]
				if !ok {
					t.Errorf("backward offset (%d,%d,%d) has no forward negation", o.DX, o.DY, o.DZ)
					continue
				}
				if f.Weight != o.Weight || f.WeightShort != o.WeightShort {
					t.Errorf("offset (%d,%d,%d) weight differs from its negation", o.DX, o.DY, o.DZ)
				}
			}
		})
	}
}

// precedesRaster reports whether the offset points at a cell scanned
// before the current one in z-then-y-then-x raster order.
func precedesRaster(o grid.Offset) bool {
	if o.DZ != 0 {
		return o.DZ < 0
	}
	if o.DY != 0 {
		return o.DY < 0
	}
	return o.DX < 0
}

func TestPresets_OffsetCounts(t *testing.T) {
	tests := []struct {
		m    *Mask
		want int
	}{
		{Chessboard, 8},
		{CityBlock, 8},
		{Weights23, 8},
		{Borgefors, 8},
		{Verwer, 8},
		{QuasiEuclidean, 8},
		{ChessKnight, 16},
		{Chessboard3D, 26},
		{CityBlock3D, 26},
		{Borgefors3D, 26},
		{QuasiEuclidean3D, 26},
		{Svensson3D, 50},
	}

	for _, tt := range tests {
		if got := len(tt.m.Offsets()); got != tt.want {
			t.Errorf("%s: got %d offsets, want %d", tt.m.Name(), got, tt.want)
		}
	}
}

func TestPresets_Normalization(t *testing.T) {
	if got := Borgefors.NormalizationFactor(); got != 3 {
		t.Errorf("borgefors: got %g, want 3", got)
	}
	if got := ChessKnight.ShortNormalizationFactor(); got != 5 {
		t.Errorf("chess-knight: got %d, want 5", got)
	}
	if got := QuasiEuclidean.NormalizationFactor(); got != 1 {
		t.Errorf("quasi-euclidean float: got %g, want 1", got)
	}
	if got := QuasiEuclidean.ShortNormalizationFactor(); got != 10 {
		t.Errorf("quasi-euclidean short: got %d, want 10", got)
	}
}

func TestPresets_QuasiEuclideanFloatWeights(t *testing.T) {
	var diag float64
	for _, o := range QuasiEuclidean.Offsets() {
		if o.DX != 0 && o.DY != 0 {
			diag = o.Weight
			break
		}
	}
	if math.Abs(diag-math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal weight: got %g, want sqrt(2)", diag)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		is3D bool
		want *Mask
	}{
		{"borgefors", false, Borgefors},
		{"Borgefors", false, Borgefors},
		{"city block", false, CityBlock},
		{"city_block", false, CityBlock},
		{"chess-knight", false, ChessKnight},
		{"borgefors", true, Borgefors3D},
		{"svensson", true, Svensson3D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ByName(tt.name, tt.is3D)
			if err != nil {
				t.Fatalf("ByName failed: %v", err)
			}
			if m != tt.want {
				t.Errorf("got mask %q, want %q", m.Name(), tt.want.Name())
			}
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("octagon", false)
	if err == nil {
		t.Fatal("ByName accepted an unknown preset")
	}
	if !errors.Is(err, grid.ErrInvalidMask) {
		t.Errorf("error is not ErrInvalidMask: %v", err)
	}
}

func TestMask_ValidateFor(t *testing.T) {
	planar := grid.P2(8, 8)
	volume := grid.P3(8, 8, 4)

	if err := Borgefors.ValidateFor(planar); err != nil {
		t.Errorf("2D mask on 2D grid rejected: %v", err)
	}
	if err := Borgefors3D.ValidateFor(volume); err != nil {
		t.Errorf("3D mask on 3D grid rejected: %v", err)
	}
	if err := Borgefors.ValidateFor(volume); !errors.Is(err, grid.ErrInvalidMask) {
		t.Errorf("2D mask on 3D grid: got %v, want ErrInvalidMask", err)
	}
	if err := Borgefors3D.ValidateFor(planar); !errors.Is(err, grid.ErrInvalidMask) {
		t.Errorf("3D mask on 2D grid: got %v, want ErrInvalidMask", err)
	}
}
