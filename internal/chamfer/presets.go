package chamfer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Published 2D masks. Integer presets carry the same number in both
// weight domains; QuasiEuclidean pairs exact float weights with the
// usual 10/14 scaled integers.
var (
	// Chessboard weights every 3x3 neighbor 1, yielding the L-infinity
	// metric.
	Chessboard = mustMask("chessboard",
		join(orbit2(1, 1, 1, 0), orbit2(1, 1, 1, 1)))

	// CityBlock weights orthogonal steps 1 and diagonal steps 2,
	// yielding the L1 (Manhattan) metric.
	CityBlock = mustMask("city-block",
		join(orbit2(1, 1, 1, 0), orbit2(2, 2, 1, 1)))

	// Weights23 is the 2-3 mask, a coarse Euclidean approximation.
	Weights23 = mustMask("weights-2-3",
		join(orbit2(2, 2, 1, 0), orbit2(3, 3, 1, 1)))

	// Borgefors is the optimal 3x3 integer mask (3,4).
	Borgefors = mustMask("borgefors",
		join(orbit2(3, 3, 1, 0), orbit2(4, 4, 1, 1)))

	// ChessKnight is the 5x5 mask (5,7,11) adding knight moves.
	ChessKnight = mustMask("chess-knight",
		join(orbit2(5, 5, 1, 0), orbit2(7, 7, 1, 1), orbit2(11, 11, 1, 2)))

	// Verwer is the optimal 3x3 mask at scale 12 (12,17).
	Verwer = mustMask("verwer",
		join(orbit2(12, 12, 1, 0), orbit2(17, 17, 1, 1)))

	// QuasiEuclidean uses exact float weights (1, sqrt 2) and the
	// scaled 10/14 integers for the short domain.
	QuasiEuclidean = mustMask("quasi-euclidean",
		join(orbit2(10, 1, 1, 0), orbit2(14, math.Sqrt2, 1, 1)))
)

// Published 3D masks.
var (
	// Chessboard3D weights every 3x3x3 neighbor 1.
	Chessboard3D = mustMask("chessboard",
		join(orbit3(1, 1, 1, 0, 0), orbit3(1, 1, 1, 1, 0), orbit3(1, 1, 1, 1, 1)))

	// CityBlock3D weights face, edge, and vertex neighbors 1, 2, 3.
	CityBlock3D = mustMask("city-block",
		join(orbit3(1, 1, 1, 0, 0), orbit3(2, 2, 1, 1, 0), orbit3(3, 3, 1, 1, 1)))

	// Borgefors3D is the classic 3x3x3 integer mask (3,4,5).
	Borgefors3D = mustMask("borgefors",
		join(orbit3(3, 3, 1, 0, 0), orbit3(4, 4, 1, 1, 0), orbit3(5, 5, 1, 1, 1)))

	// Svensson3D is the 5x5x5 mask (3,4,5,7) extending Borgefors3D
	// with knight-like offsets.
	Svensson3D = mustMask("svensson",
		join(orbit3(3, 3, 1, 0, 0), orbit3(4, 4, 1, 1, 0), orbit3(5, 5, 1, 1, 1),
			orbit3(7, 7, 1, 1, 2)))

	// QuasiEuclidean3D uses exact float weights (1, sqrt 2, sqrt 3)
	// with 10/14/17 scaled integers.
	QuasiEuclidean3D = mustMask("quasi-euclidean",
		join(orbit3(10, 1, 1, 0, 0), orbit3(14, math.Sqrt2, 1, 1, 0),
			orbit3(17, math.Sqrt(3), 1, 1, 1)))
)

var (
	presets2D = map[string]*Mask{
		"chessboard":      Chessboard,
		"city-block":      CityBlock,
		"weights-2-3":     Weights23,
		"borgefors":       Borgefors,
		"chess-knight":    ChessKnight,
		"verwer":          Verwer,
		"quasi-euclidean": QuasiEuclidean,
	}
	presets3D = map[string]*Mask{
		"chessboard":      Chessboard3D,
		"city-block":      CityBlock3D,
		"borgefors":       Borgefors3D,
		"svensson":        Svensson3D,
		"quasi-euclidean": QuasiEuclidean3D,
	}
)

// ByName resolves a preset mask from its string key, matching the
// dimensionality of the target grid. Keys are case-insensitive and
// accept spaces or underscores for dashes. Unknown keys fail with
// ErrInvalidMask.
func ByName(name string, is3D bool) (*Mask, error) {
	table := presets2D
	if is3D {
		table = presets3D
	}
	if m, ok := table[normalizeName(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: unknown preset %q (have %s)",
		grid.ErrInvalidMask, name, strings.Join(PresetNames(is3D), ", "))
}

// PresetNames lists the preset keys for one dimensionality, sorted.
func PresetNames(is3D bool) []string {
	table := presets2D
	if is3D {
		table = presets3D
	}
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "_", "-")
	return n
}

func mustMask(name string, offsets []WeightedOffset) *Mask {
	m, err := New(name, offsets)
	if err != nil {
		panic(err)
	}
	return m
}

func join(groups ...[]WeightedOffset) []WeightedOffset {
	var out []WeightedOffset
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// orbit2 expands a planar prototype offset into every distinct
// coordinate permutation and sign combination, all at the same weight.
func orbit2(ws uint16, wf float64, x, y int) []WeightedOffset {
	return expand(ws, wf, [][3]int{{x, y, 0}, {y, x, 0}})
}

// orbit3 is orbit2 over all three coordinates.
func orbit3(ws uint16, wf float64, x, y, z int) []WeightedOffset {
	return expand(ws, wf, [][3]int{
		{x, y, z}, {x, z, y}, {y, x, z}, {y, z, x}, {z, x, y}, {z, y, x},
	})
}

func expand(ws uint16, wf float64, protos [][3]int) []WeightedOffset {
	seen := make(map[grid.Offset]bool)
	var out []WeightedOffset
	for _, p := range protos {
		for _, sx := range signsFor(p[0]) {
			for _, sy := range signsFor(p[1]) {
				for _, sz := range signsFor(p[2]) {
					o := grid.Offset{DX: p[0] * sx, DY: p[1] * sy, DZ: p[2] * sz}
					if o == (grid.Offset{}) || seen[o] {
						continue
					}
					seen[o] = true
					out = append(out, WeightedOffset{Offset: o, WeightShort: ws, Weight: wf})
				}
			}
		}
	}
	return out
}

func signsFor(v int) []int {
	if v == 0 {
		return []int{1}
	}
	return []int{1, -1}
}
