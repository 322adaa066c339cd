package attrfilter

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
	"github.com/ironsheep/morph-tools-mcp/internal/label"
)

// Attribute selects the per-component criterion of an opening.
type Attribute int

const (
	// Area is the cell count of a component.
	Area Attribute = iota

	// BoxDiagonal is the Euclidean length of the component's bounding
	// box diagonal, measured in cells ((max-min+1) per axis).
	BoxDiagonal
)

// String returns the attribute's wire name.
func (a Attribute) String() string {
	switch a {
	case Area:
		return "area"
	case BoxDiagonal:
		return "box-diagonal"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// ByName resolves an attribute from its wire name.
func ByName(name string) (Attribute, error) {
	switch name {
	case "area", "":
		return Area, nil
	case "box-diagonal":
		return BoxDiagonal, nil
	default:
		return 0, fmt.Errorf("unknown attribute %q (want area or box-diagonal)", name)
	}
}

// AreaOpening suppresses every bright structure of gray whose cell
// count at any threshold level stays below lambda, leveling it to the
// value of its surroundings. lambda <= 1 returns an unchanged copy.
func AreaOpening(gray grid.Grid, lambda float64, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	return opening(gray, Area, lambda, conn, mon)
}

// BoxDiagonalOpening is AreaOpening with the bounding-box diagonal
// criterion: structures whose box diagonal stays below lambda are
// suppressed.
func BoxDiagonalOpening(gray grid.Grid, lambda float64, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	return opening(gray, BoxDiagonal, lambda, conn, mon)
}

// Opening runs the attribute opening selected by attr.
func Opening(gray grid.Grid, attr Attribute, lambda float64, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	return opening(gray, attr, lambda, conn, mon)
}

// BinaryAreaOpening keeps only the connected foreground components of
// binary with at least lambda cells. The result is binary with
// foreground 255.
func BinaryAreaOpening(binary grid.Grid, lambda int, conn grid.Connectivity, mon grid.Monitor) (*grid.Uint8, error) {
	labels, _, err := label.Label(binary, conn, 32, mon)
	if err != nil {
		return nil, err
	}
	sizes := label.Sizes(labels)

	s := binary.Dims()
	out := grid.NewUint8(s)
	n := s.N()
	for i := 0; i < n; i++ {
		if l := int(labels.ValueAt(i)); l > 0 && sizes[l] >= lambda {
			out.Pix[i] = 255
		}
	}
	return out, nil
}

// forest is the union-find state of one grayscale opening. Roots carry
// the accumulated attribute of their tree; parent pointers always lead
// from brighter to darker samples.
type forest struct {
	parent []int // -1 while unprocessed, self for roots
	area   []int64
	box    []box // only allocated for the diagonal criterion
	valid  []bool
}

type box struct {
	minX, minY, minZ int
	maxX, maxY, maxZ int
}

func (b box) diagonal() float64 {
	dx := float64(b.maxX - b.minX + 1)
	dy := float64(b.maxY - b.minY + 1)
	dz := float64(b.maxZ - b.minZ + 1)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (b box) union(o box) box {
	if o.minX < b.minX {
		b.minX = o.minX
	}
	if o.minY < b.minY {
		b.minY = o.minY
	}
	if o.minZ < b.minZ {
		b.minZ = o.minZ
	}
	if o.maxX > b.maxX {
		b.maxX = o.maxX
	}
	if o.maxY > b.maxY {
		b.maxY = o.maxY
	}
	if o.maxZ > b.maxZ {
		b.maxZ = o.maxZ
	}
	return b
}

// find returns the root of p with path compression. Iterative: first
// walk to the root, then repoint the chain.
func (f *forest) find(p int) int {
	r := p
	for f.parent[r] != r {
		r = f.parent[r]
	}
	for f.parent[p] != r {
		p, f.parent[p] = f.parent[p], r
	}
	return r
}

func opening(gray grid.Grid, attr Attribute, lambda float64, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	s := gray.Dims()
	if err := conn.Validate(s); err != nil {
		return nil, err
	}
	mon = grid.EnsureMonitor(mon)

	n := s.N()
	if lambda <= 0 {
		return gray.Clone(), nil
	}

	// Process samples in decreasing value order, raster order within
	// equal values. The stable tie-break makes the forest, and with it
	// the output, fully deterministic.
	mon.Status("sorting samples")
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return gray.ValueAt(order[a]) > gray.ValueAt(order[b])
	})

	f := &forest{
		parent: make([]int, n),
		area:   make([]int64, n),
		valid:  make([]bool, n),
	}
	for i := range f.parent {
		f.parent[i] = -1
	}
	if attr == BoxDiagonal {
		f.box = make([]box, n)
	}
	attrOf := func(r int) float64 {
		if attr == BoxDiagonal {
			return f.box[r].diagonal()
		}
		return float64(f.area[r])
	}

	mon.Status("building components")
	offs := conn.Offsets()
	for k, p := range order {
		f.parent[p] = p
		f.area[p] = 1
		x, y, z := s.Coords(p)
		if attr == BoxDiagonal {
			f.box[p] = box{x, y, z, x, y, z}
		}
		pv := gray.ValueAt(p)

		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) {
				continue
			}
			q := s.Index(nx, ny, nz)
			if f.parent[q] < 0 {
				// Not processed yet: darker, or a later tie.
				continue
			}
			r := f.find(q)
			if r == p {
				continue
			}
			if gray.ValueAt(r) == pv || !f.valid[r] {
				// Merge r's tree under the current sample.
				f.parent[r] = p
				f.area[p] += f.area[r]
				if attr == BoxDiagonal {
					f.box[p] = f.box[p].union(f.box[r])
				}
				if f.valid[r] {
					f.valid[p] = true
				}
			} else {
				// r is a finalized brighter component; the component
				// growing at p inherits its validity and stops
				// accumulating across the boundary.
				f.valid[p] = true
			}
		}
		if !f.valid[p] && attrOf(p) >= lambda {
			f.valid[p] = true
		}
		if k%4096 == 0 {
			mon.Progress(k, 2*n)
		}
	}

	// Resolve in increasing value order: every parent was processed
	// after its children, so its output value is already final here.
	mon.Status("resolving levels")
	out := gray.NewLike()
	for k := n - 1; k >= 0; k-- {
		p := order[k]
		if f.parent[p] == p {
			out.SetValueAt(p, gray.ValueAt(p))
		} else {
			out.SetValueAt(p, out.ValueAt(f.parent[p]))
		}
		if k%4096 == 0 {
			mon.Progress(2*n-k, 2*n)
		}
	}
	mon.Progress(2*n, 2*n)
	return out, nil
}
