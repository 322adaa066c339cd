package label

import (
	"fmt"
	"math"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Label assigns a distinct positive label to every connected component
// of nonzero cells in img, returning the label map and the component
// count. Components are numbered from 1 in the order their first cell
// appears in a raster scan.
//
// bits selects the label map storage: 8, 16, or 32 for a Uint8,
// Uint16, or Int32 grid. A component count exceeding the chosen width
// fails with ErrTooManyRegions; retry with a wider width.
func Label(img grid.Grid, conn grid.Connectivity, bits int, mon grid.Monitor) (grid.Grid, int, error) {
	s := img.Dims()
	if err := conn.Validate(s); err != nil {
		return nil, 0, err
	}

	var out grid.Grid
	var maxLabels int
	switch bits {
	case 8:
		out, maxLabels = grid.NewUint8(s), math.MaxUint8
	case 16:
		out, maxLabels = grid.NewUint16(s), math.MaxUint16
	case 32:
		out, maxLabels = grid.NewInt32(s), math.MaxInt32
	default:
		return nil, 0, fmt.Errorf("unsupported label width %d: want 8, 16, or 32", bits)
	}
	mon = grid.EnsureMonitor(mon)
	mon.Status("labeling components")

	offs := conn.Offsets()
	n := s.N()
	count := 0
	var stack []int
	for i := 0; i < n; i++ {
		if img.ValueAt(i) == 0 || out.ValueAt(i) != 0 {
			continue
		}
		count++
		if count > maxLabels {
			return nil, 0, fmt.Errorf("%w: more than %d components for a %d-bit label map",
				grid.ErrTooManyRegions, maxLabels, bits)
		}
		stack = floodFill(img, out, s, offs, i, float64(count), stack)
		mon.Progress(i+1, n)
	}
	mon.Progress(n, n)
	return out, count, nil
}

// floodFill marks every cell of the component containing seed with the
// label, walking neighbors through an explicit stack. The stack slice
// is returned so callers can reuse its capacity.
func floodFill(img, out grid.Grid, s grid.Size, offs []grid.Offset, seed int, label float64, stack []int) []int {
	out.SetValueAt(seed, label)
	stack = append(stack[:0], seed)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y, z := s.Coords(p)
		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) {
				continue
			}
			q := s.Index(nx, ny, nz)
			if img.ValueAt(q) == 0 || out.ValueAt(q) != 0 {
				continue
			}
			out.SetValueAt(q, label)
			stack = append(stack, q)
		}
	}
	return stack
}
