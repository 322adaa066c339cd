package distance

import (
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/chamfer"
	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// GeodesicShort computes the geodesic distance transform into a uint16
// grid: the weighted distance from every region cell to the nearest
// seed, following paths that never leave the region.
//
// Seeds are the cells where marker is nonzero and mask is nonzero;
// they hold 0 in the result. Cells outside the region (mask zero), and
// region cells no in-region path connects to a seed, keep 65535.
func GeodesicShort(marker, mask grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor) (*grid.Uint16, error) {
	out := grid.NewUint16(marker.Dims())
	if err := geodesic(marker, mask, weights, normalize, mon, out, shortWeight); err != nil {
		return nil, err
	}
	return out, nil
}

// GeodesicFloat is GeodesicShort in the float domain: float32 samples,
// exact float weights, +Inf for out-of-region and unreached cells.
func GeodesicFloat(marker, mask grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor) (*grid.Float32, error) {
	out := grid.NewFloat32(marker.Dims())
	if err := geodesic(marker, mask, weights, normalize, mon, out, floatWeight); err != nil {
		return nil, err
	}
	return out, nil
}

func geodesic(marker, mask grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor, out grid.Grid, wf func(chamfer.WeightedOffset) float64) error {
	if weights == nil {
		return fmt.Errorf("%w: nil mask", grid.ErrInvalidMask)
	}
	if err := grid.CheckSameSize(marker, mask); err != nil {
		return err
	}
	s := marker.Dims()
	if err := weights.ValidateFor(s); err != nil {
		return err
	}
	mon = grid.EnsureMonitor(mon)

	maxVal := out.MaxValue()
	n := s.N()
	for i := 0; i < n; i++ {
		switch {
		case mask.ValueAt(i) == 0:
			out.SetValueAt(i, maxVal)
		case marker.ValueAt(i) != 0:
			// seed, stays 0
		default:
			out.SetValueAt(i, maxVal)
		}
	}

	rows := s.Y * s.Z
	mon.Status("forward pass")
	geodesicSweep(out, mask, weights.ForwardOffsets(), wf, false, nil,
		func(row int) { mon.Progress(row, 2*rows) })

	mon.Status("backward pass")
	var updated []int
	geodesicSweep(out, mask, weights.BackwardOffsets(), wf, true, &updated,
		func(row int) { mon.Progress(rows+row, 2*rows) })

	// Sweeps alone can miss paths that wind against both scan orders,
	// so re-relax from every cell the backward sweep touched until the
	// fixed point is reached.
	mon.Status("queue correction")
	offs := weights.Offsets()
	for head := 0; head < len(updated); head++ {
		p := updated[head]
		x, y, z := s.Coords(p)
		pv := out.ValueAt(p)
		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) || mask.Value(nx, ny, nz) == 0 {
				continue
			}
			q := s.Index(nx, ny, nz)
			if cand := pv + wf(o); cand < out.ValueAt(q) {
				out.SetValueAt(q, cand)
				updated = append(updated, q)
			}
		}
	}

	if normalize {
		normalizeGrid(out, wf(weights.Offsets()[0]))
	}
	return nil
}

// geodesicSweep is one raster or anti-raster relaxation pass confined
// to the mask region. With updated non-nil, the index of every changed
// cell is appended to it.
func geodesicSweep(out grid.Grid, mask grid.Grid, offs []chamfer.WeightedOffset, wf func(chamfer.WeightedOffset) float64, backward bool, updated *[]int, rowDone func(row int)) {
	s := out.Dims()
	row := 0
	sweepRow := func(y, z int) {
		for step := 0; step < s.X; step++ {
			x := step
			if backward {
				x = s.X - 1 - step
			}
			if mask.Value(x, y, z) == 0 {
				continue
			}
			i := s.Index(x, y, z)
			v := out.ValueAt(i)
			if v == 0 {
				continue
			}
			best := v
			for _, o := range offs {
				nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
				if !s.Contains(nx, ny, nz) || mask.Value(nx, ny, nz) == 0 {
					continue
				}
				if cand := out.Value(nx, ny, nz) + wf(o); cand < best {
					best = cand
				}
			}
			if best < v {
				out.SetValueAt(i, best)
				if updated != nil {
					*updated = append(*updated, i)
				}
			}
		}
		row++
		rowDone(row)
	}

	if backward {
		for z := s.Z - 1; z >= 0; z-- {
			for y := s.Y - 1; y >= 0; y-- {
				sweepRow(y, z)
			}
		}
	} else {
		for z := 0; z < s.Z; z++ {
			for y := 0; y < s.Y; y++ {
				sweepRow(y, z)
			}
		}
	}
}
