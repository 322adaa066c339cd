package distance

import (
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/chamfer"
	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// TransformShort computes the chamfer distance transform of img into a
// uint16 grid using the mask's integer weights. Nonzero cells receive
// the weighted distance to the nearest zero cell; zero cells stay 0.
// Sums saturate at 65535, and cells with no path to the zero set keep
// 65535.
//
// With normalize set, finite distances are divided by the mask's short
// normalization factor and rounded to the nearest integer.
func TransformShort(img grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor) (*grid.Uint16, error) {
	out := grid.NewUint16(img.Dims())
	if err := transform(img, weights, normalize, mon, out, shortWeight); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformFloat computes the chamfer distance transform of img into a
// float32 grid using the mask's float weights. Cells with no path to
// the zero set keep +Inf.
func TransformFloat(img grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor) (*grid.Float32, error) {
	out := grid.NewFloat32(img.Dims())
	if err := transform(img, weights, normalize, mon, out, floatWeight); err != nil {
		return nil, err
	}
	return out, nil
}

func shortWeight(o chamfer.WeightedOffset) float64 { return float64(o.WeightShort) }
func floatWeight(o chamfer.WeightedOffset) float64 { return o.Weight }

func transform(img grid.Grid, weights *chamfer.Mask, normalize bool, mon grid.Monitor, out grid.Grid, wf func(chamfer.WeightedOffset) float64) error {
	if weights == nil {
		return fmt.Errorf("%w: nil mask", grid.ErrInvalidMask)
	}
	s := img.Dims()
	if err := weights.ValidateFor(s); err != nil {
		return err
	}
	mon = grid.EnsureMonitor(mon)

	// Background is the zero set; foreground starts unreached.
	maxVal := out.MaxValue()
	n := s.N()
	for i := 0; i < n; i++ {
		if img.ValueAt(i) != 0 {
			out.SetValueAt(i, maxVal)
		}
	}

	rows := s.Y * s.Z
	mon.Status("forward pass")
	forwardSweep(out, weights.ForwardOffsets(), wf, func(row int) { mon.Progress(row, 2*rows) })
	mon.Status("backward pass")
	backwardSweep(out, weights.BackwardOffsets(), wf, nil, func(row int) { mon.Progress(rows+row, 2*rows) })

	if normalize {
		normalizeGrid(out, wf(weights.Offsets()[0]))
	}
	return nil
}

// forwardSweep relaxes every cell from its forward neighbors in raster
// order. rowDone is called after each finished row.
func forwardSweep(out grid.Grid, offs []chamfer.WeightedOffset, wf func(chamfer.WeightedOffset) float64, rowDone func(row int)) {
	s := out.Dims()
	row := 0
	for z := 0; z < s.Z; z++ {
		for y := 0; y < s.Y; y++ {
			for x := 0; x < s.X; x++ {
				relax(out, s, x, y, z, offs, wf)
			}
			row++
			rowDone(row)
		}
	}
}

// backwardSweep relaxes every cell from its backward neighbors in
// anti-raster order. When updated is non-nil, the linear index of every
// cell whose value changed is appended to it for a later correction
// phase.
func backwardSweep(out grid.Grid, offs []chamfer.WeightedOffset, wf func(chamfer.WeightedOffset) float64, updated *[]int, rowDone func(row int)) {
	s := out.Dims()
	row := 0
	for z := s.Z - 1; z >= 0; z-- {
		for y := s.Y - 1; y >= 0; y-- {
			for x := s.X - 1; x >= 0; x-- {
				if relax(out, s, x, y, z, offs, wf) && updated != nil {
					*updated = append(*updated, s.Index(x, y, z))
				}
			}
			row++
			rowDone(row)
		}
	}
}

// relax lowers the cell at (x, y, z) to the cheapest neighbor-plus-
// weight candidate and reports whether the value changed. Zero cells
// are sources and never change.
func relax(out grid.Grid, s grid.Size, x, y, z int, offs []chamfer.WeightedOffset, wf func(chamfer.WeightedOffset) float64) bool {
	i := s.Index(x, y, z)
	v := out.ValueAt(i)
	if v == 0 {
		return false
	}
	best := v
	for _, o := range offs {
		nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
		if !s.Contains(nx, ny, nz) {
			continue
		}
		if cand := out.Value(nx, ny, nz) + wf(o); cand < best {
			best = cand
		}
	}
	if best < v {
		out.SetValueAt(i, best)
		return true
	}
	return false
}

// normalizeGrid divides every finite value by the normalization weight.
// Cells at the domain maximum (unreached or saturated) are left alone.
func normalizeGrid(out grid.Grid, norm float64) {
	if norm == 1 {
		return
	}
	maxVal := out.MaxValue()
	n := out.Dims().N()
	for i := 0; i < n; i++ {
		if v := out.ValueAt(i); v > 0 && v < maxVal {
			out.SetValueAt(i, v/norm)
		}
	}
}
