package reconstruct

import (
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// ByDilation reconstructs marker under mask: the result R satisfies
// marker ∧ mask ≤ R ≤ mask and is the pointwise-smallest image
// connected to the marker by geodesic dilation. Marker values above the
// mask are clamped to it. The result takes the mask's scalar type;
// marker and mask should share one type.
//
// An all-zero marker fails with ErrNoMarker.
func ByDilation(marker, mask grid.Grid, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	if err := validate(marker, mask, conn); err != nil {
		return nil, err
	}
	if !grid.HasForeground(marker) {
		return nil, fmt.Errorf("%w: reconstruction by dilation needs a nonzero marker", grid.ErrNoMarker)
	}
	return reconstruct(marker, mask, conn, grid.EnsureMonitor(mon), true), nil
}

// ByErosion is the dual of ByDilation: marker values propagate
// "downhill" and are clamped up to the mask, yielding the
// pointwise-largest image R with mask ≤ R ≤ marker ∨ mask.
//
// An all-zero marker fails with ErrNoMarker.
func ByErosion(marker, mask grid.Grid, conn grid.Connectivity, mon grid.Monitor) (grid.Grid, error) {
	if err := validate(marker, mask, conn); err != nil {
		return nil, err
	}
	if !grid.HasForeground(marker) {
		return nil, fmt.Errorf("%w: reconstruction by erosion needs a nonzero marker", grid.ErrNoMarker)
	}
	return reconstruct(marker, mask, conn, grid.EnsureMonitor(mon), false), nil
}

func validate(marker, mask grid.Grid, conn grid.Connectivity) error {
	if err := grid.CheckSameSize(marker, mask); err != nil {
		return err
	}
	return conn.Validate(marker.Dims())
}

// reconstruct runs the hybrid algorithm. With dil set the marker
// propagates upward under the mask ceiling; otherwise downward over the
// mask floor. The three comparators below are the only difference
// between the two directions.
func reconstruct(marker, mask grid.Grid, conn grid.Connectivity, mon grid.Monitor, dil bool) grid.Grid {
	maxf := func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}
	minf := func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	}

	// pick is the propagating extremum, clamp pulls a value back to
	// the mask, and worse tells whether a value can still be improved.
	pick, clamp := maxf, minf
	worse := func(a, b float64) bool { return a < b }
	if !dil {
		pick, clamp = minf, maxf
		worse = func(a, b float64) bool { return a > b }
	}

	s := marker.Dims()
	out := mask.NewLike()
	n := s.N()
	for i := 0; i < n; i++ {
		out.SetValueAt(i, clamp(marker.ValueAt(i), mask.ValueAt(i)))
	}

	offs := conn.Offsets()
	var fwd, bwd []grid.Offset
	for _, o := range offs {
		if precedes(o) {
			fwd = append(fwd, o)
		} else {
			bwd = append(bwd, o)
		}
	}

	rows := s.Y * s.Z
	mon.Status("forward pass")
	row := 0
	for z := 0; z < s.Z; z++ {
		for y := 0; y < s.Y; y++ {
			for x := 0; x < s.X; x++ {
				i := s.Index(x, y, z)
				v := out.ValueAt(i)
				for _, o := range fwd {
					nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
					if !s.Contains(nx, ny, nz) {
						continue
					}
					v = pick(v, out.Value(nx, ny, nz))
				}
				out.SetValueAt(i, clamp(v, mask.ValueAt(i)))
			}
			row++
			mon.Progress(row, 2*rows)
		}
	}

	// Backward pass, seeding the queue with every cell that can still
	// push value into an already-scanned neighbor.
	mon.Status("backward pass")
	var queue []int
	for z := s.Z - 1; z >= 0; z-- {
		for y := s.Y - 1; y >= 0; y-- {
			for x := s.X - 1; x >= 0; x-- {
				i := s.Index(x, y, z)
				v := out.ValueAt(i)
				for _, o := range bwd {
					nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
					if !s.Contains(nx, ny, nz) {
						continue
					}
					v = pick(v, out.Value(nx, ny, nz))
				}
				v = clamp(v, mask.ValueAt(i))
				out.SetValueAt(i, v)

				for _, o := range bwd {
					nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
					if !s.Contains(nx, ny, nz) {
						continue
					}
					q := s.Index(nx, ny, nz)
					if worse(out.ValueAt(q), v) && worse(out.ValueAt(q), mask.ValueAt(q)) {
						queue = append(queue, i)
						break
					}
				}
			}
			row++
			mon.Progress(row, 2*rows)
		}
	}

	mon.Status("queue propagation")
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		x, y, z := s.Coords(p)
		pv := out.ValueAt(p)
		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) {
				continue
			}
			q := s.Index(nx, ny, nz)
			qv, qm := out.ValueAt(q), mask.ValueAt(q)
			if cand := clamp(pv, qm); qv != qm && worse(qv, cand) {
				out.SetValueAt(q, cand)
				queue = append(queue, q)
			}
		}
	}

	return out
}

// precedes reports whether the offset points at a cell visited earlier
// in raster order.
func precedes(o grid.Offset) bool {
	if o.DZ != 0 {
		return o.DZ < 0
	}
	if o.DY != 0 {
		return o.DY < 0
	}
	return o.DX < 0
}
