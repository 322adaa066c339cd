package reconstruct

import (
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// RegionalMaxima marks every regional maximum of gray: a connected
// plateau of equal value none of whose neighbors is brighter. The
// result is binary, 255 on maximum plateaus.
func RegionalMaxima(gray grid.Grid, conn grid.Connectivity, mon grid.Monitor) (*grid.Uint8, error) {
	if err := conn.Validate(gray.Dims()); err != nil {
		return nil, err
	}
	return regionalExtrema(gray, conn, grid.EnsureMonitor(mon), true), nil
}

// RegionalMinima is the dual of RegionalMaxima: plateaus none of whose
// neighbors is darker.
func RegionalMinima(gray grid.Grid, conn grid.Connectivity, mon grid.Monitor) (*grid.Uint8, error) {
	if err := conn.Validate(gray.Dims()); err != nil {
		return nil, err
	}
	return regionalExtrema(gray, conn, grid.EnsureMonitor(mon), false), nil
}

// ExtendedMaxima marks the regional maxima of the h-maxima transform:
// plateaus that stand at least h above their surroundings. Larger h
// merges nearby peaks and suppresses shallow ones, which is the usual
// way to build watershed markers from noisy reliefs.
func ExtendedMaxima(gray grid.Grid, h float64, conn grid.Connectivity, mon grid.Monitor) (*grid.Uint8, error) {
	if err := conn.Validate(gray.Dims()); err != nil {
		return nil, err
	}
	if h < 0 {
		return nil, fmt.Errorf("extended maxima: negative dynamic %g", h)
	}
	mon = grid.EnsureMonitor(mon)

	marker := gray.NewLike()
	n := gray.Dims().N()
	for i := 0; i < n; i++ {
		marker.SetValueAt(i, gray.ValueAt(i)-h)
	}
	rec := reconstruct(marker, gray, conn, mon, true)
	return regionalExtrema(rec, conn, mon, true), nil
}

// ExtendedMinima is the dual of ExtendedMaxima: basins at least h deep.
func ExtendedMinima(gray grid.Grid, h float64, conn grid.Connectivity, mon grid.Monitor) (*grid.Uint8, error) {
	if err := conn.Validate(gray.Dims()); err != nil {
		return nil, err
	}
	if h < 0 {
		return nil, fmt.Errorf("extended minima: negative dynamic %g", h)
	}
	mon = grid.EnsureMonitor(mon)

	marker := gray.NewLike()
	n := gray.Dims().N()
	for i := 0; i < n; i++ {
		marker.SetValueAt(i, gray.ValueAt(i)+h)
	}
	rec := reconstruct(marker, gray, conn, mon, false)
	return regionalExtrema(rec, conn, mon, false), nil
}

// regionalExtrema floods each equal-value plateau once with an
// explicit stack and marks it when no neighbor beats it in the chosen
// direction.
func regionalExtrema(gray grid.Grid, conn grid.Connectivity, mon grid.Monitor, findMax bool) *grid.Uint8 {
	s := gray.Dims()
	out := grid.NewUint8(s)
	n := s.N()
	visited := make([]bool, n)
	offs := conn.Offsets()

	mon.Status("scanning plateaus")
	var stack, plateau []int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		v := gray.ValueAt(i)
		visited[i] = true
		stack = append(stack[:0], i)
		plateau = append(plateau[:0], i)
		extremal := true

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y, z := s.Coords(p)
			for _, o := range offs {
				nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
				if !s.Contains(nx, ny, nz) {
					continue
				}
				qv := gray.Value(nx, ny, nz)
				if qv == v {
					q := s.Index(nx, ny, nz)
					if !visited[q] {
						visited[q] = true
						stack = append(stack, q)
						plateau = append(plateau, q)
					}
					continue
				}
				if findMax == (qv > v) {
					extremal = false
				}
			}
		}

		if extremal {
			for _, p := range plateau {
				out.Pix[p] = 255
			}
		}
		mon.Progress(i+1, n)
	}
	return out
}
