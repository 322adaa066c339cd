package morph

import (
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Shape selects the structuring element geometry.
type Shape int

const (
	// Square is the full block window: a (2r+1)-sided square in 2D, a
	// cube in 3D.
	Square Shape = iota

	// Cross is the diamond window: every cell within city-block
	// distance r of the center.
	Cross
)

// String returns the shape's wire name.
func (sh Shape) String() string {
	switch sh {
	case Square:
		return "square"
	case Cross:
		return "cross"
	default:
		return fmt.Sprintf("Shape(%d)", int(sh))
	}
}

// ShapeByName resolves a shape from its wire name.
func ShapeByName(name string) (Shape, error) {
	switch name {
	case "square", "":
		return Square, nil
	case "cross":
		return Cross, nil
	default:
		return 0, fmt.Errorf("unknown structuring element shape %q (want square or cross)", name)
	}
}

// Erode replaces every sample with the minimum over the structuring
// element window centered on it. Bright structures thinner than the
// window vanish.
func Erode(g grid.Grid, shape Shape, radius int, mon grid.Monitor) (grid.Grid, error) {
	return filter(g, shape, radius, mon, "eroding", false)
}

// Dilate replaces every sample with the maximum over the structuring
// element window centered on it, growing bright structures.
func Dilate(g grid.Grid, shape Shape, radius int, mon grid.Monitor) (grid.Grid, error) {
	return filter(g, shape, radius, mon, "dilating", true)
}

// Open erodes then dilates: bright structures the window cannot
// contain are removed, everything else keeps its shape.
func Open(g grid.Grid, shape Shape, radius int, mon grid.Monitor) (grid.Grid, error) {
	er, err := Erode(g, shape, radius, mon)
	if err != nil {
		return nil, err
	}
	return Dilate(er, shape, radius, mon)
}

// Close dilates then erodes, filling dark structures the window cannot
// contain.
func Close(g grid.Grid, shape Shape, radius int, mon grid.Monitor) (grid.Grid, error) {
	di, err := Dilate(g, shape, radius, mon)
	if err != nil {
		return nil, err
	}
	return Erode(di, shape, radius, mon)
}

// Gradient returns the pointwise difference dilation minus erosion:
// bright where the window spans a value change, zero on flat regions.
// The usual relief for marker-controlled watershed.
func Gradient(g grid.Grid, shape Shape, radius int, mon grid.Monitor) (grid.Grid, error) {
	di, err := Dilate(g, shape, radius, mon)
	if err != nil {
		return nil, err
	}
	er, err := Erode(g, shape, radius, mon)
	if err != nil {
		return nil, err
	}
	out := g.NewLike()
	n := g.Dims().N()
	for i := 0; i < n; i++ {
		out.SetValueAt(i, di.ValueAt(i)-er.ValueAt(i))
	}
	return out, nil
}

// filter runs one min or max window pass. Out-of-grid window cells are
// skipped, which pads with the neutral value of the extremum.
func filter(g grid.Grid, shape Shape, radius int, mon grid.Monitor, status string, max bool) (grid.Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("negative structuring element radius %d", radius)
	}
	s := g.Dims()
	offs := windowOffsets(shape, radius, s.Is3D())
	mon = grid.EnsureMonitor(mon)
	mon.Status(status)

	out := g.NewLike()
	rows := s.Y * s.Z
	row := 0
	for z := 0; z < s.Z; z++ {
		for y := 0; y < s.Y; y++ {
			for x := 0; x < s.X; x++ {
				best := g.Value(x, y, z)
				for _, o := range offs {
					nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
					if !s.Contains(nx, ny, nz) {
						continue
					}
					if v := g.Value(nx, ny, nz); max == (v > best) {
						best = v
					}
				}
				out.SetValue(x, y, z, best)
			}
			row++
			mon.Progress(row, rows)
		}
	}
	return out, nil
}

// windowOffsets lists the nonzero displacements of the structuring
// element in raster order.
func windowOffsets(shape Shape, radius int, is3D bool) []grid.Offset {
	zr := 0
	if is3D {
		zr = radius
	}
	var offs []grid.Offset
	for dz := -zr; dz <= zr; dz++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if shape == Cross && abs(dx)+abs(dy)+abs(dz) > radius {
					continue
				}
				offs = append(offs, grid.Offset{DX: dx, DY: dy, DZ: dz})
			}
		}
	}
	return offs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
