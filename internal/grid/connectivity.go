package grid

import "fmt"

// Connectivity selects which neighbors of a cell count as adjacent.
// Valid values are C4 and C8 for planar grids, C6 and C26 for
// volumetric grids.
type Connectivity int

const (
	// C4 is 2D edge adjacency (up, down, left, right).
	C4 Connectivity = 4
	// C8 is 2D edge and corner adjacency.
	C8 Connectivity = 8
	// C6 is 3D face adjacency.
	C6 Connectivity = 6
	// C26 is 3D face, edge, and corner adjacency.
	C26 Connectivity = 26
)

// Offset is an integer displacement between a cell and one neighbor.
type Offset struct {
	DX int
	DY int
	DZ int
}

// Validate checks the connectivity against the dimensionality of s:
// planar grids accept C4 and C8, volumetric grids accept C6 and C26.
// Any other combination fails with ErrUnsupportedConnectivity.
func (c Connectivity) Validate(s Size) error {
	if s.Is3D() {
		if c == C6 || c == C26 {
			return nil
		}
		return fmt.Errorf("%w: %d for a 3D grid (want 6 or 26)", ErrUnsupportedConnectivity, int(c))
	}
	if c == C4 || c == C8 {
		return nil
	}
	return fmt.Errorf("%w: %d for a 2D grid (want 4 or 8)", ErrUnsupportedConnectivity, int(c))
}

// Offsets returns the neighbor displacements for the connectivity in a
// fixed raster order (z, then y, then x ascending). The order is part
// of the module's determinism contract: every operation that walks
// neighbors does so in this order.
//
// Unknown connectivity values return nil; call Validate first.
func (c Connectivity) Offsets() []Offset {
	switch c {
	case C4:
		return []Offset{{0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	case C8:
		return []Offset{
			{-1, -1, 0}, {0, -1, 0}, {1, -1, 0},
			{-1, 0, 0}, {1, 0, 0},
			{-1, 1, 0}, {0, 1, 0}, {1, 1, 0},
		}
	case C6:
		return []Offset{
			{0, 0, -1},
			{0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{0, 0, 1},
		}
	case C26:
		offs := make([]Offset, 0, 26)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					offs = append(offs, Offset{dx, dy, dz})
				}
			}
		}
		return offs
	default:
		return nil
	}
}

// ForDims returns the minimal connectivity for the dimensionality of s:
// C4 for planar grids, C6 for volumetric ones. Operations use it as the
// default when the caller passes zero.
func ForDims(s Size) Connectivity {
	if s.Is3D() {
		return C6
	}
	return C4
}
