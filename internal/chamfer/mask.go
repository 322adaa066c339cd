package chamfer

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// WeightedOffset pairs one neighbor displacement with its propagation
// weights in both domains.
type WeightedOffset struct {
	grid.Offset

	// WeightShort is the scaled integer weight for uint16 distance
	// maps.
	WeightShort uint16

	// Weight is the floating-point weight for float32 distance maps.
	Weight float64
}

// Norm returns the Euclidean length of the offset vector.
func (w WeightedOffset) Norm() float64 {
	return math.Sqrt(float64(w.DX*w.DX + w.DY*w.DY + w.DZ*w.DZ))
}

// forward reports whether the offset points at a cell visited earlier
// in raster order: the last nonzero coordinate of (DX, DY, DZ) is
// negative.
func (w WeightedOffset) forward() bool {
	if w.DZ != 0 {
		return w.DZ < 0
	}
	if w.DY != 0 {
		return w.DY < 0
	}
	return w.DX < 0
}

// Mask is an immutable chamfer mask: a symmetric weighted neighborhood
// shared read-only across any number of concurrent invocations.
//
// Construct one with New or use a preset. The slices returned by
// Offsets, ForwardOffsets, and BackwardOffsets are owned by the mask
// and must not be modified.
type Mask struct {
	name     string
	offsets  []WeightedOffset
	forward  []WeightedOffset
	backward []WeightedOffset
	is3D     bool
}

// New builds a mask from a symmetric offset set. The name is
// informational and appears in errors and wire responses.
//
// New fails with ErrInvalidMask when a weight is zero in either
// domain, when the set lacks the axis-aligned unit offsets for its
// dimensionality, when an offset's negation is missing or carries a
// different weight, or when weights decrease as offsets grow longer
// (which would break the metric the transforms rely on).
func New(name string, offsets []WeightedOffset) (*Mask, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no offsets", grid.ErrInvalidMask)
	}

	is3D := false
	byOffset := make(map[grid.Offset]WeightedOffset, len(offsets))
	for _, o := range offsets {
		if o.Offset == (grid.Offset{}) {
			return nil, fmt.Errorf("%w: zero offset", grid.ErrInvalidMask)
		}
		if o.Weight <= 0 || o.WeightShort == 0 {
			return nil, fmt.Errorf("%w: non-positive weight on offset (%d,%d,%d)",
				grid.ErrInvalidMask, o.DX, o.DY, o.DZ)
		}
		if _, dup := byOffset[o.Offset]; dup {
			return nil, fmt.Errorf("%w: duplicate offset (%d,%d,%d)",
				grid.ErrInvalidMask, o.DX, o.DY, o.DZ)
		}
		byOffset[o.Offset] = o
		if o.DZ != 0 {
			is3D = true
		}
	}

	// Symmetry: every offset needs its negation at the same weight.
	for _, o := range offsets {
		neg, ok := byOffset[grid.Offset{DX: -o.DX, DY: -o.DY, DZ: -o.DZ}]
		if !ok {
			return nil, fmt.Errorf("%w: offset (%d,%d,%d) has no negation",
				grid.ErrInvalidMask, o.DX, o.DY, o.DZ)
		}
		if neg.Weight != o.Weight || neg.WeightShort != o.WeightShort {
			return nil, fmt.Errorf("%w: offset (%d,%d,%d) and its negation differ in weight",
				grid.ErrInvalidMask, o.DX, o.DY, o.DZ)
		}
	}

	// The propagation needs at least the unit steps along each axis,
	// otherwise some cells are unreachable from their neighbors.
	axes := []grid.Offset{{DX: 1}, {DY: 1}}
	if is3D {
		axes = append(axes, grid.Offset{DZ: 1})
	}
	for _, a := range axes {
		if _, ok := byOffset[a]; !ok {
			return nil, fmt.Errorf("%w: missing axis-aligned unit offset (%d,%d,%d)",
				grid.ErrInvalidMask, a.DX, a.DY, a.DZ)
		}
	}

	// Weights must be non-decreasing with offset length in both
	// domains.
	sorted := make([]WeightedOffset, len(offsets))
	copy(sorted, offsets)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Norm() < sorted[j].Norm() })
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.Norm() < b.Norm() && (b.Weight < a.Weight || b.WeightShort < a.WeightShort) {
			return nil, fmt.Errorf("%w: weight decreases from offset (%d,%d,%d) to longer (%d,%d,%d)",
				grid.ErrInvalidMask, a.DX, a.DY, a.DZ, b.DX, b.DY, b.DZ)
		}
	}

	m := &Mask{name: name, offsets: sorted, is3D: is3D}
	for _, o := range sorted {
		if o.forward() {
			m.forward = append(m.forward, o)
		} else {
			m.backward = append(m.backward, o)
		}
	}
	return m, nil
}

// Name returns the mask's informational name.
func (m *Mask) Name() string { return m.name }

// Is3D reports whether any offset leaves the plane.
func (m *Mask) Is3D() bool { return m.is3D }

// Offsets returns the full symmetric offset set, sorted by offset
// length. Read-only.
func (m *Mask) Offsets() []WeightedOffset { return m.offsets }

// ForwardOffsets returns the offsets pointing at cells already visited
// by a raster-order sweep. Read-only.
func (m *Mask) ForwardOffsets() []WeightedOffset { return m.forward }

// BackwardOffsets returns the offsets pointing at cells already visited
// by an anti-raster sweep. Read-only.
func (m *Mask) BackwardOffsets() []WeightedOffset { return m.backward }

// NormalizationFactor returns the float weight of the shortest offset.
// Dividing a float distance map by it rescales the values toward
// Euclidean units.
func (m *Mask) NormalizationFactor() float64 {
	return m.offsets[0].Weight
}

// ShortNormalizationFactor is the integer-domain counterpart of
// NormalizationFactor.
func (m *Mask) ShortNormalizationFactor() uint16 {
	return m.offsets[0].WeightShort
}

// ValidateFor checks that the mask's dimensionality matches s: planar
// masks apply to planar grids, volumetric masks to volumes.
func (m *Mask) ValidateFor(s grid.Size) error {
	if m.is3D != s.Is3D() {
		maskDims, gridDims := 2, 3
		if m.is3D {
			maskDims, gridDims = 3, 2
		}
		return fmt.Errorf("%w: %dD mask %q on a %dD grid",
			grid.ErrInvalidMask, maskDims, m.name, gridDims)
	}
	return nil
}
