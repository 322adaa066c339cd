package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes shared across the module.
// Operations wrap these with contextual detail; match with errors.Is.
var (
	// ErrSizeMismatch reports grids of differing dimensions passed to
	// one operation.
	ErrSizeMismatch = errors.New("grid dimensions differ")

	// ErrInvalidMask reports a malformed chamfer mask.
	ErrInvalidMask = errors.New("invalid chamfer mask")

	// ErrUnsupportedConnectivity reports a connectivity outside
	// {4, 8} in 2D or {6, 26} in 3D.
	ErrUnsupportedConnectivity = errors.New("unsupported connectivity")

	// ErrOverflow reports a value that exceeds the representable range
	// of the requested sample type during an explicit conversion.
	// Propagation arithmetic never raises it: integer distance sums
	// saturate at the maximum representable value instead.
	ErrOverflow = errors.New("value exceeds representable range")

	// ErrTooManyRegions reports a component count that exceeds the
	// label range of the requested output width. Callers should retry
	// with a wider width.
	ErrTooManyRegions = errors.New("region count exceeds label range")

	// ErrNoMarker reports a reconstruction or watershed invoked with an
	// all-background marker image.
	ErrNoMarker = errors.New("marker image has no foreground")
)

// CheckSameSize verifies that every grid shares the dimensions of the
// first one. A nil grid is skipped so optional inputs (e.g. a watershed
// mask) can be passed through unchecked.
func CheckSameSize(grids ...Grid) error {
	var ref Size
	have := false
	for _, g := range grids {
		if g == nil {
			continue
		}
		if !have {
			ref = g.Dims()
			have = true
			continue
		}
		if d := g.Dims(); !d.Equal(ref) {
			return fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d",
				ErrSizeMismatch, ref.X, ref.Y, ref.Z, d.X, d.Y, d.Z)
		}
	}
	return nil
}

// HasForeground reports whether any sample of g is nonzero.
func HasForeground(g Grid) bool {
	n := g.Dims().N()
	for i := 0; i < n; i++ {
		if g.ValueAt(i) != 0 {
			return true
		}
	}
	return false
}
