// Package grid provides the scalar grid data model shared by every
// morphology operation in this module.
//
// A grid is a dense, row-major array of scalar samples with explicit
// dimensions. Planar (2D) images are grids with depth 1; volumetric (3D)
// stacks have depth greater than 1. Four concrete sample types are
// provided — Uint8, Uint16, Float32, and Int32 — matching the pixel types
// the operations produce and consume (8/16-bit grayscale, 32-bit float
// distance maps, and 32-bit label maps).
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left of the
// first slice:
//   - X: horizontal position (0 = leftmost)
//   - Y: vertical position (0 = topmost)
//   - Z: slice index (0 = first slice; always 0 for planar grids)
//
// Storage is row-major: the linear index of (x, y, z) is
// (z*Y + y)*X + x. The Pix slice of each concrete type can be indexed
// directly with Size.Index for hot loops.
//
// # Label Maps
//
// A label map is an integer grid where 0 denotes background and positive
// values denote region identity. Operations that produce label maps
// assign labels densely in [1, n] in raster discovery order.
//
// # Connectivity
//
// Pixel adjacency is restricted to the values morphology theory defines
// for digital grids: 4 or 8 in 2D, 6 or 26 in 3D. Any other value is
// rejected with ErrUnsupportedConnectivity.
//
// # Error Taxonomy
//
// The sentinel errors in this package form the error vocabulary of the
// whole module. They are wrapped with contextual detail and can be
// matched with errors.Is. Disconnected or unreachable cells are never
// errors: they are reported as maximum-value distances or unlabeled
// cells, which are valid results.
//
// # Thread Safety
//
// Grids are plain data with no internal locking. Every operation in this
// module allocates and fully owns its scratch state, so concurrent calls
// on distinct grids are safe; concurrent mutation of one grid is not.
package grid
