// Package distance computes chamfer distance transforms over binary
// and label grids.
//
// A distance transform replaces every foreground sample with the
// weighted cost of the cheapest chamfer path to the nearest background
// sample. The plain transform propagates freely across the whole grid;
// the geodesic variant confines propagation to a mask region, so the
// reported distance follows paths that stay inside the region.
//
// # Polarity
//
// Background (zero) cells are the propagation sources and hold 0 in
// the result. Foreground (nonzero) cells receive the distance to the
// nearest background cell. Callers that want distances measured away
// from a feature invert the input first so the feature becomes the
// zero set.
//
// # Algorithm
//
// Both transforms run the classic two-sweep relaxation: a forward
// raster pass relaxes each cell from its already-visited neighbors
// (the mask's forward offsets), then a backward anti-raster pass does
// the same in reverse. For unconstrained propagation two sweeps reach
// the exact fixed point. Geodesic propagation through non-convex
// regions can need paths no fixed sweep order realizes, so the
// geodesic transform follows the sweeps with a FIFO correction phase:
// cells updated by the backward sweep are queued, popped, and
// re-relaxed against their neighbors until no value changes. The
// relaxation is monotone, so the fixed point is independent of queue
// order.
//
// # Value Domains
//
// Each transform exists in two storage domains. The short domain
// stores uint16 samples and uses the mask's integer weights; sums
// saturate at 65535. The float domain stores float32 samples and uses
// the exact float weights. In both, a cell that no path reaches keeps
// the domain maximum (65535 or +Inf). That is a valid result, not an
// error, and normalization leaves such cells untouched.
package distance
