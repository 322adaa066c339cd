// Package reconstruct implements morphological reconstruction and the
// regional extrema operators built on it.
//
// Reconstruction by dilation propagates a marker image "uphill" as far
// as a mask image allows: the result is the smallest image R with
// marker ∧ mask ≤ R ≤ mask that geodesic dilation of the marker can
// reach. Reconstruction by erosion is the exact dual. Both are
// idempotent: reconstructing a result against the same mask returns it
// unchanged.
//
// The implementation is the hybrid sweep-and-queue algorithm: one
// forward raster pass, one backward pass that also seeds a FIFO queue
// with every cell still able to propagate, then queue-driven
// relaxation until stability. The two sweeps do almost all the work on
// typical images; the queue phase finishes regions (spirals, concave
// plateaus) that no fixed scan order can settle.
//
// Regional maxima and minima are detected by plateau flood fill, and
// the extended (h-) extrema combine a reconstruction with a regional
// extrema pass. These feed marker generation for watershed
// segmentation.
package reconstruct
