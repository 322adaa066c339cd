// Package label implements connected-components labeling and label-map
// utilities.
//
// Label scans a foreground grid in raster order and flood-fills each
// unlabeled component with the next integer label, so label values are
// dense in [1, n] and their order depends only on where components
// first appear in the scan, never on how the flood traverses them.
// Fills use an explicit stack; recursion is avoided so arbitrarily
// large flat regions cannot exhaust the call stack.
//
// The label map is stored at a caller-chosen width (8, 16, or 32
// bits). When a grid contains more components than the width can
// represent, Label fails with ErrTooManyRegions and the caller retries
// with a wider type.
//
// The remaining functions operate on finished label maps: Merge joins
// equivalence classes and renumbers densely, Sizes counts cells per
// label, and Remove, KeepLargest, and AreaFilter drop unwanted labels.
package label
