// Package watershed implements marker-controlled watershed
// segmentation by priority flooding.
//
// Flooding starts from pre-labeled marker regions and spreads across a
// grayscale relief in order of increasing relief value, as if the
// surface were immersed in water entering at the markers. Every
// reachable cell ends up with the label of the basin that floods it
// first. With dam computation enabled, cells where two basins meet are
// set to the reserved watershed-line value 0 instead and permanently
// separate their basins.
//
// The flood order is a min-priority queue keyed by (relief value,
// insertion sequence). The sequence number breaks ties FIFO, which
// makes results fully deterministic: reruns and alternative heap
// implementations produce identical segmentations.
//
// An optional binary mask restricts flooding. Cells outside the mask
// are never labeled and act as barriers; basins separated by masked
// cells stay separate, and in-mask cells no marker reaches keep the
// background value. Both are valid results, not errors.
package watershed
