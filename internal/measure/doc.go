// Package measure computes per-region statistics over a label map and
// an intensity grid.
//
// Regions walks both grids once, gathers the intensity samples of each
// positive label, and reports count, min, max, mean, standard
// deviation, and median per region together with the region's centroid
// and bounding box in grid coordinates. Results are ordered by label,
// one entry per label present in the map, so the output doubles as a
// dense result table for the wire layer.
//
// Geometric shape descriptors (fitted ellipses, Feret diameters) are
// deliberately absent; this package measures intensities and extents
// only.
package measure
