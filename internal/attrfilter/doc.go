// Package attrfilter implements attribute openings: removal of
// connected structures whose accumulated attribute falls below a
// threshold.
//
// The grayscale opening processes samples in decreasing value order
// and grows components with a union-find forest. Each root carries the
// accumulated attribute of its tree (cell count, or the running
// bounding box for the diagonal criterion). A component becomes valid
// the moment its attribute reaches the threshold; components that are
// still invalid when a darker sample absorbs them are leveled down to
// that sample's value in the resolve pass. The effect is that every
// bright structure too small to satisfy the criterion is flattened
// into its surroundings while everything else is preserved exactly.
//
// The binary case is the single-threshold special case and is
// implemented over connected-components labeling and a size filter.
//
// Unions always attach the earlier root beneath the sample currently
// being processed, so parent chains run toward darker values and the
// resolve pass can fix each cell from its parent in one reverse scan.
// No recursion is used anywhere.
package attrfilter
