// Package chamfer defines weighted neighborhood masks for discrete
// distance propagation.
//
// A chamfer mask is a symmetric set of integer offset vectors, each
// carrying a propagation weight. Distance transforms approximate the
// Euclidean metric by relaxing cell values through these offsets in two
// raster sweeps, so the quality of the approximation is governed
// entirely by the mask: larger neighborhoods and carefully chosen
// weights give tighter bounds on the true distance.
//
// # Weight Domains
//
// Every mask carries two parallel weight sets:
//
//   - Short weights: 16-bit unsigned integers, used when the distance
//     map is stored in a uint16 grid. Sums saturate rather than wrap.
//   - Float weights: float64 values, used for float32 distance maps.
//
// Integer presets use the same numbers in both domains. Float presets
// (quasi-Euclidean) pair exact float weights with a published scaled
// integer approximation, so one mask serves both storage types.
//
// # Raster Split
//
// Propagation visits cells in raster order (slice by slice, row by row,
// left to right) and then in the exact reverse. Each sweep may only
// read neighbors it has already visited, so the mask offsets are split
// into a forward half (offsets pointing at earlier cells in raster
// order) and a backward half (the negations). ForwardOffsets and
// BackwardOffsets expose this split.
//
// # Presets
//
// The package provides the classic published masks as process-wide
// immutable values: chessboard, city-block, 2-3, Borgefors 3-4,
// chess-knight 5-7-11 and Verwer 12-17 in 2D; city-block, chessboard,
// Borgefors 3-4-5 and Svensson 3-4-5-7 in 3D; plus quasi-Euclidean
// float masks in both dimensionalities. ByName resolves a preset from
// its string key for callers that take mask names over the wire.
//
// # Normalization
//
// Integer masks trade exactness for speed by scaling all weights up
// (a Borgefors distance of 3 means "one orthogonal step"). Dividing a
// finished map by NormalizationFactor, or ShortNormalizationFactor for
// uint16 maps, rescales values back toward Euclidean units.
package chamfer
