// Package imgio adapts between Go images on disk and the grid data
// model the algorithm packages operate on.
//
// It is the only package in this module that touches files or pixel
// formats: the algorithm packages consume and produce grids and know
// nothing about PNG, TIFF, or color. Reading goes through a
// thread-safe Cache so repeated tool calls against the same file
// decode it once. 8-bit images become Uint8 grids via grayscale
// conversion; 16-bit grayscale PNG and TIFF become Uint16 grids with
// full precision preserved.
//
// Writing picks the encoding from the file extension. Uint16 grids are
// stored losslessly as 16-bit PNG or TIFF; Float32 grids are rescaled
// linearly onto the 16-bit range first, which keeps relative distances
// readable in any image viewer.
//
// The package also renders label maps: every label receives a
// well-separated color from a golden-angle hue walk, with background
// and watershed lines kept black, optionally blended over the source
// image.
package imgio
