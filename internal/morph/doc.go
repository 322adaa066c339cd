// Package morph implements the basic structuring-element operators:
// erosion, dilation, opening, closing, and the morphological gradient.
//
// A structuring element is a small symmetric window described by a
// shape and an integer radius. Square selects the full block window
// ((2r+1)^2 cells in 2D, (2r+1)^3 in 3D); Cross selects the diamond of
// cells within city-block distance r. Erosion replaces each sample
// with the minimum over the window, dilation with the maximum; opening
// and closing are the two compositions, and the gradient is the
// pointwise difference dilation minus erosion.
//
// At grid borders the window is clipped to the cells that exist, which
// is equivalent to padding with the operation's neutral value. The
// gradient of a grayscale relief is the usual preprocessing step
// before watershed segmentation: it is bright on region boundaries and
// dark on flat interiors.
package morph
