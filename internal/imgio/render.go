package imgio

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// goldenAngle in degrees. Successive hues stepped by it never repeat
// and stay maximally spread, so neighboring labels get visibly
// different colors no matter how many there are.
const goldenAngle = 137.50776405003785

// Palette returns n well-separated opaque colors for labels 1..n,
// walking the hue circle by the golden angle with alternating
// saturation and brightness bands.
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := 0; i < n; i++ {
		h := math.Mod(float64(i)*goldenAngle, 360)
		s := 0.9
		v := 0.9
		switch i % 3 {
		case 1:
			s = 0.65
		case 2:
			v = 0.7
		}
		r, g, b := colorful.Hsv(h, s, v).RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// LabelColor returns the palette color of one positive label without
// materializing a full palette.
func LabelColor(label int) color.NRGBA {
	if label <= 0 {
		return color.NRGBA{A: 255}
	}
	return Palette(label)[label-1]
}

// RenderLabels draws one slice of a label map with a distinct color
// per label. Background and watershed-line cells (value 0) are black.
func RenderLabels(labels grid.Grid, z int) (*image.NRGBA, error) {
	return renderLabels(labels, nil, z, 1)
}

// Overlay blends the label colors of one slice over a grayscale base
// image at the given opacity (0 transparent, 1 label colors only).
// Background cells show the base unchanged. Grids must share
// dimensions.
func Overlay(base, labels grid.Grid, z int, opacity float64) (*image.NRGBA, error) {
	if err := grid.CheckSameSize(base, labels); err != nil {
		return nil, err
	}
	if opacity < 0 || opacity > 1 {
		return nil, fmt.Errorf("opacity %g outside [0,1]", opacity)
	}
	return renderLabels(labels, base, z, opacity)
}

func renderLabels(labels, base grid.Grid, z int, opacity float64) (*image.NRGBA, error) {
	s := labels.Dims()
	if z < 0 || z >= s.Z {
		return nil, fmt.Errorf("slice %d out of range [0,%d)", z, s.Z)
	}

	// One palette entry per label present; labels are dense after
	// labeling, so sizing by the maximum is exact in the common case.
	maxLabel := 0
	for y := 0; y < s.Y; y++ {
		for x := 0; x < s.X; x++ {
			if l := int(labels.Value(x, y, z)); l > maxLabel {
				maxLabel = l
			}
		}
	}
	palette := Palette(maxLabel)

	// Base intensities rescale onto [0,255] so 16-bit and float bases
	// stay visible.
	var baseLo, baseSpan float64
	if base != nil {
		lo, hi := grid.MinMax(base)
		baseLo, baseSpan = lo, hi-lo
	}
	baseAt := func(x, y int) uint8 {
		if base == nil || baseSpan <= 0 {
			return 0
		}
		return uint8((base.Value(x, y, z) - baseLo) / baseSpan * 255)
	}

	out := image.NewNRGBA(image.Rect(0, 0, s.X, s.Y))
	for y := 0; y < s.Y; y++ {
		for x := 0; x < s.X; x++ {
			l := int(labels.Value(x, y, z))
			var c color.NRGBA
			switch {
			case l <= 0 && base != nil:
				v := baseAt(x, y)
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			case l <= 0:
				c = color.NRGBA{A: 255}
			default:
				c = palette[l-1]
				if base != nil && opacity < 1 {
					v := float64(baseAt(x, y))
					c.R = blend(v, c.R, opacity)
					c.G = blend(v, c.G, opacity)
					c.B = blend(v, c.B, opacity)
				}
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out, nil
}

func blend(base float64, over uint8, opacity float64) uint8 {
	return uint8(base*(1-opacity) + float64(over)*opacity + 0.5)
}
