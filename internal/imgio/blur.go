package imgio

import (
	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Smooth applies a Gaussian blur of the given radius to every slice of
// g and returns the result as an 8-bit grid. Wider grids are clamped
// to the 8-bit range first; for relief preprocessing ahead of
// watershed that loss is irrelevant because only the value ordering
// matters.
//
// A radius of 0 or less returns an unchanged 8-bit copy.
func Smooth(g grid.Grid, radius float64) (*grid.Uint8, error) {
	s := g.Dims()
	out := grid.NewUint8(s)
	for z := 0; z < s.Z; z++ {
		img, err := ToGray(g, z)
		if err != nil {
			return nil, err
		}
		if radius <= 0 {
			for y := 0; y < s.Y; y++ {
				for x := 0; x < s.X; x++ {
					out.Set(x, y, z, img.Pix[y*img.Stride+x])
				}
			}
			continue
		}
		blurred := blur.Gaussian(img, radius)
		for y := 0; y < s.Y; y++ {
			row := blurred.Pix[y*blurred.Stride:]
			for x := 0; x < s.X; x++ {
				out.Set(x, y, z, row[x*4])
			}
		}
	}
	return out, nil
}
