package imgio

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// ToGray renders one slice of a grid as an 8-bit grayscale image.
// Samples are clamped to [0, 255]; callers with wider grids rescale
// first.
func ToGray(g grid.Grid, z int) (*image.Gray, error) {
	s := g.Dims()
	if z < 0 || z >= s.Z {
		return nil, fmt.Errorf("slice %d out of range [0,%d)", z, s.Z)
	}
	out := image.NewGray(image.Rect(0, 0, s.X, s.Y))
	for y := 0; y < s.Y; y++ {
		for x := 0; x < s.X; x++ {
			v := g.Value(x, y, z)
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			out.Pix[y*out.Stride+x] = uint8(v + 0.5)
		}
	}
	return out, nil
}

// ToGray16 renders one slice as a 16-bit grayscale image, clamping to
// [0, 65535].
func ToGray16(g grid.Grid, z int) (*image.Gray16, error) {
	s := g.Dims()
	if z < 0 || z >= s.Z {
		return nil, fmt.Errorf("slice %d out of range [0,%d)", z, s.Z)
	}
	out := image.NewGray16(image.Rect(0, 0, s.X, s.Y))
	for y := 0; y < s.Y; y++ {
		for x := 0; x < s.X; x++ {
			v := g.Value(x, y, z)
			switch {
			case v < 0:
				v = 0
			case v > 65535:
				v = 65535
			}
			u := uint16(v + 0.5)
			out.Pix[y*out.Stride+2*x] = uint8(u >> 8)
			out.Pix[y*out.Stride+2*x+1] = uint8(u)
		}
	}
	return out, nil
}

// SaveGray writes the first slice of g to path, choosing the encoding
// from the extension and the grid type:
//
//   - Uint8 grids save as 8-bit grayscale in any supported format.
//   - Uint16 grids save losslessly as 16-bit PNG or TIFF; other
//     extensions are rejected rather than silently truncated.
//   - Float32 grids are rescaled linearly so the finite value range
//     spans [0, 65535], then saved like Uint16 grids. +Inf samples map
//     to 65535.
func SaveGray(g grid.Grid, path string) error {
	switch t := g.(type) {
	case *grid.Uint8:
		img, err := ToGray(g, 0)
		if err != nil {
			return err
		}
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		return nil
	case *grid.Uint16:
		img, err := ToGray16(g, 0)
		if err != nil {
			return err
		}
		return save16(img, path)
	case *grid.Float32:
		img, err := ToGray16(rescaleFloat(t), 0)
		if err != nil {
			return err
		}
		return save16(img, path)
	default:
		img, err := ToGray(g, 0)
		if err != nil {
			return err
		}
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		return nil
	}
}

func save16(img *image.Gray16, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	switch ext(path) {
	case "png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("failed to encode 16-bit PNG: %w", err)
		}
	case "tif", "tiff":
		if err := tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("failed to encode 16-bit TIFF: %w", err)
		}
	default:
		return fmt.Errorf("extension %q cannot hold 16-bit samples (use png or tiff)", ext(path))
	}
	return nil
}

// rescaleFloat maps the finite value range of g onto [0, 65535].
// Infinite samples (unreached distance cells) map to 65535. A constant
// grid maps to all zeros.
func rescaleFloat(g *grid.Float32) *grid.Uint16 {
	lo, hi := 0.0, 0.0
	first := true
	for _, v := range g.Pix {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if first {
			lo, hi = f, f
			first = false
			continue
		}
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}

	out := grid.NewUint16(g.Size)
	span := hi - lo
	for i, v := range g.Pix {
		f := float64(v)
		if math.IsInf(f, 1) {
			out.Pix[i] = 65535
			continue
		}
		if span > 0 && !math.IsNaN(f) {
			out.Pix[i] = uint16((f-lo)/span*65535 + 0.5)
		}
	}
	return out
}
