package grid

import (
	"fmt"
	"math"
)

// ToUint8 converts g to an 8-bit grid. Values are rounded to the
// nearest integer. When strict is true a value outside [0, 255] returns
// ErrOverflow; otherwise out-of-range values saturate.
func ToUint8(g Grid, strict bool) (*Uint8, error) {
	s := g.Dims()
	out := NewUint8(s)
	n := s.N()
	for i := 0; i < n; i++ {
		v := g.ValueAt(i)
		if strict && (v < 0 || v > math.MaxUint8) {
			x, y, z := s.Coords(i)
			return nil, fmt.Errorf("%w: value %g at (%d,%d,%d) does not fit uint8", ErrOverflow, v, x, y, z)
		}
		out.Pix[i] = clampUint8(v)
	}
	return out, nil
}

// ToUint16 converts g to a 16-bit grid. Values are rounded to the
// nearest integer. When strict is true a value outside [0, 65535]
// returns ErrOverflow; otherwise out-of-range values saturate.
func ToUint16(g Grid, strict bool) (*Uint16, error) {
	s := g.Dims()
	out := NewUint16(s)
	n := s.N()
	for i := 0; i < n; i++ {
		v := g.ValueAt(i)
		if strict && (v < 0 || v > math.MaxUint16) {
			x, y, z := s.Coords(i)
			return nil, fmt.Errorf("%w: value %g at (%d,%d,%d) does not fit uint16", ErrOverflow, v, x, y, z)
		}
		out.Pix[i] = clampUint16(v)
	}
	return out, nil
}

// ToFloat32 converts g to a float grid. The conversion is lossless for
// all integer grid types in this package.
func ToFloat32(g Grid) *Float32 {
	s := g.Dims()
	out := NewFloat32(s)
	n := s.N()
	for i := 0; i < n; i++ {
		out.Pix[i] = float32(g.ValueAt(i))
	}
	return out
}

// Threshold produces a binary grid: samples of g strictly above t
// become 255, all others 0.
func Threshold(g Grid, t float64) *Uint8 {
	s := g.Dims()
	out := NewUint8(s)
	n := s.N()
	for i := 0; i < n; i++ {
		if g.ValueAt(i) > t {
			out.Pix[i] = 255
		}
	}
	return out
}

// Invert returns the complement of an 8-bit grid: each sample v becomes
// 255-v. Binary images keep their binary form with foreground and
// background exchanged.
func Invert(g *Uint8) *Uint8 {
	out := NewUint8(g.Size)
	for i, v := range g.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}
