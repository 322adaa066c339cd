package grid

import (
	"errors"
	"math"
	"testing"
)

func TestSize_IndexCoords(t *testing.T) {
	s := P3(4, 3, 2)

	if s.N() != 24 {
		t.Errorf("N: got %d, want 24", s.N())
	}

	tests := []struct {
		name    string
		x, y, z int
		want    int
	}{
		{"origin", 0, 0, 0, 0},
		{"end of first row", 3, 0, 0, 3},
		{"second row", 0, 1, 0, 4},
		{"second slice", 0, 0, 1, 12},
		{"last cell", 3, 2, 1, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Index(tt.x, tt.y, tt.z)
			if got != tt.want {
				t.Errorf("Index(%d,%d,%d): got %d, want %d", tt.x, tt.y, tt.z, got, tt.want)
			}
			x, y, z := s.Coords(got)
			if x != tt.x || y != tt.y || z != tt.z {
				t.Errorf("Coords(%d): got (%d,%d,%d), want (%d,%d,%d)", got, x, y, z, tt.x, tt.y, tt.z)
			}
		})
	}
}

func TestSize_Contains(t *testing.T) {
	s := P2(5, 4)

	tests := []struct {
		name    string
		x, y, z int
		want    bool
	}{
		{"inside", 2, 2, 0, true},
		{"top-left corner", 0, 0, 0, true},
		{"bottom-right corner", 4, 3, 0, true},
		{"negative x", -1, 2, 0, false},
		{"x past width", 5, 2, 0, false},
		{"y past height", 2, 4, 0, false},
		{"z out of planar grid", 2, 2, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.x, tt.y, tt.z); got != tt.want {
				t.Errorf("Contains(%d,%d,%d): got %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
			}
		})
	}
}

func TestSize_Is3D(t *testing.T) {
	if P2(10, 10).Is3D() {
		t.Error("planar size reported as 3D")
	}
	if !P3(10, 10, 3).Is3D() {
		t.Error("volumetric size not reported as 3D")
	}
}

func TestGrids_RoundTrip(t *testing.T) {
	s := P2(3, 3)

	tests := []struct {
		name string
		g    Grid
	}{
		{"uint8", NewUint8(s)},
		{"uint16", NewUint16(s)},
		{"float32", NewFloat32(s)},
		{"int32", NewInt32(s)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.g.SetValue(1, 2, 0, 42)
			if got := tt.g.Value(1, 2, 0); got != 42 {
				t.Errorf("Value(1,2,0): got %g, want 42", got)
			}
			i := s.Index(1, 2, 0)
			if got := tt.g.ValueAt(i); got != 42 {
				t.Errorf("ValueAt(%d): got %g, want 42", i, got)
			}
			if got := tt.g.Value(0, 0, 0); got != 0 {
				t.Errorf("untouched cell: got %g, want 0", got)
			}
		})
	}
}

func TestGrids_SaturatingWrites(t *testing.T) {
	s := P2(2, 1)

	u8 := NewUint8(s)
	u8.SetValue(0, 0, 0, 300)
	u8.SetValue(1, 0, 0, -5)
	if u8.At(0, 0, 0) != 255 {
		t.Errorf("uint8 over range: got %d, want 255", u8.At(0, 0, 0))
	}
	if u8.At(1, 0, 0) != 0 {
		t.Errorf("uint8 under range: got %d, want 0", u8.At(1, 0, 0))
	}

	u16 := NewUint16(s)
	u16.SetValue(0, 0, 0, 70000)
	u16.SetValue(1, 0, 0, -1)
	if u16.At(0, 0, 0) != 65535 {
		t.Errorf("uint16 over range: got %d, want 65535", u16.At(0, 0, 0))
	}
	if u16.At(1, 0, 0) != 0 {
		t.Errorf("uint16 under range: got %d, want 0", u16.At(1, 0, 0))
	}

	i32 := NewInt32(s)
	i32.SetValue(0, 0, 0, math.MaxInt32 + 10.0)
	if i32.At(0, 0, 0) != math.MaxInt32 {
		t.Errorf("int32 over range: got %d, want %d", i32.At(0, 0, 0), int32(math.MaxInt32))
	}
}

func TestGrids_RoundToNearest(t *testing.T) {
	u8 := NewUint8(P2(2, 1))
	u8.SetValue(0, 0, 0, 10.4)
	u8.SetValue(1, 0, 0, 10.6)
	if u8.At(0, 0, 0) != 10 {
		t.Errorf("10.4: got %d, want 10", u8.At(0, 0, 0))
	}
	if u8.At(1, 0, 0) != 11 {
		t.Errorf("10.6: got %d, want 11", u8.At(1, 0, 0))
	}
}

func TestGrids_MaxValue(t *testing.T) {
	s := P2(1, 1)
	if got := NewUint8(s).MaxValue(); got != 255 {
		t.Errorf("uint8 MaxValue: got %g, want 255", got)
	}
	if got := NewUint16(s).MaxValue(); got != 65535 {
		t.Errorf("uint16 MaxValue: got %g, want 65535", got)
	}
	if got := NewFloat32(s).MaxValue(); !math.IsInf(got, 1) {
		t.Errorf("float32 MaxValue: got %g, want +Inf", got)
	}
}

func TestGrids_Clone(t *testing.T) {
	g := NewUint8(P2(2, 2))
	g.Set(0, 0, 0, 7)

	c := g.Clone().(*Uint8)
	if c.At(0, 0, 0) != 7 {
		t.Errorf("clone lost value: got %d, want 7", c.At(0, 0, 0))
	}

	c.Set(0, 0, 0, 9)
	if g.At(0, 0, 0) != 7 {
		t.Error("mutating a clone changed the source grid")
	}
}

func TestGrids_NewLike(t *testing.T) {
	g := NewFloat32(P3(2, 2, 2))
	g.Set(1, 1, 1, 3.5)

	like := g.NewLike()
	if !like.Dims().Equal(g.Dims()) {
		t.Errorf("NewLike dims: got %+v, want %+v", like.Dims(), g.Dims())
	}
	if like.Value(1, 1, 1) != 0 {
		t.Error("NewLike grid is not zeroed")
	}
	if _, ok := like.(*Float32); !ok {
		t.Errorf("NewLike type: got %T, want *Float32", like)
	}
}

func TestMinMax(t *testing.T) {
	g := NewFloat32(P2(3, 1))
	g.Set(0, 0, 0, -2)
	g.Set(1, 0, 0, 5)
	g.Set(2, 0, 0, 1)

	min, max := MinMax(g)
	if min != -2 || max != 5 {
		t.Errorf("MinMax: got (%g, %g), want (-2, 5)", min, max)
	}
}

func TestCheckSameSize(t *testing.T) {
	a := NewUint8(P2(4, 4))
	b := NewUint16(P2(4, 4))
	c := NewUint8(P2(4, 5))

	if err := CheckSameSize(a, b); err != nil {
		t.Errorf("matching sizes rejected: %v", err)
	}
	if err := CheckSameSize(a, nil, b); err != nil {
		t.Errorf("nil grid should be skipped: %v", err)
	}

	err := CheckSameSize(a, c)
	if err == nil {
		t.Fatal("mismatched sizes accepted")
	}
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error is not ErrSizeMismatch: %v", err)
	}
}

func TestHasForeground(t *testing.T) {
	g := NewUint8(P2(3, 3))
	if HasForeground(g) {
		t.Error("all-zero grid reported foreground")
	}
	g.Set(2, 2, 0, 1)
	if !HasForeground(g) {
		t.Error("nonzero grid reported no foreground")
	}
}
