package grid

import "math"

// Size describes the dimensions of a grid. Z is 1 for planar grids and
// the slice count for volumetric grids.
type Size struct {
	X int `json:"x"` // Width in samples
	Y int `json:"y"` // Height in samples
	Z int `json:"z"` // Depth in slices (1 = planar)
}

// N returns the total number of samples.
func (s Size) N() int { return s.X * s.Y * s.Z }

// Index returns the linear row-major index of (x, y, z).
func (s Size) Index(x, y, z int) int { return (z*s.Y+y)*s.X + x }

// Coords is the inverse of Index.
func (s Size) Coords(i int) (x, y, z int) {
	x = i % s.X
	y = (i / s.X) % s.Y
	z = i / (s.X * s.Y)
	return
}

// Contains reports whether (x, y, z) lies inside the grid.
func (s Size) Contains(x, y, z int) bool {
	return x >= 0 && x < s.X && y >= 0 && y < s.Y && z >= 0 && z < s.Z
}

// Is3D reports whether the grid has more than one slice.
func (s Size) Is3D() bool { return s.Z > 1 }

// Equal reports whether two sizes match in every dimension.
func (s Size) Equal(o Size) bool { return s.X == o.X && s.Y == o.Y && s.Z == o.Z }

// P2 builds a planar size.
func P2(x, y int) Size { return Size{X: x, Y: y, Z: 1} }

// P3 builds a volumetric size.
func P3(x, y, z int) Size { return Size{X: x, Y: y, Z: z} }

// Grid is the scalar accessor contract every morphology operation works
// against. Concrete implementations store uint8, uint16, float32, or
// int32 samples; Value and SetValue convert through float64 so one
// algorithm body can serve all sample types. Narrowing writes saturate
// at the representable range of the backing type (never wrap).
type Grid interface {
	// Dims returns the grid dimensions.
	Dims() Size

	// Value returns the sample at (x, y, z) as float64.
	Value(x, y, z int) float64

	// SetValue stores a float64 into the sample at (x, y, z), rounding
	// and saturating as the backing type requires.
	SetValue(x, y, z int, v float64)

	// ValueAt and SetValueAt are the linear-index forms of Value and
	// SetValue, for loops that already computed Size.Index.
	ValueAt(i int) float64
	SetValueAt(i int, v float64)

	// MaxValue returns the largest value the backing type can hold
	// (positive infinity for Float32). Used as the "unreached" marker
	// by the propagation algorithms.
	MaxValue() float64

	// NewLike returns a zeroed grid of the same dimensions and type.
	NewLike() Grid

	// Clone returns a deep copy.
	Clone() Grid
}

// Uint8 is an 8-bit grid: binary masks, markers, and 8-bit grayscale.
// For binary use any nonzero sample is foreground; operations that
// produce binary output write 255 for foreground.
type Uint8 struct {
	Pix  []uint8
	Size Size
}

// NewUint8 allocates a zeroed 8-bit grid.
func NewUint8(s Size) *Uint8 { return &Uint8{Pix: make([]uint8, s.N()), Size: s} }

// Dims returns the grid dimensions.
func (g *Uint8) Dims() Size { return g.Size }

// At returns the sample at (x, y, z).
func (g *Uint8) At(x, y, z int) uint8 { return g.Pix[g.Size.Index(x, y, z)] }

// Set stores a sample at (x, y, z).
func (g *Uint8) Set(x, y, z int, v uint8) { g.Pix[g.Size.Index(x, y, z)] = v }

// Value implements Grid.
func (g *Uint8) Value(x, y, z int) float64 { return float64(g.Pix[g.Size.Index(x, y, z)]) }

// SetValue implements Grid, saturating to [0, 255].
func (g *Uint8) SetValue(x, y, z int, v float64) { g.Pix[g.Size.Index(x, y, z)] = clampUint8(v) }

// ValueAt implements Grid.
func (g *Uint8) ValueAt(i int) float64 { return float64(g.Pix[i]) }

// SetValueAt implements Grid.
func (g *Uint8) SetValueAt(i int, v float64) { g.Pix[i] = clampUint8(v) }

// MaxValue implements Grid.
func (g *Uint8) MaxValue() float64 { return math.MaxUint8 }

// NewLike implements Grid.
func (g *Uint8) NewLike() Grid { return NewUint8(g.Size) }

// Clone implements Grid.
func (g *Uint8) Clone() Grid {
	c := NewUint8(g.Size)
	copy(c.Pix, g.Pix)
	return c
}

// Uint16 is a 16-bit grid, the "short" weight domain of the chamfer
// distance transforms.
type Uint16 struct {
	Pix  []uint16
	Size Size
}

// NewUint16 allocates a zeroed 16-bit grid.
func NewUint16(s Size) *Uint16 { return &Uint16{Pix: make([]uint16, s.N()), Size: s} }

// Dims returns the grid dimensions.
func (g *Uint16) Dims() Size { return g.Size }

// At returns the sample at (x, y, z).
func (g *Uint16) At(x, y, z int) uint16 { return g.Pix[g.Size.Index(x, y, z)] }

// Set stores a sample at (x, y, z).
func (g *Uint16) Set(x, y, z int, v uint16) { g.Pix[g.Size.Index(x, y, z)] = v }

// Value implements Grid.
func (g *Uint16) Value(x, y, z int) float64 { return float64(g.Pix[g.Size.Index(x, y, z)]) }

// SetValue implements Grid, saturating to [0, 65535].
func (g *Uint16) SetValue(x, y, z int, v float64) { g.Pix[g.Size.Index(x, y, z)] = clampUint16(v) }

// ValueAt implements Grid.
func (g *Uint16) ValueAt(i int) float64 { return float64(g.Pix[i]) }

// SetValueAt implements Grid.
func (g *Uint16) SetValueAt(i int, v float64) { g.Pix[i] = clampUint16(v) }

// MaxValue implements Grid.
func (g *Uint16) MaxValue() float64 { return math.MaxUint16 }

// NewLike implements Grid.
func (g *Uint16) NewLike() Grid { return NewUint16(g.Size) }

// Clone implements Grid.
func (g *Uint16) Clone() Grid {
	c := NewUint16(g.Size)
	copy(c.Pix, g.Pix)
	return c
}

// Float32 is a 32-bit float grid: float distance maps and float
// grayscale reliefs.
type Float32 struct {
	Pix  []float32
	Size Size
}

// NewFloat32 allocates a zeroed float grid.
func NewFloat32(s Size) *Float32 { return &Float32{Pix: make([]float32, s.N()), Size: s} }

// Dims returns the grid dimensions.
func (g *Float32) Dims() Size { return g.Size }

// At returns the sample at (x, y, z).
func (g *Float32) At(x, y, z int) float32 { return g.Pix[g.Size.Index(x, y, z)] }

// Set stores a sample at (x, y, z).
func (g *Float32) Set(x, y, z int, v float32) { g.Pix[g.Size.Index(x, y, z)] = v }

// Value implements Grid.
func (g *Float32) Value(x, y, z int) float64 { return float64(g.Pix[g.Size.Index(x, y, z)]) }

// SetValue implements Grid.
func (g *Float32) SetValue(x, y, z int, v float64) { g.Pix[g.Size.Index(x, y, z)] = float32(v) }

// ValueAt implements Grid.
func (g *Float32) ValueAt(i int) float64 { return float64(g.Pix[i]) }

// SetValueAt implements Grid.
func (g *Float32) SetValueAt(i int, v float64) { g.Pix[i] = float32(v) }

// MaxValue implements Grid.
func (g *Float32) MaxValue() float64 { return math.Inf(1) }

// NewLike implements Grid.
func (g *Float32) NewLike() Grid { return NewFloat32(g.Size) }

// Clone implements Grid.
func (g *Float32) Clone() Grid {
	c := NewFloat32(g.Size)
	copy(c.Pix, g.Pix)
	return c
}

// Int32 is a signed 32-bit grid, the widest label map type.
type Int32 struct {
	Pix  []int32
	Size Size
}

// NewInt32 allocates a zeroed 32-bit grid.
func NewInt32(s Size) *Int32 { return &Int32{Pix: make([]int32, s.N()), Size: s} }

// Dims returns the grid dimensions.
func (g *Int32) Dims() Size { return g.Size }

// At returns the sample at (x, y, z).
func (g *Int32) At(x, y, z int) int32 { return g.Pix[g.Size.Index(x, y, z)] }

// Set stores a sample at (x, y, z).
func (g *Int32) Set(x, y, z int, v int32) { g.Pix[g.Size.Index(x, y, z)] = v }

// Value implements Grid.
func (g *Int32) Value(x, y, z int) float64 { return float64(g.Pix[g.Size.Index(x, y, z)]) }

// SetValue implements Grid, saturating to the int32 range.
func (g *Int32) SetValue(x, y, z int, v float64) { g.Pix[g.Size.Index(x, y, z)] = clampInt32(v) }

// ValueAt implements Grid.
func (g *Int32) ValueAt(i int) float64 { return float64(g.Pix[i]) }

// SetValueAt implements Grid.
func (g *Int32) SetValueAt(i int, v float64) { g.Pix[i] = clampInt32(v) }

// MaxValue implements Grid.
func (g *Int32) MaxValue() float64 { return math.MaxInt32 }

// NewLike implements Grid.
func (g *Int32) NewLike() Grid { return NewInt32(g.Size) }

// Clone implements Grid.
func (g *Int32) Clone() Grid {
	c := NewInt32(g.Size)
	copy(c.Pix, g.Pix)
	return c
}

func clampUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v + 0.5)
}

func clampUint16(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v + 0.5)
}

func clampInt32(v float64) int32 {
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}

// MinMax scans a grid and returns its smallest and largest samples.
// An empty grid returns (0, 0).
func MinMax(g Grid) (min, max float64) {
	n := g.Dims().N()
	if n == 0 {
		return 0, 0
	}
	min = g.ValueAt(0)
	max = min
	for i := 1; i < n; i++ {
		v := g.ValueAt(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
