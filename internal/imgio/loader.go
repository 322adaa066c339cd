package imgio

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Cache provides thread-safe caching of decoded grids to avoid
// redundant disk reads. Grids are keyed by the exact path string used
// to load them and stay cached until Evict or Clear.
//
// Callers must treat cached grids as read-only and Clone before
// writing, since one grid may be shared by any number of tool calls.
type Cache struct {
	mu    sync.RWMutex
	grids map[string]grid.Grid
}

// NewCache creates an empty cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{grids: make(map[string]grid.Grid)}
}

// Load returns the grid for path, decoding the file on the first call
// and serving the cached copy afterwards.
func (c *Cache) Load(path string) (grid.Grid, error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	g, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.grids[path] = g
	c.mu.Unlock()
	return g, nil
}

// Evict removes one path from the cache. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.grids, path)
	c.mu.Unlock()
}

// Clear drops every cached grid.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.grids = make(map[string]grid.Grid)
	c.mu.Unlock()
}

// Open decodes the image at path into a grid. 16-bit grayscale images
// (PNG or TIFF) keep their full range in a Uint16 grid; everything
// else is converted to 8-bit grayscale.
//
// Supported formats: PNG, JPEG, GIF, and TIFF.
func Open(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image to a grid without touching disk:
// *image.Gray16 becomes a Uint16 grid, everything else an 8-bit
// grayscale Uint8 grid using the standard luminance weights.
func FromImage(img image.Image) grid.Grid {
	b := img.Bounds()
	if g16, ok := img.(*image.Gray16); ok {
		out := grid.NewUint16(grid.P2(b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				out.Set(x, y, 0, g16.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
		return out
	}

	gray := imaging.Grayscale(img)
	out := grid.NewUint8(grid.P2(b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, 0, row[x*4])
		}
	}
	return out
}

// Info describes an image file without exposing its pixels.
type Info struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the decoded format name: "png", "jpeg", "gif", or
	// "tiff".
	Format string `json:"format"`

	// BitDepth is the grid sample depth the file loads into: 8 or 16.
	BitDepth int `json:"bit_depth"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Stat decodes the image at path and reports its dimensions, format,
// and the bit depth it will load at.
func Stat(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	depth := 8
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		depth = 16
	}
	b := img.Bounds()
	return &Info{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        format,
		BitDepth:      depth,
		FileSizeBytes: st.Size(),
	}, nil
}

// ext returns the lower-cased file extension without the dot.
func ext(path string) string {
	e := filepath.Ext(path)
	if e == "" {
		return ""
	}
	out := make([]byte, 0, len(e)-1)
	for i := 1; i < len(e); i++ {
		c := e[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
