package measure

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Box is an axis-aligned bounding box in grid coordinates, inclusive
// on both ends.
type Box struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MinZ int `json:"min_z"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
	MaxZ int `json:"max_z"`
}

// RegionStats summarizes one labeled region.
type RegionStats struct {
	// Label is the region's value in the label map.
	Label int `json:"label"`

	// Count is the number of cells carrying the label.
	Count int `json:"count"`

	// Min, Max, Mean, StdDev, and Median summarize the intensity
	// samples under the region. StdDev is the sample standard
	// deviation and is 0 for single-cell regions.
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`

	// CentroidX, CentroidY, and CentroidZ are the unweighted centroid
	// of the region's cells.
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`
	CentroidZ float64 `json:"centroid_z"`

	// Box is the region's bounding box.
	Box Box `json:"box"`
}

// Regions measures every positive label of labels against the samples
// of intensity, returning one entry per label in increasing label
// order. Labels absent from the map produce no entry; to measure a
// label map against itself, pass it as both arguments.
//
// Fails with ErrSizeMismatch when the grids differ in dimensions.
func Regions(labels, intensity grid.Grid, mon grid.Monitor) ([]RegionStats, error) {
	if err := grid.CheckSameSize(labels, intensity); err != nil {
		return nil, err
	}
	mon = grid.EnsureMonitor(mon)
	mon.Status("measuring regions")

	s := labels.Dims()
	n := s.N()
	samples := make(map[int][]float64)
	sums := make(map[int][3]float64)
	boxes := make(map[int]Box)
	for i := 0; i < n; i++ {
		l := int(labels.ValueAt(i))
		if l <= 0 {
			continue
		}
		x, y, z := s.Coords(i)
		samples[l] = append(samples[l], intensity.ValueAt(i))
		c := sums[l]
		sums[l] = [3]float64{c[0] + float64(x), c[1] + float64(y), c[2] + float64(z)}
		if b, ok := boxes[l]; !ok {
			boxes[l] = Box{MinX: x, MinY: y, MinZ: z, MaxX: x, MaxY: y, MaxZ: z}
		} else {
			boxes[l] = b.extend(x, y, z)
		}
	}

	ids := make([]int, 0, len(samples))
	for l := range samples {
		ids = append(ids, l)
	}
	sort.Ints(ids)

	out := make([]RegionStats, 0, len(ids))
	for k, l := range ids {
		xs := samples[l]
		sort.Float64s(xs)
		count := len(xs)

		sd := 0.0
		if count > 1 {
			sd = stat.StdDev(xs, nil)
		}
		c := sums[l]
		out = append(out, RegionStats{
			Label:     l,
			Count:     count,
			Min:       xs[0],
			Max:       xs[count-1],
			Mean:      stat.Mean(xs, nil),
			StdDev:    sd,
			Median:    stat.Quantile(0.5, stat.Empirical, xs, nil),
			CentroidX: c[0] / float64(count),
			CentroidY: c[1] / float64(count),
			CentroidZ: c[2] / float64(count),
			Box:       boxes[l],
		})
		mon.Progress(k+1, len(ids))
	}
	return out, nil
}

func (b Box) extend(x, y, z int) Box {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if z < b.MinZ {
		b.MinZ = z
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	if z > b.MaxZ {
		b.MaxZ = z
	}
	return b
}
