package label

import (
	"fmt"
	"sort"

	"github.com/theodesp/unionfind"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Merge joins label equivalence classes and renumbers the result
// densely. Each pair states that two labels belong to the same region;
// transitive closure is taken, and the merged classes are renumbered
// from 1 in order of their smallest original label. Background stays 0.
//
// The input map is not modified.
func Merge(labels grid.Grid, pairs [][2]int, mon grid.Monitor) (grid.Grid, int, error) {
	mon = grid.EnsureMonitor(mon)
	maxLabel := 0
	n := labels.Dims().N()
	for i := 0; i < n; i++ {
		if v := int(labels.ValueAt(i)); v > maxLabel {
			maxLabel = v
		}
	}

	uf := unionfind.NewThreadSafeUnionFind(maxLabel + 1)
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a <= 0 || b <= 0 || a > maxLabel || b > maxLabel {
			return nil, 0, fmt.Errorf("merge pair (%d,%d) outside label range [1,%d]", a, b, maxLabel)
		}
		uf.Union(a, b)
	}

	// Representative per class, then dense ids in order of the
	// smallest member label.
	rep := func(l int) int {
		if r := uf.Root(l); r >= 0 {
			return r
		}
		return l
	}
	dense := make(map[int]int, maxLabel)
	next := 0
	for l := 1; l <= maxLabel; l++ {
		r := rep(l)
		if _, ok := dense[r]; !ok {
			next++
			dense[r] = next
		}
	}

	mon.Status("relabeling")
	out := labels.NewLike()
	for i := 0; i < n; i++ {
		if v := int(labels.ValueAt(i)); v > 0 {
			out.SetValueAt(i, float64(dense[rep(v)]))
		}
	}
	return out, next, nil
}

// Sizes counts the cells carrying each positive label.
func Sizes(labels grid.Grid) map[int]int {
	sizes := make(map[int]int)
	n := labels.Dims().N()
	for i := 0; i < n; i++ {
		if v := int(labels.ValueAt(i)); v > 0 {
			sizes[v]++
		}
	}
	return sizes
}

// Remove clears the listed labels to background in a copy of the map.
func Remove(labels grid.Grid, ids ...int) grid.Grid {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := labels.Clone()
	n := out.Dims().N()
	for i := 0; i < n; i++ {
		if drop[int(out.ValueAt(i))] {
			out.SetValueAt(i, 0)
		}
	}
	return out
}

// KeepLargest keeps only the label covering the most cells, clearing
// all others. Ties go to the smaller label. An all-background map is
// returned unchanged.
func KeepLargest(labels grid.Grid) grid.Grid {
	sizes := Sizes(labels)
	if len(sizes) == 0 {
		return labels.Clone()
	}
	ids := make([]int, 0, len(sizes))
	for id := range sizes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	best := ids[0]
	for _, id := range ids[1:] {
		if sizes[id] > sizes[best] {
			best = id
		}
	}

	out := labels.NewLike()
	n := out.Dims().N()
	for i := 0; i < n; i++ {
		if int(labels.ValueAt(i)) == best {
			out.SetValueAt(i, float64(best))
		}
	}
	return out
}

// AreaFilter clears every label covering fewer than minSize cells.
// Surviving labels keep their original values.
func AreaFilter(labels grid.Grid, minSize int) grid.Grid {
	sizes := Sizes(labels)
	var drop []int
	for id, c := range sizes {
		if c < minSize {
			drop = append(drop, id)
		}
	}
	return Remove(labels, drop...)
}
