package watershed

import (
	"container/heap"
	"fmt"

	"github.com/ironsheep/morph-tools-mcp/internal/grid"
)

// Options configures one watershed run. The zero value floods the
// whole grid under the default connectivity without dams.
type Options struct {
	// Mask restricts flooding to its nonzero cells when set. Cells
	// outside the mask are barriers: never labeled, never crossed.
	Mask grid.Grid

	// Connectivity used for flooding; 0 selects C4 or C6 by
	// dimensionality.
	Connectivity grid.Connectivity

	// ComputeDams finalizes cells where two basins meet as
	// watershed-line cells (value 0) instead of letting the first
	// basin keep them.
	ComputeDams bool

	// Monitor receives progress updates.
	Monitor grid.Monitor
}

// Cell states during flooding.
const (
	stateFree    uint8 = iota // floodable, not yet reached
	stateQueued               // carries a tentative label, waiting in the heap
	stateLabeled              // marker cell or finalized flood cell
	stateDam                  // watershed line
	stateBarrier              // outside the mask
)

// Run floods relief from the labeled marker regions and returns the
// resulting label map, in the markers' scalar type. Marker labels are
// positive; they survive unchanged. Unreached floodable cells keep 0.
//
// Fails with ErrNoMarker when no in-mask cell carries a positive
// label.
func Run(relief, markers grid.Grid, opts Options) (grid.Grid, error) {
	if err := grid.CheckSameSize(relief, markers, opts.Mask); err != nil {
		return nil, err
	}
	s := relief.Dims()
	conn := opts.Connectivity
	if conn == 0 {
		conn = grid.ForDims(s)
	}
	if err := conn.Validate(s); err != nil {
		return nil, err
	}
	mon := grid.EnsureMonitor(opts.Monitor)

	n := s.N()
	state := make([]uint8, n)
	out := markers.NewLike()
	seeds := 0
	for i := 0; i < n; i++ {
		if opts.Mask != nil && opts.Mask.ValueAt(i) == 0 {
			state[i] = stateBarrier
			continue
		}
		if l := markers.ValueAt(i); l > 0 {
			state[i] = stateLabeled
			out.SetValueAt(i, l)
			seeds++
		}
	}
	if seeds == 0 {
		return nil, fmt.Errorf("%w: watershed needs at least one labeled marker cell", grid.ErrNoMarker)
	}

	offs := conn.Offsets()
	fq := &floodQueue{}
	heap.Init(fq)
	seq := 0

	// Seed the queue with every floodable neighbor of a marker cell,
	// tentatively labeled after its marker.
	for i := 0; i < n; i++ {
		if state[i] != stateLabeled {
			continue
		}
		x, y, z := s.Coords(i)
		l := out.ValueAt(i)
		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) {
				continue
			}
			q := s.Index(nx, ny, nz)
			if state[q] != stateFree {
				continue
			}
			state[q] = stateQueued
			out.SetValueAt(q, l)
			heap.Push(fq, floodEntry{value: relief.ValueAt(q), seq: seq, cell: q})
			seq++
		}
	}

	mon.Status("flooding")
	processed := 0
	for fq.Len() > 0 {
		p := heap.Pop(fq).(floodEntry).cell
		x, y, z := s.Coords(p)
		l := out.ValueAt(p)

		if opts.ComputeDams && touchesOtherBasin(out, state, s, offs, x, y, z, l) {
			state[p] = stateDam
			out.SetValueAt(p, 0)
			continue
		}

		state[p] = stateLabeled
		for _, o := range offs {
			nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
			if !s.Contains(nx, ny, nz) {
				continue
			}
			q := s.Index(nx, ny, nz)
			if state[q] != stateFree {
				continue
			}
			state[q] = stateQueued
			out.SetValueAt(q, l)
			heap.Push(fq, floodEntry{value: relief.ValueAt(q), seq: seq, cell: q})
			seq++
		}

		processed++
		if processed%1024 == 0 {
			mon.Progress(processed, n)
		}
	}
	mon.Progress(n, n)
	return out, nil
}

// touchesOtherBasin reports whether any labeled or tentatively labeled
// neighbor belongs to a different basin than l. Dam and barrier cells
// never count.
func touchesOtherBasin(out grid.Grid, state []uint8, s grid.Size, offs []grid.Offset, x, y, z int, l float64) bool {
	for _, o := range offs {
		nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
		if !s.Contains(nx, ny, nz) {
			continue
		}
		q := s.Index(nx, ny, nz)
		if state[q] != stateQueued && state[q] != stateLabeled {
			continue
		}
		if out.ValueAt(q) != l {
			return true
		}
	}
	return false
}

// floodEntry is one queued cell: min-ordered by relief value, ties
// broken by insertion sequence.
type floodEntry struct {
	value float64
	seq   int
	cell  int
}

type floodQueue []floodEntry

func (q floodQueue) Len() int { return len(q) }

func (q floodQueue) Less(i, j int) bool {
	if q[i].value != q[j].value {
		return q[i].value < q[j].value
	}
	return q[i].seq < q[j].seq
}

func (q floodQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *floodQueue) Push(x interface{}) { *q = append(*q, x.(floodEntry)) }

func (q *floodQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}
