// pobl.go — proof obligations and their priority queue. Ordering is
// frame ascending, then (if SortBySize) cube size ascending, then
// priority ascending -- so that, within a frame, newer obligations
// derived from the same parent (which get strictly decreasing
// priorities, see Engine in package pdr) win ties.
package cube

import "container/heap"

// Pobl is a proof obligation: a timed cube that must be blocked,
// together with a priority used to break frame ties, and a pointer to
// the obligation that produced it. Following Parent repeatedly
// reconstructs a counterexample once a Pobl at frame 0 is itself
// initial.
//
// Pobl forms a tree via Parent (no cycles: each Pobl is created from
// exactly one predecessor extraction in the PDR engine's recursive
// blocking routine) and is reclaimed by the garbage collector like
// any other Go value -- no explicit reference counting is needed (see
// doc.go).
type Pobl struct {
	TCube
	Prio   uint64
	Parent *Pobl
}

// NewPobl creates a proof obligation for tcube with the given
// priority and parent (nil for a root obligation).
func NewPobl(tcube TCube, prio uint64, parent *Pobl) *Pobl {
	return &Pobl{TCube: tcube, Prio: prio, Parent: parent}
}

// PoblQueue is a priority queue of *Pobl, ordered by frame (smallest
// first), then cube size if SortBySize, then priority (smallest
// first). It implements container/heap.Interface directly so callers
// get heap.Init/Push/Pop semantics without boilerplate -- the
// teacher's own packages have no comparable priority-queue type (see
// DESIGN.md), so this follows the standard library's documented
// container/heap pattern.
type PoblQueue struct {
	items      []*Pobl
	SortBySize bool
}

// NewPoblQueue returns an empty, ready-to-use queue.
func NewPoblQueue(sortBySize bool) *PoblQueue {
	q := &PoblQueue{SortBySize: sortBySize}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *PoblQueue) Len() int { return len(q.items) }

// Less implements heap.Interface using the frame/size/priority order
// described above.
func (q *PoblQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.TCube.Frame != b.TCube.Frame {
		return a.TCube.Frame < b.TCube.Frame
	}
	if q.SortBySize && a.TCube.Cube.Size() != b.TCube.Cube.Size() {
		return a.TCube.Cube.Size() < b.TCube.Cube.Size()
	}
	return a.Prio < b.Prio
}

// Swap implements heap.Interface.
func (q *PoblQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push implements heap.Interface. Use PoblQueue.Insert, not this
// method directly, unless calling heap.Push yourself.
func (q *PoblQueue) Push(x any) { q.items = append(q.items, x.(*Pobl)) }

// Pop implements heap.Interface. Use PoblQueue.PopMin, not this
// method directly, unless calling heap.Pop yourself.
func (q *PoblQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// Insert adds p to the queue.
//
// Complexity: O(log n).
func (q *PoblQueue) Insert(p *Pobl) { heap.Push(q, p) }

// PopMin removes and returns the minimum-ordered obligation, or nil
// if the queue is empty.
//
// Complexity: O(log n).
func (q *PoblQueue) PopMin() *Pobl {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*Pobl)
}

// Empty reports whether the queue has no pending obligations.
func (q *PoblQueue) Empty() bool { return q.Len() == 0 }
