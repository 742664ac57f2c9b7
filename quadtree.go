// Package ingwaz is an in-memory spatial index: a generic region quadtree
// mapping axis-aligned rectangular regions (or points) over an integer
// coordinate plane to arbitrary values. It answers "what overlaps this
// rectangle" without a database.
//
// A Quadtree is single-threaded by contract: mutation and reads are not
// safe to interleave from multiple goroutines against the same instance.
// Callers needing shared access serialize around the whole tree.
package ingwaz

import (
	"github.com/aukilabs/ingwaz/featureflag"
	"github.com/aukilabs/ingwaz/geometry"
)

// Quadtree indexes values of type V by rectangular regions with U
// coordinates. It composes one index node graph, which decides where each
// handle lives, with one flat handle store, which owns the values.
type Quadtree[U geometry.Scalar, V any] struct {
	depth int
	root  *node[U]
	store *handleStore[U, V]
	flags featureflag.FeatureFlag
}

// New creates an empty quadtree anchored at (0, 0) whose region is a
// square of width and height 2^depth.
func New[U geometry.Scalar, V any](depth int) *Quadtree[U, V] {
	return NewWithAnchor[U, V](geometry.NewPoint[U](0, 0), depth)
}

// NewWithAnchor creates an empty quadtree covering the square
// [anchor, anchor+2^depth).
func NewWithAnchor[U geometry.Scalar, V any](anchor geometry.Point[U], depth int) *Quadtree[U, V] {
	return NewWithAnchorAndFlags[U, V](anchor, depth, nil)
}

// NewWithAnchorAndFlags creates an empty quadtree with the given feature
// flags. See the featureflag package for the supported flags.
func NewWithAnchorAndFlags[U geometry.Scalar, V any](anchor geometry.Point[U], depth int, flags featureflag.FeatureFlag) *Quadtree[U, V] {
	side := U(1) << depth

	return &Quadtree[U, V]{
		depth: depth,
		root:  newNode(geometry.NewArea(anchor, side, side), depth),
		store: newHandleStore[U, V](),
		flags: flags,
	}
}

// Anchor is the coordinate of the top-left corner of the covered region.
func (q *Quadtree[U, V]) Anchor() geometry.Point[U] {
	return q.root.region.Anchor()
}

// Width of the covered region.
func (q *Quadtree[U, V]) Width() U {
	return q.root.region.Width()
}

// Height of the covered region.
func (q *Quadtree[U, V]) Height() U {
	return q.root.region.Height()
}

// Depth is the number of subdivision levels. A depth 0 tree has a single
// node and no possibility of subdivision.
func (q *Quadtree[U, V]) Depth() int {
	return q.depth
}

// Len is the number of stored entries.
func (q *Quadtree[U, V]) Len() int {
	return q.store.Len()
}

func (q *Quadtree[U, V]) IsEmpty() bool {
	return q.store.Len() == 0
}

// Contains reports whether a region with the given anchor and size would
// lie wholly within the covered region. Callers can use it to pre-check an
// Insert that must not be dropped.
func (q *Quadtree[U, V]) Contains(anchor geometry.Point[U], width, height U) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return q.root.region.Contains(geometry.NewArea(anchor, width, height))
}

// Insert stores value under the region with the given anchor and size and
// reports whether it was stored. Insertion is dropped, returning false,
// when the region does not fit the covered region, or when width or height
// is not strictly positive. Zero-size regions are always rejected, never
// reinterpreted as points.
func (q *Quadtree[U, V]) Insert(anchor geometry.Point[U], width, height U, value V) bool {
	if width <= 0 || height <= 0 {
		instrumentCountInsert(false)
		return false
	}

	region := geometry.NewArea(anchor, width, height)
	h := newHandle()
	if !q.root.insert(region, h) {
		instrumentCountInsert(false)
		return false
	}

	q.store.Set(h, region, value)
	instrumentCountInsert(true)
	return true
}

// InsertPt stores value at the point p. Equivalent to an Insert with size
// (1, 1).
func (q *Quadtree[U, V]) InsertPt(p geometry.Point[U], value V) bool {
	return q.Insert(p, 1, 1, value)
}

// Query returns a lazy iterator over the entries whose stored region
// intersects the region with the given anchor and size. Entries may either
// partially intersect or be wholly inside the query region. The order is
// unspecified but deterministic for a fixed tree state. A query with a
// non-positive width or height yields nothing.
func (q *Quadtree[U, V]) Query(anchor geometry.Point[U], width, height U) *Query[U, V] {
	instrumentCountQuery()

	if width <= 0 || height <= 0 {
		return &Query[U, V]{}
	}

	region := geometry.NewArea(anchor, width, height)
	it := newHandleIter(q.root, region)

	descend := true
	q.flags.IfSet(featureflag.FlagDisableQueryDescend, func() {
		descend = false
	})
	if descend {
		it.descend(region)
	}

	return &Query[U, V]{
		region: region,
		store:  q.store,
		it:     it,
	}
}

// QueryPt returns a lazy iterator over the entries whose stored region
// overlaps the point p. Alias for a (1, 1) sized Query.
func (q *Quadtree[U, V]) QueryPt(p geometry.Point[U]) *Query[U, V] {
	return q.Query(p, 1, 1)
}

// Iter returns a lazy iterator over all stored entries.
func (q *Quadtree[U, V]) Iter() *Iter[U, V] {
	return &Iter[U, V]{
		store: q.store,
		it:    newHandleIter(q.root, q.root.region),
	}
}

// Regions returns a lazy iterator over all stored regions.
func (q *Quadtree[U, V]) Regions() *Regions[U, V] {
	return &Regions[U, V]{inner: q.Iter()}
}

// Values returns a lazy iterator over all stored values.
func (q *Quadtree[U, V]) Values() *Values[U, V] {
	return &Values[U, V]{inner: q.Iter()}
}

// ModifyAll applies f in place to every stored value.
func (q *Quadtree[U, V]) ModifyAll(f func(*V)) {
	q.modifyRegion(func(geometry.Area[U]) bool { return true }, f)
}

// Modify applies f in place to every value whose stored region intersects
// the region with the given anchor and size. Mutating a value never
// changes its stored region or its placement in the index.
func (q *Quadtree[U, V]) Modify(anchor geometry.Point[U], width, height U, f func(*V)) {
	if width <= 0 || height <= 0 {
		return
	}

	region := geometry.NewArea(anchor, width, height)
	q.modifyRegion(region.Intersects, f)
}

// ModifyPt applies f in place to every value whose stored region overlaps
// the point p.
func (q *Quadtree[U, V]) ModifyPt(p geometry.Point[U], f func(*V)) {
	region := geometry.NewPointArea(p)
	q.modifyRegion(region.Intersects, f)
}

func (q *Quadtree[U, V]) modifyRegion(filter func(geometry.Area[U]) bool, f func(*V)) {
	it := newHandleIter(q.root, q.root.region)
	for h, ok := it.next(); ok; h, ok = it.next() {
		e := q.store.MustGet(h)
		if filter(e.region) {
			f(&e.value)
		}
	}
}

// Reset empties the store and the index back to their initial state,
// discarding all handles.
func (q *Quadtree[U, V]) Reset() {
	q.store.Clear()
	q.root.reset()
	instrumentCountReset()
}

// Drain returns a consuming iterator that takes ownership of the current
// store and index, leaving the quadtree empty. The drained entries are
// removed as they are yielded; abandoning the iterator early discards the
// rest.
func (q *Quadtree[U, V]) Drain() *Drain[U, V] {
	d := &Drain[U, V]{
		remaining: q.store.Len(),
		store:     q.store,
		it:        newHandleIter(q.root, q.root.region),
	}

	q.store = newHandleStore[U, V]()
	q.root = newNode(q.root.region, q.depth)
	return d
}

// RegionValue is an Extend input: a region and the value stored under it.
type RegionValue[U geometry.Scalar, V any] struct {
	Anchor geometry.Point[U]
	Width  U
	Height U
	Value  V
}

// PointValue is an ExtendPts input: a point and the value stored at it.
type PointValue[U geometry.Scalar, V any] struct {
	Point geometry.Point[U]
	Value V
}

// Extend inserts every given region/value pair. Entries whose region does
// not fit the covered region are silently dropped; callers that need every
// entry stored must pre-check with Contains. This is a documented lossy
// contract, not an error.
func (q *Quadtree[U, V]) Extend(entries []RegionValue[U, V]) {
	for _, e := range entries {
		q.Insert(e.Anchor, e.Width, e.Height, e.Value)
	}
}

// ExtendPts inserts every given point/value pair, dropping points outside
// the covered region like Extend does.
func (q *Quadtree[U, V]) ExtendPts(entries []PointValue[U, V]) {
	for _, e := range entries {
		q.InsertPt(e.Point, e.Value)
	}
}
