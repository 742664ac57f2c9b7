package ingwaz

import (
	"github.com/aukilabs/ingwaz/geometry"
)

// Entry is one stored region/value pair as yielded by the iterators.
type Entry[U geometry.Scalar, V any] struct {
	Region geometry.Area[U]
	Value  V
}

// Iter iterates over every stored entry. Created by Quadtree.Iter.
//
// Iterators read the quadtree they came from: the tree must not be mutated
// until the iterator is exhausted or abandoned. Abandoning one early is
// always safe.
type Iter[U geometry.Scalar, V any] struct {
	store *handleStore[U, V]
	it    *handleIter[U]
}

// Next returns the next entry, or ok=false once the iterator is exhausted.
// Exhausted iterators keep returning ok=false.
func (i *Iter[U, V]) Next() (Entry[U, V], bool) {
	h, ok := i.it.next()
	if !ok {
		return Entry[U, V]{}, false
	}

	e := i.store.MustGet(h)
	return Entry[U, V]{Region: e.region, Value: e.value}, true
}

// Query iterates over the entries whose stored region intersects the query
// region. Created by Quadtree.Query and Quadtree.QueryPt.
//
// Every candidate handle is checked against its own stored region, not the
// region of the node that kept it: a node intersecting the query region
// does not mean each entry kept there does.
type Query[U geometry.Scalar, V any] struct {
	region geometry.Area[U]
	store  *handleStore[U, V]
	it     *handleIter[U]
}

// Next returns the next intersecting entry, or ok=false once the query is
// exhausted.
func (q *Query[U, V]) Next() (Entry[U, V], bool) {
	if q.it == nil {
		return Entry[U, V]{}, false
	}

	for {
		h, ok := q.it.next()
		if !ok {
			return Entry[U, V]{}, false
		}

		e := q.store.MustGet(h)
		if q.region.Intersects(e.region) {
			return Entry[U, V]{Region: e.region, Value: e.value}, true
		}
	}
}

// Regions projects Iter onto the stored regions. Created by
// Quadtree.Regions.
type Regions[U geometry.Scalar, V any] struct {
	inner *Iter[U, V]
}

func (r *Regions[U, V]) Next() (geometry.Area[U], bool) {
	e, ok := r.inner.Next()
	return e.Region, ok
}

// Values projects Iter onto the stored values. Created by Quadtree.Values.
type Values[U geometry.Scalar, V any] struct {
	inner *Iter[U, V]
}

func (v *Values[U, V]) Next() (V, bool) {
	e, ok := v.inner.Next()
	return e.Value, ok
}

// Drain owns a detached store and index and yields their entries, removing
// each from the store as it goes. Created by Quadtree.Drain. Unlike the
// borrowing iterators it knows its exact remaining count.
type Drain[U geometry.Scalar, V any] struct {
	remaining int
	store     *handleStore[U, V]
	it        *handleIter[U]
}

func (d *Drain[U, V]) Next() (Entry[U, V], bool) {
	h, ok := d.it.next()
	if !ok {
		return Entry[U, V]{}, false
	}

	e := d.store.MustGet(h)
	d.store.Delete(h)
	d.remaining--
	return Entry[U, V]{Region: e.region, Value: e.value}, true
}

// Len is the exact number of entries left to drain.
func (d *Drain[U, V]) Len() int {
	return d.remaining
}
