package ingwaz

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/ingwaz/geometry"
	"github.com/google/uuid"
)

// Handle is an opaque 128 bit identifier joining the index to the store.
// Handles are minted once per insertion and never reused; they are lookup
// keys only and carry no ordering.
type Handle uuid.UUID

func newHandle() Handle {
	return Handle(uuid.New())
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// entry is what the store owns for one handle: the region the value was
// inserted at and the value itself. The index never sees values.
type entry[U geometry.Scalar, V any] struct {
	region geometry.Area[U]
	value  V
}

// handleStore maps handles to their region/value entries. It is the only
// owner of values; the index graph holds handles alone, which keeps the
// tree cheap to walk and structurally mutate. No internal locking: the
// whole quadtree is the unit of exclusive access.
type handleStore[U geometry.Scalar, V any] struct {
	entries map[Handle]*entry[U, V]
}

func newHandleStore[U geometry.Scalar, V any]() *handleStore[U, V] {
	return &handleStore[U, V]{
		entries: make(map[Handle]*entry[U, V]),
	}
}

func (s *handleStore[U, V]) Set(h Handle, region geometry.Area[U], value V) {
	s.entries[h] = &entry[U, V]{region: region, value: value}
}

func (s *handleStore[U, V]) Get(h Handle) (*entry[U, V], bool) {
	e, ok := s.entries[h]
	return e, ok
}

// MustGet resolves a handle yielded by the index. A miss means the
// placement/store bookkeeping is broken, which is unrecoverable.
func (s *handleStore[U, V]) MustGet(h Handle) *entry[U, V] {
	e, ok := s.entries[h]
	if !ok {
		panic(errors.New("handle in index is missing from store").
			WithTag("handle", h.String()))
	}
	return e
}

func (s *handleStore[U, V]) Delete(h Handle) {
	delete(s.entries, h)
}

func (s *handleStore[U, V]) Len() int {
	return len(s.entries)
}

func (s *handleStore[U, V]) Clear() {
	s.entries = make(map[Handle]*entry[U, V])
}
