package geometry

// Area is an axis-aligned rectangle spanning the half-open ranges
// [anchor.X, anchor.X+width) x [anchor.Y, anchor.Y+height). The anchor is
// the top-left corner; width and height must be strictly positive.
type Area[U Scalar] struct {
	anchor Point[U]
	width  U
	height U
}

func NewArea[U Scalar](anchor Point[U], width, height U) Area[U] {
	return Area[U]{anchor: anchor, width: width, height: height}
}

// NewPointArea represents the point p as a 1x1 area.
func NewPointArea[U Scalar](p Point[U]) Area[U] {
	return NewArea(p, 1, 1)
}

func (a Area[U]) Anchor() Point[U] {
	return a.anchor
}

func (a Area[U]) Width() U {
	return a.width
}

func (a Area[U]) Height() U {
	return a.height
}

// rightEdge returns the first x coordinate east of a. ok is false when the
// edge does not fit in U, in which case the area is treated as reaching the
// maximum representable coordinate.
func (a Area[U]) rightEdge() (edge U, ok bool) {
	edge = a.anchor.X + a.width
	return edge, edge > a.anchor.X
}

func (a Area[U]) bottomEdge() (edge U, ok bool) {
	edge = a.anchor.Y + a.height
	return edge, edge > a.anchor.Y
}

// Contains reports whether b lies wholly inside a. Unlike Intersects it is
// not symmetric: a.Contains(b) implies a.Intersects(b) but not the reverse.
func (a Area[U]) Contains(b Area[U]) bool {
	if b.anchor.X < a.anchor.X || b.anchor.Y < a.anchor.Y {
		return false
	}

	aRight, aOK := a.rightEdge()
	bRight, bOK := b.rightEdge()
	if aOK && (!bOK || bRight > aRight) {
		return false
	}

	aBottom, aOK := a.bottomEdge()
	bBottom, bOK := b.bottomEdge()
	if aOK && (!bOK || bBottom > aBottom) {
		return false
	}

	return true
}

// Intersects reports whether a and b share at least one coordinate cell.
func (a Area[U]) Intersects(b Area[U]) bool {
	aRight, aOK := a.rightEdge()
	bRight, bOK := b.rightEdge()
	if aOK && b.anchor.X >= aRight {
		return false
	}
	if bOK && a.anchor.X >= bRight {
		return false
	}

	aBottom, aOK := a.bottomEdge()
	bBottom, bOK := b.bottomEdge()
	if aOK && b.anchor.Y >= aBottom {
		return false
	}
	if bOK && a.anchor.Y >= bBottom {
		return false
	}

	return true
}
