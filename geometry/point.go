package geometry

import "golang.org/x/exp/constraints"

// Scalar is the coordinate type of a plane. Any primitive integer works,
// signed or unsigned; one plane uses a single scalar type throughout.
type Scalar interface {
	constraints.Integer
}

// Point is an x/y coordinate pair. The plane has (0, 0) in the top-left
// corner, +x pointing east and +y pointing south. Passed by value.
type Point[U Scalar] struct {
	X U
	Y U
}

func NewPoint[U Scalar](x, y U) Point[U] {
	return Point[U]{X: x, Y: y}
}

func (p Point[U]) Add(q Point[U]) Point[U] {
	return Point[U]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[U]) Sub(q Point[U]) Point[U] {
	return Point[U]{X: p.X - q.X, Y: p.Y - q.Y}
}

// DirTowards classifies where other lies relative to p. The four quadrants
// are half-open so that every point except p itself gets exactly one label:
//   - strictly east, at or north  -> Northeast
//   - at or west, strictly north  -> Northwest
//   - strictly west, at or south  -> Southwest
//   - everything else             -> Southeast
func (p Point[U]) DirTowards(other Point[U]) Quadrant {
	switch {
	case other.X > p.X && other.Y <= p.Y:
		return Northeast
	case other.X <= p.X && other.Y < p.Y:
		return Northwest
	case other.X < p.X && other.Y >= p.Y:
		return Southwest
	default:
		return Southeast
	}
}
