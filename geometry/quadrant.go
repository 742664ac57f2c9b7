package geometry

// Quadrant identifies one of the four half-open quadrants around a point,
// and doubles as the index of the matching subquadrant in an index node.
type Quadrant int

const (
	Northeast Quadrant = iota
	Northwest
	Southeast
	Southwest

	QuadrantCount = 4
)

func (q Quadrant) String() string {
	switch q {
	case Northeast:
		return "northeast"
	case Northwest:
		return "northwest"
	case Southeast:
		return "southeast"
	case Southwest:
		return "southwest"
	}
	return "unknown"
}
