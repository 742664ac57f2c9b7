package ingwaz

import (
	"github.com/aukilabs/ingwaz/geometry"
)

// node is one quadrant of the indexed plane. It either keeps handles at
// this level or pushes them down into one of four lazily created
// subquadrants, indexed by geometry.Quadrant so that the split order is
// stable between insertion and lookup.
type node[U geometry.Scalar] struct {
	region   geometry.Area[U]
	depth    int
	children *[geometry.QuadrantCount]*node[U]
	handles  []Handle
}

func newNode[U geometry.Scalar](region geometry.Area[U], depth int) *node[U] {
	return &node[U]{
		region: region,
		depth:  depth,
	}
}

// insert places h at the shallowest node consistent with the push-down
// policy: while depth remains, descend into the unique subquadrant that
// wholly contains the region; otherwise keep the handle here. Reports false
// and stores nothing when the region does not fit this node's region.
func (n *node[U]) insert(region geometry.Area[U], h Handle) bool {
	if !n.region.Contains(region) {
		return false
	}

	if n.depth > 0 {
		n.split()
		for _, child := range n.children {
			if child.region.Contains(region) {
				return child.insert(region, h)
			}
		}
	}

	n.handles = append(n.handles, h)
	return true
}

// split creates the four subquadrants on first need. Each spans half of the
// node's width and height, which are powers of two and divide exactly.
func (n *node[U]) split() {
	if n.children != nil {
		return
	}

	anchor := n.region.Anchor()
	halfW := n.region.Width() / 2
	halfH := n.region.Height() / 2

	var children [geometry.QuadrantCount]*node[U]
	children[geometry.Northwest] = newNode(geometry.NewArea(anchor, halfW, halfH), n.depth-1)
	children[geometry.Northeast] = newNode(geometry.NewArea(anchor.Add(geometry.NewPoint(halfW, 0)), halfW, halfH), n.depth-1)
	children[geometry.Southwest] = newNode(geometry.NewArea(anchor.Add(geometry.NewPoint(0, halfH)), halfW, halfH), n.depth-1)
	children[geometry.Southeast] = newNode(geometry.NewArea(anchor.Add(geometry.NewPoint(halfW, halfH)), halfW, halfH), n.depth-1)
	n.children = &children
}

// reset returns the node to its just-created state, releasing the whole
// subtree. Region and depth are retained.
func (n *node[U]) reset() {
	n.children = nil
	n.handles = nil
}
