package ingwaz

import (
	"testing"

	"github.com/aukilabs/ingwaz/geometry"
	"github.com/stretchr/testify/require"
)

// countHandles walks the subtree and tallies every kept handle.
func countHandles[U geometry.Scalar](n *node[U], counts map[Handle]int) {
	for _, h := range n.handles {
		counts[h]++
	}
	if n.children == nil {
		return
	}
	for _, child := range n.children {
		countHandles(child, counts)
	}
}

func TestNodeInsertOutOfBounds(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(0, 0), 4, 4), 2)

	require.False(t, n.insert(geometry.NewArea(geometry.NewPoint(3, 3), 2, 2), newHandle()))
	require.False(t, n.insert(geometry.NewArea(geometry.NewPoint(-1, 0), 1, 1), newHandle()))
	require.Nil(t, n.children)
	require.Empty(t, n.handles)
}

func TestNodeInsertDescendsToSmallestQuadrant(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(0, 0), 4, 4), 2)

	h := newHandle()
	require.True(t, n.insert(geometry.NewArea(geometry.NewPoint(0, 0), 1, 1), h))

	// A 1x1 region in the top-left corner belongs to the northwest leaf
	// two levels down, and nowhere else.
	require.Empty(t, n.handles)
	nw := n.children[geometry.Northwest]
	require.Empty(t, nw.handles)
	leaf := nw.children[geometry.Northwest]
	require.Equal(t, []Handle{h}, leaf.handles)

	counts := make(map[Handle]int)
	countHandles(n, counts)
	require.Equal(t, map[Handle]int{h: 1}, counts)
}

func TestNodeInsertKeepsSpanningRegionAtRoot(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(0, 0), 4, 4), 2)

	// (1, 1) 2x2 straddles all four quadrants.
	h := newHandle()
	require.True(t, n.insert(geometry.NewArea(geometry.NewPoint(1, 1), 2, 2), h))
	require.Equal(t, []Handle{h}, n.handles)
}

func TestNodeInsertStopsAtDepthZero(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(0, 0), 1, 1), 0)

	h := newHandle()
	require.True(t, n.insert(geometry.NewPointArea(geometry.NewPoint(0, 0)), h))
	require.Nil(t, n.children)
	require.Equal(t, []Handle{h}, n.handles)
}

func TestNodeChildRegionsQuarterTheParent(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(4, 8), 4, 4), 1)
	n.split()

	require.Equal(t, geometry.NewArea(geometry.NewPoint(4, 8), 2, 2), n.children[geometry.Northwest].region)
	require.Equal(t, geometry.NewArea(geometry.NewPoint(6, 8), 2, 2), n.children[geometry.Northeast].region)
	require.Equal(t, geometry.NewArea(geometry.NewPoint(4, 10), 2, 2), n.children[geometry.Southwest].region)
	require.Equal(t, geometry.NewArea(geometry.NewPoint(6, 10), 2, 2), n.children[geometry.Southeast].region)

	for _, child := range n.children {
		require.Equal(t, 0, child.depth)
	}
}

// Every stored handle appears in exactly one node's kept set.
func TestNodeKeepsEachHandleExactlyOnce(t *testing.T) {
	n := newNode(geometry.NewArea(geometry.NewPoint(0, 0), 16, 16), 4)

	inserted := make(map[Handle]int)
	regions := []geometry.Area[int]{
		geometry.NewArea(geometry.NewPoint(0, 0), 2, 1),
		geometry.NewArea(geometry.NewPoint(0, 5), 7, 7),
		geometry.NewArea(geometry.NewPoint(1, 3), 1, 3),
		geometry.NewArea(geometry.NewPoint(10, 10), 1, 1),
		geometry.NewArea(geometry.NewPoint(0, 0), 16, 16),
		geometry.NewArea(geometry.NewPoint(15, 15), 1, 1),
		geometry.NewArea(geometry.NewPoint(7, 7), 2, 2),
	}
	for _, region := range regions {
		h := newHandle()
		require.True(t, n.insert(region, h))
		inserted[h] = 1
	}

	counts := make(map[Handle]int)
	countHandles(n, counts)
	require.Equal(t, inserted, counts)
}

func TestNodeReset(t *testing.T) {
	region := geometry.NewArea(geometry.NewPoint(0, 0), 8, 8)
	n := newNode(region, 3)

	require.True(t, n.insert(geometry.NewPointArea(geometry.NewPoint(1, 1)), newHandle()))
	require.True(t, n.insert(geometry.NewArea(geometry.NewPoint(2, 2), 4, 4), newHandle()))
	require.NotNil(t, n.children)

	n.reset()

	require.Nil(t, n.children)
	require.Empty(t, n.handles)
	require.Equal(t, region, n.region)
	require.Equal(t, 3, n.depth)

	// A reset node accepts new insertions.
	require.True(t, n.insert(geometry.NewPointArea(geometry.NewPoint(1, 1)), newHandle()))
}
