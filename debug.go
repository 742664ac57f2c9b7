package ingwaz

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/ingwaz/geometry"
	"github.com/segmentio/encoding/json"
)

// DebugInfo is an occupancy snapshot of a quadtree.
type DebugInfo struct {
	Depth      int   `json:"depth"`
	EntryCount int   `json:"entry_count"`
	NodeCount  int   `json:"node_count"`
	SplitCount int   `json:"split_count"`
	Occupancy  []int `json:"occupancy"`
}

// DebugInfo walks the index and reports how it is occupied. Occupancy
// holds the number of handles kept at each level, from the root down.
func (q *Quadtree[U, V]) DebugInfo() DebugInfo {
	info := DebugInfo{
		Depth:      q.depth,
		EntryCount: q.store.Len(),
		Occupancy:  make([]int, q.depth+1),
	}
	collectDebugInfo(q.root, 0, &info)
	return info
}

func collectDebugInfo[U geometry.Scalar](n *node[U], level int, info *DebugInfo) {
	info.NodeCount++
	info.Occupancy[level] += len(n.handles)

	if n.children == nil {
		return
	}
	info.SplitCount++
	for _, child := range n.children {
		collectDebugInfo(child, level+1, info)
	}
}

// JSON serializes the snapshot.
func (i DebugInfo) JSON() ([]byte, error) {
	return json.Marshal(i)
}

// LogSummary logs a one-line occupancy summary of the quadtree.
func (q *Quadtree[U, V]) LogSummary() {
	info := q.DebugInfo()

	logs.WithTag("depth", info.Depth).
		WithTag("entry_count", info.EntryCount).
		WithTag("node_count", info.NodeCount).
		WithTag("split_count", info.SplitCount).
		Info("quadtree summary")
}
