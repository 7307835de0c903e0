package starfield

import (
	"math"
	"sort"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
)

// Index is an immutable balanced kd-tree over star directions. It is built
// once by BuildIndex and then shared read-only across all render workers;
// nearest-neighbor queries use squared Euclidean distance in the embedding
// space, an adequate proxy for angular distance between unit vectors.
type Index struct {
	root *kdNode
	size int
}

type kdNode struct {
	star  Star
	axis  int
	left  *kdNode
	right *kdNode
}

// BuildIndex bulk-loads a balanced index by recursive median split,
// cycling the split axis with depth. The input slice is copied, so the
// caller's ordering is preserved.
func BuildIndex(stars []Star) *Index {
	entries := make([]Star, len(stars))
	copy(entries, stars)
	return &Index{
		root: buildNode(entries, 0),
		size: len(entries),
	}
}

func buildNode(stars []Star, depth int) *kdNode {
	if len(stars) == 0 {
		return nil
	}
	axis := depth % 3
	sort.Slice(stars, func(i, j int) bool {
		return axisValue(stars[i].Direction, axis) < axisValue(stars[j].Direction, axis)
	})
	mid := len(stars) / 2
	return &kdNode{
		star:  stars[mid],
		axis:  axis,
		left:  buildNode(stars[:mid], depth+1),
		right: buildNode(stars[mid+1:], depth+1),
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Len returns the number of indexed stars.
func (ix *Index) Len() int {
	return ix.size
}

// Nearest returns the star whose direction is closest to dir and the
// squared distance between them. The boolean is false for an empty index.
func (ix *Index) Nearest(dir core.Vec3) (Star, float64, bool) {
	if ix.root == nil {
		return Star{}, math.Inf(1), false
	}
	best := ix.root.star
	bestD2 := dir.DistanceSquared(best.Direction)
	ix.root.nearest(dir, &best, &bestD2)
	return best, bestD2, true
}

// nearest descends toward the query first, then unwinds, pruning any
// subtree whose splitting plane is farther than the best distance found.
func (n *kdNode) nearest(dir core.Vec3, best *Star, bestD2 *float64) {
	if n == nil {
		return
	}
	d2 := dir.DistanceSquared(n.star.Direction)
	if d2 < *bestD2 {
		*best = n.star
		*bestD2 = d2
	}

	delta := axisValue(dir, n.axis) - axisValue(n.star.Direction, n.axis)
	near, far := n.left, n.right
	if delta > 0 {
		near, far = far, near
	}
	near.nearest(dir, best, bestD2)
	if delta*delta < *bestD2 {
		far.nearest(dir, best, bestD2)
	}
}
