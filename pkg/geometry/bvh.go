package geometry

import (
	"sort"

	"github.com/dkossen/mcpt-go/pkg/core"
	"github.com/dkossen/mcpt-go/pkg/material"
)

// BVHNode is one node of the strictly binary BVH: every internal node
// owns exactly two non-nil children and caches their union box; a
// leaf holds a single primitive. An arena of nodes indexed by
// integers is the systems-language alternative; this tree uses plain
// pointers since Go's GC owns the lifetime question for us.
type BVHNode struct {
	Box         AABB
	Left, Right *BVHNode
	Leaf        *Triangle // non-nil only for leaves
}

// BVH is a binary tree over a fixed set of triangles, built once at
// scene-construction time and read-only for the rest of the render.
type BVH struct {
	Root *BVHNode
}

// BuildBVH constructs a BVH over prims using median splits on the
// widest axis. The input slice is sorted in place.
func BuildBVH(prims []*Triangle) *BVH {
	return &BVH{Root: buildNode(prims)}
}

func buildNode(prims []*Triangle) *BVHNode {
	switch len(prims) {
	case 0:
		return nil
	case 1:
		return &BVHNode{Box: prims[0].BoundingBox(), Leaf: prims[0]}
	}

	box := EmptyAABB()
	for _, p := range prims {
		box = box.Union(p.BoundingBox())
	}

	axis := box.LongestAxis()
	sort.Slice(prims, func(i, j int) bool {
		return axisMin(prims[i].BoundingBox(), axis) < axisMin(prims[j].BoundingBox(), axis)
	})

	mid := len(prims) / 2
	return &BVHNode{
		Box:   box,
		Left:  buildNode(prims[:mid]),
		Right: buildNode(prims[mid:]),
	}
}

func axisMin(b AABB, axis int) float32 {
	return b.Min.Component(axis)
}

// Depth returns the tree's depth: 0 for an empty BVH, 1 for a single
// leaf, otherwise 1 plus the deeper child's depth.
func (bvh *BVH) Depth() int {
	return nodeDepth(bvh.Root)
}

func nodeDepth(n *BVHNode) int {
	if n == nil {
		return 0
	}
	if n.Leaf != nil {
		return 1
	}
	l, r := nodeDepth(n.Left), nodeDepth(n.Right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Hit traverses the BVH front-to-back, returning the closest hit
// strictly within (tLo,tHi).
func (bvh *BVH) Hit(ray core.Ray, tLo, tHi float32) (material.HitRecord, bool) {
	if bvh.Root == nil {
		return material.HitRecord{}, false
	}
	return hitNode(bvh.Root, ray, tLo, tHi)
}

func hitNode(node *BVHNode, ray core.Ray, tLo, tHi float32) (material.HitRecord, bool) {
	if node.Leaf != nil {
		return node.Leaf.Hit(ray, tLo, tHi)
	}

	leftT, leftHit := node.Left.Box.Hit(ray, tLo, tHi)
	rightT, rightHit := node.Right.Box.Hit(ray, tLo, tHi)

	switch {
	case leftHit && rightHit:
		near, far := node.Left, node.Right
		farT := rightT
		if rightT < leftT {
			near, far = node.Right, node.Left
			farT = leftT
		}
		if rec, ok := hitNode(near, ray, tLo, tHi); ok {
			if rec.T < farT {
				return rec, true
			}
			if farRec, farOk := hitNode(far, ray, tLo, rec.T); farOk {
				return farRec, true
			}
			return rec, true
		}
		return hitNode(far, ray, tLo, tHi)

	case leftHit:
		return hitNode(node.Left, ray, tLo, tHi)

	case rightHit:
		return hitNode(node.Right, ray, tLo, tHi)

	default:
		return material.HitRecord{}, false
	}
}
