package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

// RayEnd returns the end point of a ray of the given length starting at origin. dir does not need to
// be normalized.
func RayEnd(origin, dir mgl32.Vec3, length float32) mgl32.Vec3 {
	return origin.Add(SafeNormalize(dir).Mul(length))
}

// RayIntersects returns true if the segment from start to end touches bb. A start point already
// inside the box counts as a hit.
func RayIntersects(bb cube.BBox, start, end mgl32.Vec3) bool {
	if vecInside(bb, start) {
		return true
	}
	_, ok := trace.BBoxIntercept(bb, start, end)
	return ok
}

func vecInside(bb cube.BBox, v mgl32.Vec3) bool {
	min, max := bb.Min(), bb.Max()
	return v[0] >= min[0] && v[0] <= max[0] &&
		v[1] >= min[1] && v[1] <= max[1] &&
		v[2] >= min[2] && v[2] <= max[2]
}
