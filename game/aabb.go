package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions. The box is centred on the
// X and Z axes and starts at Y=0.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// CentredAABB returns a bounding box of the given dimensions whose centre is at pos.
func CentredAABB(pos mgl32.Vec3, width, height float32) cube.BBox {
	return AABBFromDimensions(width, height).Translate(pos.Sub(mgl32.Vec3{0, height / 2}))
}

// PlaneAABB returns a flat slab whose top face is at y and which spans halfExtent in X and Z around
// the origin. thickness is how far the slab extends below y.
func PlaneAABB(y, halfExtent, thickness float32) cube.BBox {
	return cube.Box(
		-halfExtent, y-thickness, -halfExtent,
		halfExtent, y, halfExtent,
	)
}
