package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/sasha-s/go-deadlock"
)

// Collider is a static box on a single layer.
type Collider struct {
	Box   cube.BBox
	Layer Layer
}

// World holds static colliders and the bodies stepped against them. Colliders may be added from any
// goroutine; Step and Raycast take the read lock.
type World struct {
	gravity float32

	layers    *Layers
	colliders []Collider
	bodies    []*Body

	deadlock.RWMutex
}

// NewWorld returns an empty world using the layer registry passed. A nil registry creates one
// containing only the default layer.
func NewWorld(layers *Layers, gravity float32) *World {
	if layers == nil {
		layers = NewLayers()
	}
	return &World{
		gravity: gravity,
		layers:  layers,
	}
}

// Layers returns the layer registry of the world.
func (w *World) Layers() *Layers {
	return w.layers
}

// AddCollider adds a static box on the given layer.
func (w *World) AddCollider(box cube.BBox, layer Layer) {
	w.Lock()
	defer w.Unlock()

	w.colliders = append(w.colliders, Collider{Box: box, Layer: layer})
}

// AddBody registers a body so that Step integrates it.
func (w *World) AddBody(b *Body) {
	w.Lock()
	defer w.Unlock()

	w.bodies = append(w.bodies, b)
}

// Colliders returns a copy of the static colliders in the world.
func (w *World) Colliders() []Collider {
	w.RLock()
	defer w.RUnlock()

	return append([]Collider(nil), w.colliders...)
}

// Raycast returns true if a ray from origin along dir, at most maxDist long, touches a collider whose
// layer is part of mask.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask LayerMask) bool {
	if mask == 0 || maxDist <= 0 || game.IsZeroVec3(dir) {
		return false
	}
	end := game.RayEnd(origin, dir, maxDist)

	w.RLock()
	defer w.RUnlock()

	for _, c := range w.colliders {
		if !mask.Has(c.Layer) {
			continue
		}
		if game.RayIntersects(c.Box, origin, end) {
			return true
		}
	}
	return false
}

// Step integrates every registered body by dt and rests falling bodies on top of the colliders they
// sink into. Only vertical resolution is performed.
func (w *World) Step(dt float32) {
	w.RLock()
	defer w.RUnlock()

	for _, b := range w.bodies {
		b.integrate(dt, w.gravity)
		w.resolveVertical(b)
	}
}

func (w *World) resolveVertical(b *Body) {
	b.onSurface = false
	if b.vel.Y() > 0 {
		return
	}

	bb := b.BoundingBox()
	for _, c := range w.colliders {
		if !bb.IntersectsWith(c.Box) {
			continue
		}
		top := c.Box.Max().Y()
		feet := bb.Min().Y()
		// Only rest on the collider if the body was above it; side contacts are ignored.
		if top-feet > b.height/2 {
			continue
		}
		b.pos[1] += top - feet
		b.vel[1] = 0
		b.onSurface = true
		bb = b.BoundingBox()
	}
}
