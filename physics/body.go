package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// ForceMode decides how AddForce changes the velocity of a Body.
type ForceMode uint8

const (
	// ForceModeForce accumulates a continuous force which is applied over the next Step.
	ForceModeForce ForceMode = iota
	// ForceModeImpulse changes the velocity immediately by force/mass.
	ForceModeImpulse
)

func (m ForceMode) String() string {
	switch m {
	case ForceModeForce:
		return "Force"
	case ForceModeImpulse:
		return "Impulse"
	default:
		return "Unknown"
	}
}

// Body is a minimal rigid body owned by a single character. It is not safe for concurrent use; the
// simulation guarantees that a body is only touched by its own controller and the world step.
type Body struct {
	pos   mgl32.Vec3
	vel   mgl32.Vec3
	force mgl32.Vec3

	mass    float32
	damping float32

	width, height float32

	useGravity bool
	onSurface  bool
}

// NewBody returns a body centred at pos with the given collider dimensions and mass. A mass of zero
// or less is treated as 1.
func NewBody(pos mgl32.Vec3, width, height, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		pos:        pos,
		mass:       mass,
		width:      width,
		height:     height,
		useGravity: true,
	}
}

// Position returns the centre of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition teleports the body. Velocity is kept.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

// Velocity returns the linear velocity of the body.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.vel
}

// SetVelocity overwrites the linear velocity of the body.
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.vel = vel
}

// LinearDamping returns the velocity decay coefficient.
func (b *Body) LinearDamping() float32 {
	return b.damping
}

// SetLinearDamping sets the velocity decay coefficient. Negative values are clamped to zero.
func (b *Body) SetLinearDamping(d float32) {
	b.damping = math32.Max(0, d)
}

// Mass ...
func (b *Body) Mass() float32 {
	return b.mass
}

// SetGravity toggles gravity for the body.
func (b *Body) SetGravity(enabled bool) {
	b.useGravity = enabled
}

// PendingForce returns the continuous force accumulated since the last Step.
func (b *Body) PendingForce() mgl32.Vec3 {
	return b.force
}

// OnSurface returns true if the last Step left the body resting on a collider.
func (b *Body) OnSurface() bool {
	return b.onSurface
}

// BoundingBox returns the collider of the body at its current position.
func (b *Body) BoundingBox() cube.BBox {
	return game.CentredAABB(b.pos, b.width, b.height)
}

// Height ...
func (b *Body) Height() float32 {
	return b.height
}

// AddForce applies force to the body using the mode passed.
func (b *Body) AddForce(force mgl32.Vec3, mode ForceMode) {
	switch mode {
	case ForceModeImpulse:
		b.vel = b.vel.Add(force.Mul(1 / b.mass))
	default:
		b.force = b.force.Add(force)
	}
}

// integrate advances velocity and position by dt. Forces accumulated through AddForce are consumed.
func (b *Body) integrate(dt float32, gravity float32) {
	accel := b.force.Mul(1 / b.mass)
	if b.useGravity {
		accel[1] -= gravity
	}
	b.force = mgl32.Vec3{}

	b.vel = b.vel.Add(accel.Mul(dt))
	b.vel = b.vel.Mul(math32.Max(0, 1-b.damping*dt))
	b.pos = b.pos.Add(b.vel.Mul(dt))
}
