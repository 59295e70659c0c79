package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/physics"
)

// RigidBody is the physics body a Controller drives. *physics.Body implements it.
type RigidBody interface {
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	SetVelocity(vel mgl32.Vec3)
	LinearDamping() float32
	SetLinearDamping(d float32)
	AddForce(force mgl32.Vec3, mode physics.ForceMode)
}

// GroundProbe answers ray casts against the world. *physics.World implements it.
type GroundProbe interface {
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask physics.LayerMask) bool
}

// Orientation provides the basis used to turn input axes into a world-space direction.
type Orientation interface {
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
}

// Components are the collaborators a Controller reads from and writes to. Every field is required.
type Components struct {
	Body        RigidBody
	Ground      GroundProbe
	Input       input.Source
	Orientation Orientation
}

// YawOrientation is a flat orientation looking along a yaw angle in degrees. A yaw of 0 looks along
// +Z and right is +X.
type YawOrientation struct {
	Yaw float32
}

// Forward ...
func (o *YawOrientation) Forward() mgl32.Vec3 {
	return game.DirectionVector(-o.Yaw, 0)
}

// Right ...
func (o *YawOrientation) Right() mgl32.Vec3 {
	rad := mgl32.DegToRad(o.Yaw)
	return mgl32.Vec3{math32.Cos(rad), 0, -math32.Sin(rad)}
}

// Turn rotates the orientation by delta degrees.
func (o *YawOrientation) Turn(delta float32) {
	o.Yaw = game.WrapYaw(o.Yaw + delta)
}

// FixedOrientation is an orientation with constant basis vectors.
type FixedOrientation struct {
	F, R mgl32.Vec3
}

// WorldOrientation looks along +Z with +X to the right.
func WorldOrientation() FixedOrientation {
	return FixedOrientation{F: mgl32.Vec3{0, 0, 1}, R: mgl32.Vec3{1, 0, 0}}
}

// Forward ...
func (o FixedOrientation) Forward() mgl32.Vec3 {
	return o.F
}

// Right ...
func (o FixedOrientation) Right() mgl32.Vec3 {
	return o.R
}
