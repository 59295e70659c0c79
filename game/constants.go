package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// GroundCheckMargin is added to half of the character height to get the length of the grounded ray.
	GroundCheckMargin = float32(0.2)
	// DefaultForceMultiplier is used by every locomotion state without its own multiplier.
	DefaultForceMultiplier = float32(1)
	// ZeroVectorThreshold is the squared length under which a direction is treated as zero.
	ZeroVectorThreshold = float32(1e-10)
	// NormalizeThreshold is the length under which SafeNormalize returns the zero vector.
	NormalizeThreshold = float32(1e-5)
	// Gravity is the downward acceleration used by the reference physics world.
	Gravity = float32(9.81)
)

var (
	// Up is the world up axis.
	Up = mgl32.Vec3{0, 1, 0}
	// Down is the world down axis.
	Down = mgl32.Vec3{0, -1, 0}
)
