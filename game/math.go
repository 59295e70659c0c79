package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzLen returns the length of the XZ component of a vector.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// IsZeroVec3 reports whether vec3 is close enough to the zero vector to be treated as no movement.
func IsZeroVec3(vec3 mgl32.Vec3) bool {
	return vec3.LenSqr() < ZeroVectorThreshold
}

// SafeNormalize returns the unit vector of vec3, or the zero vector if vec3 is too short to have a
// meaningful direction. mgl32's Normalize divides by the length and produces NaN for zero vectors.
func SafeNormalize(vec3 mgl32.Vec3) mgl32.Vec3 {
	l := vec3.Len()
	if l <= NormalizeThreshold {
		return mgl32.Vec3{}
	}
	return vec3.Mul(1 / l)
}

// ClampHorizontal limits the XZ length of vel to max. The Y component is returned untouched. The
// second return value is true if the vector was changed.
func ClampHorizontal(vel mgl32.Vec3, max float32) (mgl32.Vec3, bool) {
	hzLen := Vec3HzLen(vel)
	if hzLen <= max || hzLen == 0 {
		return vel, false
	}
	scale := max / hzLen
	return mgl32.Vec3{vel[0] * scale, vel[1], vel[2] * scale}, true
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// WrapYaw wraps a yaw angle into the range (-180, 180].
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw > 180 {
		yaw -= 360
	} else if yaw <= -180 {
		yaw += 360
	}
	return yaw
}
