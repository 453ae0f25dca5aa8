// Package gamemath holds the pure float32 helpers shared by the flight
// simulation and the camera. Nothing here touches ebiten or donburi.
package gamemath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const TwoPi = 2 * math32.Pi

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]. NaN collapses to 0.
func Clamp01(v float32) float32 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp blends a toward b by t.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// WrapAngle maps an angle to [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// MoveVector combines held direction buttons into a planar move of length
// speed*dt. Opposing buttons cancel. The diagonal is normalized so it is no
// faster than a single axis.
func MoveVector(left, right, down, up bool, speed, dt float32) mgl32.Vec2 {
	var mv mgl32.Vec2
	if left && !right {
		mv[0] = -1
	}
	if right && !left {
		mv[0] = 1
	}
	if down && !up {
		mv[1] = -1
	}
	if up && !down {
		mv[1] = 1
	}
	if mv[0] == 0 && mv[1] == 0 {
		return mv
	}
	return mv.Normalize().Mul(speed * dt)
}

// RotateZ rotates a planar vector by yaw radians about the z axis.
func RotateZ(v mgl32.Vec2, yaw float32) mgl32.Vec2 {
	s, c := math32.Sin(yaw), math32.Cos(yaw)
	return mgl32.Vec2{v[0]*c - v[1]*s, v[0]*s + v[1]*c}
}

// LookDirection is the unit vector the player faces for the given angles.
// Yaw 0 faces +y.
func LookDirection(yaw, pitch float32) mgl32.Vec3 {
	sy, cy := math32.Sin(yaw), math32.Cos(yaw)
	sp, cp := math32.Sin(pitch), math32.Cos(pitch)
	return mgl32.Vec3{-sy * cp, cy * cp, sp}
}
