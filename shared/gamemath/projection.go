package gamemath

import "github.com/go-gl/mathgl/mgl32"

// Projector maps world positions to screen pixels for a camera pose.
type Projector struct {
	viewProj mgl32.Mat4
	view     mgl32.Mat4
	near     float32
	width    float32
	height   float32
}

// NewProjector builds a perspective projector. fovY is in radians and the
// screen is width x height pixels.
func NewProjector(cam Pose, fovY, near, far float32, width, height int) Projector {
	aspect := float32(width) / float32(height)
	view := cam.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-cam.Position[0], -cam.Position[1], -cam.Position[2]))
	return Projector{
		viewProj: mgl32.Perspective(fovY, aspect, near, far).Mul4(view),
		view:     view,
		near:     near,
		width:    float32(width),
		height:   float32(height),
	}
}

// Depth is the distance in front of the camera along its view axis.
func (p Projector) Depth(v mgl32.Vec3) float32 {
	return -p.view.Mul4x1(v.Vec4(1)).Z()
}

// Project returns the screen position of v. ok is false when v is not in
// front of the near plane.
func (p Projector) Project(v mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() < p.near {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * p.width, (1 - ndcY) / 2 * p.height, true
}
