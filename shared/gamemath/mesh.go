package gamemath

import "github.com/go-gl/mathgl/mgl32"

// Face is a flat polygon with an outward normal. Quads have four corners,
// triangles repeat the last corner.
type Face struct {
	Corners [4]mgl32.Vec3
	Normal  mgl32.Vec3
}

// Center is the mean of the corners.
func (f Face) Center() mgl32.Vec3 {
	c := f.Corners[0].Add(f.Corners[1]).Add(f.Corners[2]).Add(f.Corners[3])
	return c.Mul(0.25)
}

var boxFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1}}},
}

// Box returns the six faces of a box with the given half extents, rotated
// by rot and centred on center.
func Box(center, half mgl32.Vec3, rot mgl32.Quat) []Face {
	faces := make([]Face, 0, 6)
	for _, bf := range boxFaces {
		var f Face
		for i, c := range bf.corners {
			local := mgl32.Vec3{c[0] * half[0], c[1] * half[1], c[2] * half[2]}
			f.Corners[i] = center.Add(rot.Rotate(local))
		}
		f.Normal = rot.Rotate(bf.normal)
		faces = append(faces, f)
	}
	return faces
}

// Pyramid returns a square pyramid pointing along local +z: base half width
// w at the origin, apex at height h. Used for field arrows.
func Pyramid(origin mgl32.Vec3, w, h float32, rot mgl32.Quat) []Face {
	apex := mgl32.Vec3{0, 0, h}
	base := [4]mgl32.Vec3{{-w, -w, 0}, {w, -w, 0}, {w, w, 0}, {-w, w, 0}}

	faces := make([]Face, 0, 5)
	for i := range base {
		a, b := base[i], base[(i+1)%4]
		n := b.Sub(a).Cross(apex.Sub(a)).Normalize()
		faces = append(faces, Face{
			Corners: [4]mgl32.Vec3{
				origin.Add(rot.Rotate(a)),
				origin.Add(rot.Rotate(b)),
				origin.Add(rot.Rotate(apex)),
				origin.Add(rot.Rotate(apex)),
			},
			Normal: rot.Rotate(n),
		})
	}
	faces = append(faces, Face{
		Corners: [4]mgl32.Vec3{
			origin.Add(rot.Rotate(base[3])),
			origin.Add(rot.Rotate(base[2])),
			origin.Add(rot.Rotate(base[1])),
			origin.Add(rot.Rotate(base[0])),
		},
		Normal: rot.Rotate(mgl32.Vec3{0, 0, -1}),
	})
	return faces
}

// Shade returns the light factor in [ambient, 1] for a face normal. light
// points toward the light source.
func Shade(normal, light mgl32.Vec3, ambient float32) float32 {
	d := normal.Dot(light)
	if d < 0 {
		d = 0
	}
	return Clamp01(ambient + (1-ambient)*d)
}
