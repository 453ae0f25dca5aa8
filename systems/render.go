package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Index buffers are uint16; flush well before they overflow.
const maxBatchVertices = 65535 - 4

var (
	whiteSubImage *ebiten.Image
	triangleOp    = &ebiten.DrawTrianglesOptions{}
)

// solidImage is the one-pixel source for flat colored triangles.
func solidImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// drawFace is a face ready for the painter's sort.
type drawFace struct {
	gamemath.Face
	Color color.RGBA
	Depth float32
}

// DrawScene renders the level blocks, field arrows and the astronaut from
// the camera pose. The scene clears the screen first.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	camera.Aspect = float32(w) / float32(h)

	proj := gamemath.NewProjector(camera.Pose, camera.FovY, camera.Near, camera.Far, w, h)
	faces := sceneFaces(e, camera.Position, camera.Light, proj)
	drawFaces(screen, faces, proj)
}

// sceneFaces collects every face that points toward the camera, shaded and
// sorted back to front.
func sceneFaces(e *ecs.ECS, eye, light mgl32.Vec3, proj gamemath.Projector) []drawFace {
	var faces []drawFace
	add := func(fs []gamemath.Face, c color.RGBA) {
		for _, f := range fs {
			if f.Normal.Dot(f.Center().Sub(eye)) >= 0 {
				continue
			}
			depth := proj.Depth(f.Center())
			if depth <= 0 {
				continue
			}
			faces = append(faces, drawFace{
				Face:  f,
				Color: shadeColor(c, gamemath.Shade(f.Normal, light, cfg.Render.Ambient)),
				Depth: depth,
			})
		}
	}

	components.Block.Each(e.World, func(entry *donburi.Entry) {
		b := components.Block.Get(entry)
		if entry.HasComponent(tags.Arrow) {
			add(gamemath.Pyramid(b.Position, b.Scale*2, b.Scale*5, b.Rotation), b.Descriptor.Color)
			return
		}
		half := mgl32.Vec3{b.Scale, b.Scale, b.Scale}
		add(gamemath.Box(b.Position, half, b.Rotation), b.Descriptor.Color)
	})

	if playerEntry, ok := components.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry)
		add(astronautFaces(p), cfg.Render.AstronautColor)
	}

	sort.Slice(faces, func(i, j int) bool {
		return faces[i].Depth > faces[j].Depth
	})
	return faces
}

// astronautFaces is a box standing on the body position.
func astronautFaces(p *components.PlayerData) []gamemath.Face {
	s := cfg.Level.TileSize * cfg.Render.AstronautScale
	center := p.BodyPosition.Add(p.Body.Rotate(mgl32.Vec3{0, 0, s}))
	return gamemath.Box(center, mgl32.Vec3{s * 0.6, s * 0.4, s}, p.Body)
}

func shadeColor(c color.RGBA, shade float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * shade),
		G: uint8(float32(c.G) * shade),
		B: uint8(float32(c.B) * shade),
		A: c.A,
	}
}

func drawFaces(screen *ebiten.Image, faces []drawFace, proj gamemath.Projector) {
	src := solidImage()
	vertices, indices := faceTriangles(faces, proj, func(vs []ebiten.Vertex, is []uint16) {
		screen.DrawTriangles(vs, is, src, triangleOp)
	})
	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, src, triangleOp)
	}
}

// faceTriangles converts faces to vertices and indices. flush is called
// whenever a batch is full; the remainder is returned.
func faceTriangles(faces []drawFace, proj gamemath.Projector, flush func([]ebiten.Vertex, []uint16)) ([]ebiten.Vertex, []uint16) {
	var vertices []ebiten.Vertex
	var indices []uint16

	for _, f := range faces {
		var pts [4][2]float32
		visible := true
		for i, c := range f.Corners {
			x, y, ok := proj.Project(c)
			if !ok {
				visible = false
				break
			}
			pts[i] = [2]float32{x, y}
		}
		if !visible {
			continue
		}

		if len(vertices)+4 > maxBatchVertices {
			flush(vertices, indices)
			vertices, indices = vertices[:0], indices[:0]
		}

		r := float32(f.Color.R) / 0xff
		g := float32(f.Color.G) / 0xff
		b := float32(f.Color.B) / 0xff
		a := float32(f.Color.A) / 0xff
		base := uint16(len(vertices))
		for _, p := range pts {
			vertices = append(vertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
