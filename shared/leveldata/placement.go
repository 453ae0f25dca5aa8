package leveldata

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Descriptor is what a renderer needs to know to draw a block kind. Actual
// images and meshes are owned by the renderer.
type Descriptor struct {
	Mesh  string
	Color color.RGBA
}

var descriptors = map[BlockKind]Descriptor{
	Grass:        {Mesh: "grass", Color: color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}},
	Antimatter:   {Mesh: "block", Color: color.RGBA{R: 0xd5, G: 0x1a, B: 0x2e, A: 0xff}},
	Target:       {Mesh: "target", Color: color.RGBA{R: 0xff, G: 0xd5, B: 0x00, A: 0xff}},
	GravityField: {Mesh: "field", Color: color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0x90}},
}

var arrowDescriptor = Descriptor{Mesh: "arrow", Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

// Describe returns the renderable descriptor for a block.
func Describe(b Block) (Descriptor, bool) {
	d, ok := descriptors[b.Kind]
	return d, ok
}

// Placement positions one renderable instance in world space.
type Placement struct {
	Block      Block
	Descriptor Descriptor
	Position   mgl32.Vec3
	Rotation   mgl32.Quat
	Scale      float32
	Arrow      bool
}

// Placements lists every renderable instance of a grid: one per non-empty
// cell plus an arrow for each gravity field. Inert fields get an unrotated
// arrow like FieldUp.
func Placements(g *Grid) []Placement {
	var out []Placement
	tile := g.Dims.TileSize
	g.Each(func(x, y, z int, b Block) {
		d, ok := Describe(b)
		if !ok {
			return
		}
		ox, oy, oz := g.CellOrigin(x, y, z)
		out = append(out, Placement{
			Block:      b,
			Descriptor: d,
			Position:   mgl32.Vec3{ox + tile/2, oy + tile/2, oz + tile/2},
			Rotation:   mgl32.QuatIdent(),
			Scale:      tile / 2,
		})

		if b.Kind != GravityField {
			return
		}
		rot := mgl32.QuatIdent()
		if b.Field == FieldDown {
			rot = mgl32.QuatRotate(math32.Pi, mgl32.Vec3{1, 0, 0})
		}
		out = append(out, Placement{
			Block:      b,
			Descriptor: arrowDescriptor,
			Position:   mgl32.Vec3{ox + tile, oy, oz + tile},
			Rotation:   rot,
			Scale:      tile / 10,
			Arrow:      true,
		})
	})
	return out
}
