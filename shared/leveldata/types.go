// Package leveldata provides the voxel level model and PNG level decoding.
// It has no dependencies on ebitengine or donburi.
package leveldata

// BlockKind identifies what occupies a grid cell.
type BlockKind uint8

const (
	Empty BlockKind = iota
	Grass
	Antimatter
	Target
	GravityField
)

func (k BlockKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Grass:
		return "grass"
	case Antimatter:
		return "antimatter"
	case Target:
		return "target"
	case GravityField:
		return "field"
	}
	return "unknown"
}

// FieldDirection is the pull of a gravity field block along the z axis.
type FieldDirection uint8

const (
	FieldInert FieldDirection = iota
	FieldDown
	FieldUp
)

// Block is a decoded grid cell. Field and Variant are only meaningful for
// GravityField blocks; Variant keeps the raw map value for the renderer.
type Block struct {
	Kind    BlockKind
	Field   FieldDirection
	Variant uint8
}

var (
	EmptyBlock      = Block{}
	GrassBlock      = Block{Kind: Grass}
	AntimatterBlock = Block{Kind: Antimatter}
	TargetBlock     = Block{Kind: Target}
)

// FieldBlock returns the gravity field block for a map variant.
// Variant 0 pulls down, variant 1 pulls up, anything else is inert.
func FieldBlock(variant uint8) Block {
	b := Block{Kind: GravityField, Variant: variant}
	switch variant {
	case 0:
		b.Field = FieldDown
	case 1:
		b.Field = FieldUp
	default:
		b.Field = FieldInert
	}
	return b
}

func (b Block) IsEmpty() bool {
	return b.Kind == Empty
}

// Dimensions describes the fixed extent of a level grid.
type Dimensions struct {
	Size     int     // cells along x and y
	Height   int     // cells along z (floors)
	TileSize float32 // world units per cell edge
	Margin   int     // cells outside the grid that read as empty instead of antimatter
}

// DefaultDimensions is the 32x32x16 grid used by the shipped levels.
var DefaultDimensions = Dimensions{
	Size:     32,
	Height:   16,
	TileSize: 10,
	Margin:   2,
}

// Spawn is the grid cell that sits at the world origin.
type Spawn struct {
	X, Y int
}

var (
	// InitialSpawn anchors the empty grid that exists before the first load.
	InitialSpawn = Spawn{X: 16, Y: 16}
	// LoadSpawn is applied to every loaded level. It is not derived from the
	// image content.
	LoadSpawn = Spawn{X: 8, Y: 16}
)
