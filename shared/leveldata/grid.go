package leveldata

import "github.com/chewxy/math32"

// Grid is a fixed-size voxel level. Cells are written only while a level is
// being decoded; afterwards the grid is treated as read-only.
type Grid struct {
	Dims  Dimensions
	Spawn Spawn
	cells []Block
}

// NewGrid returns an all-empty grid.
func NewGrid(dims Dimensions, spawn Spawn) *Grid {
	return &Grid{
		Dims:  dims,
		Spawn: spawn,
		cells: make([]Block, dims.Size*dims.Size*dims.Height),
	}
}

func (g *Grid) index(x, y, z int) int {
	return (z*g.Dims.Size+y)*g.Dims.Size + x
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(x, y, z int) bool {
	return x >= 0 && x < g.Dims.Size &&
		y >= 0 && y < g.Dims.Size &&
		z >= 0 && z < g.Dims.Height
}

// Cell returns the block stored at grid-local indices, or EmptyBlock when out of range.
func (g *Grid) Cell(x, y, z int) Block {
	if g == nil || !g.Contains(x, y, z) {
		return EmptyBlock
	}
	return g.cells[g.index(x, y, z)]
}

// Set stores a block. Out-of-range writes are ignored.
func (g *Grid) Set(x, y, z int, b Block) {
	if !g.Contains(x, y, z) {
		return
	}
	g.cells[g.index(x, y, z)] = b
}

// CellAt converts a world position to grid-local cell indices.
func (g *Grid) CellAt(x, y, z float32) (int, int, int) {
	tile := g.Dims.TileSize
	bx := int(math32.Floor(x/tile)) + g.Spawn.X
	by := int(math32.Floor(y/tile)) + g.Spawn.Y
	bz := int(math32.Floor(z/tile)) + g.Dims.Height/2
	return bx, by, bz
}

// BlockAt samples the level at a world position.
//
// Cells more than Margin outside the grid on any axis are antimatter, so
// anything that leaves the level dies. Cells inside the margin read as empty.
func (g *Grid) BlockAt(x, y, z float32) Block {
	if g == nil {
		return EmptyBlock
	}
	bx, by, bz := g.CellAt(x, y, z)
	m := g.Dims.Margin
	if bx < -m || bx >= g.Dims.Size+m ||
		by < -m || by >= g.Dims.Size+m ||
		bz < -m || bz >= g.Dims.Height+m {
		return AntimatterBlock
	}
	if !g.Contains(bx, by, bz) {
		return EmptyBlock
	}
	return g.cells[g.index(bx, by, bz)]
}

// CellOrigin returns the world position of the minimum corner of a cell.
func (g *Grid) CellOrigin(x, y, z int) (float32, float32, float32) {
	tile := g.Dims.TileSize
	return float32(x-g.Spawn.X) * tile,
		float32(y-g.Spawn.Y) * tile,
		float32(z-g.Dims.Height/2) * tile
}

// Each calls fn for every non-empty cell in x, y, z order.
func (g *Grid) Each(fn func(x, y, z int, b Block)) {
	if g == nil {
		return
	}
	for x := 0; x < g.Dims.Size; x++ {
		for y := 0; y < g.Dims.Size; y++ {
			for z := 0; z < g.Dims.Height; z++ {
				b := g.cells[g.index(x, y, z)]
				if b.IsEmpty() {
					continue
				}
				fn(x, y, z, b)
			}
		}
	}
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() int {
	n := 0
	g.Each(func(int, int, int, Block) { n++ })
	return n
}
