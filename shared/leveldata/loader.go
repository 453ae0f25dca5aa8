package leveldata

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
)

var (
	ErrLevelDimensions = errors.New("level image dimensions are not a multiple of the grid size")
	ErrTooManyFloors   = errors.New("level image holds more floors than the grid height")
)

// LevelFile returns the file name of the n-th level.
func LevelFile(n int) string {
	return fmt.Sprintf("level%d.png", n)
}

// Load reads a PNG level from fsys and decodes it. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, name string, dims Dimensions) (*Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}

	g, err := Decode(img, dims)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return g, nil
}

// Decode builds a grid from a level image.
//
// The image is a sheet of Size x Size floors laid out left-to-right then
// top-to-bottom; floor k becomes z layer k. The returned grid always uses
// LoadSpawn as its anchor.
func Decode(img image.Image, dims Dimensions) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w%dims.Size != 0 || h%dims.Size != 0 {
		return nil, fmt.Errorf("%w: %dx%d for size %d", ErrLevelDimensions, w, h, dims.Size)
	}

	cols := w / dims.Size
	floors := cols * (h / dims.Size)
	if floors > dims.Height {
		return nil, fmt.Errorf("%w: %d floors for height %d", ErrTooManyFloors, floors, dims.Height)
	}

	g := NewGrid(dims, LoadSpawn)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			block := DecodeColor(img.At(b.Min.X+i, b.Min.Y+j))
			if block.IsEmpty() {
				continue
			}
			layer := i/dims.Size + cols*(j/dims.Size)
			g.Set(i%dims.Size, j%dims.Size, layer, block)
		}
	}
	return g, nil
}

// DecodeColor maps a pixel to a block by exact 8-bit channel match.
// Alpha is ignored.
//
// Blue pixels with no green are gravity fields whose block id is red+4,
// kept in eight bits. Red 252 to 255 wraps to ids 0 to 3, which are the
// plain kinds, so magenta (255,0,255) is a target.
func DecodeColor(c color.Color) Block {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r8, g8, b8 := n.R, n.G, n.B

	switch {
	case r8 == 255 && g8 == 0 && b8 == 0:
		return AntimatterBlock
	case r8 == 0 && g8 == 255 && b8 == 0:
		return GrassBlock
	case r8 == 255 && g8 == 255 && b8 == 0:
		return TargetBlock
	case b8 == 255 && g8 == 0:
		return blockByID(r8 + 4)
	}
	return EmptyBlock
}

// blockByID maps an eight-bit block id. Ids from 4 up are field variants.
func blockByID(id uint8) Block {
	switch id {
	case 0:
		return EmptyBlock
	case 1:
		return GrassBlock
	case 2:
		return AntimatterBlock
	case 3:
		return TargetBlock
	}
	return FieldBlock(id - 4)
}
