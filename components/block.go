package components

import (
	"github.com/automoto/blastoff/shared/leveldata"
	"github.com/yohamta/donburi"
)

// BlockData is one renderable instance of a level block or field arrow.
type BlockData struct {
	leveldata.Placement
	Generation int
}

var Block = donburi.NewComponentType[BlockData]()
