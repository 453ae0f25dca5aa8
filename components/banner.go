package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a centred caption that fades in and out.
type BannerData struct {
	Text  string
	Tween *gween.Sequence
	Alpha float32
	Done  bool
}

var Banner = donburi.NewComponentType[BannerData]()
