package factory

import (
	"github.com/automoto/blastoff/archetypes"
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bannerFade = 0.3

// CreateBanner shows a caption that fades in, holds and fades out.
func CreateBanner(ecs *ecs.ECS, text string) *donburi.Entry {
	hold := cfg.HUD.BannerSeconds - 2*bannerFade
	if hold < 0 {
		hold = 0
	}
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, bannerFade, ease.OutQuad),
		gween.New(1, 1, hold, ease.Linear),
		gween.New(1, 0, bannerFade, ease.InQuad),
	)

	entry := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(entry, components.BannerData{
		Text:  text,
		Tween: seq,
	})
	return entry
}
