package systems

import (
	"image/color"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/fonts"
	"github.com/automoto/blastoff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner advances banner fades and removes finished banners.
func UpdateBanner(e *ecs.ECS) {
	dt := deltaTime(e)
	var done []donburi.Entity
	tags.Banner.Each(e.World, func(entry *donburi.Entry) {
		banner := components.Banner.Get(entry)
		if banner.Tween == nil {
			done = append(done, entry.Entity())
			return
		}
		alpha, _, finished := banner.Tween.Update(dt)
		banner.Alpha = alpha
		if finished {
			banner.Done = true
			done = append(done, entry.Entity())
		}
	})
	for _, ent := range done {
		e.World.Remove(ent)
	}
}

func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 {
		return
	}

	face := fonts.Banner.Get()
	width := float64(screen.Bounds().Dx())
	x := centerTextX(banner.Text, face, width)
	y := screen.Bounds().Dy() / 3

	a := banner.Alpha
	if a > 1 {
		a = 1
	}
	text.Draw(screen, banner.Text, face, x+int(cfg.HUD.ShadowOffset), y+int(cfg.HUD.ShadowOffset), fade(cfg.HUD.ShadowColor, a))
	text.Draw(screen, banner.Text, face, x, y, fade(cfg.HUD.TextColor, a))
}

// fade scales a color by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
