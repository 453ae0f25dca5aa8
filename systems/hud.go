package systems

import (
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the control hint in the bottom-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if IsLevelComplete(e) {
		return
	}
	input := getOrCreateInput(e)
	hint := controlHint(input.LastInputMethod)

	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := screen.Bounds().Dy() - int(cfg.HUD.Margin)
	drawShadowedText(screen, hint, face, x, y)
}

// controlHint returns the hint for the device the player last used
func controlHint(method components.InputMethod) string {
	if method == components.InputKeyboard {
		return cfg.HUD.Hint
	}
	return cfg.HUD.ControllerHint
}

func drawShadowedText(screen *ebiten.Image, s string, face font.Face, x, y int) {
	off := int(cfg.HUD.ShadowOffset)
	text.Draw(screen, s, face, x+off, y+off, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}
