package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/fonts"
	"github.com/automoto/blastoff/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 16

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	lines := debugLines(e)
	lines = append(lines, fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	x, y := 8, 8
	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), 360, float32(len(lines)*debugLineHeight+8), cfg.Overlay, false)
	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+(i+1)*debugLineHeight-4, cfg.White)
	}
}

// debugLines describes the simulation state, one value per line.
func debugLines(e *ecs.ECS) []string {
	var lines []string

	if entry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(entry)
		blocks, arrows := factory.CountBlocks(e)
		lines = append(lines, fmt.Sprintf("level %d  gen %d  blocks %d  arrows %d",
			level.Index, level.Generation, blocks, arrows))
	}
	if entry, ok := components.Player.First(e.World); ok {
		p := components.Player.Get(entry)
		lines = append(lines,
			fmt.Sprintf("phase %s  blastoff %.2f  resets %d", p.Phase, p.Blastoff, p.Resets),
			fmt.Sprintf("pos %s", formatVec(p.Position[:])),
			fmt.Sprintf("vel %s", formatVec(p.Velocity[:])),
			fmt.Sprintf("yaw %.2f  pitch %.2f", p.Yaw, p.Pitch),
		)
	}
	if entry, ok := components.Camera.First(e.World); ok {
		c := components.Camera.Get(entry)
		lines = append(lines, fmt.Sprintf("preview %.2f  countdown %.2f", c.Preview, c.InitialPreview))
	}
	return lines
}

func formatVec(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%7.2f", f)
	}
	return strings.Join(parts, " ")
}
