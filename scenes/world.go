package scenes

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/blastoff/assets"
	"github.com/automoto/blastoff/components"
	cfg "github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/systems"
	"github.com/automoto/blastoff/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaymodeScene runs the levels of one source from Start until the last one
// is cleared.
type PlaymodeScene struct {
	ecs     *ecs.ECS
	source  components.LevelSource
	start   int
	watcher *assets.Watcher
	once    sync.Once
	err     error
}

// NewPlaymodeScene creates the play scene. Levels are loaded lazily on the
// first update.
func NewPlaymodeScene(source components.LevelSource, start int) *PlaymodeScene {
	return &PlaymodeScene{source: source, start: start}
}

func (ps *PlaymodeScene) Update() error {
	ps.once.Do(func() {
		ps.err = ps.configure()
	})
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()

	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return nil
	}
	if err := components.Level.Get(levelEntry).Err; err != nil {
		return err
	}
	if components.LevelComplete.Get(levelEntry).ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlaymodeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.ClearColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the level watcher, if any.
func (ps *PlaymodeScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

func (ps *PlaymodeScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())
	systems.SubscribeLevelEvents(ecs.World)

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLevelWatch)

	// Game systems stop once the run is complete
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.ProcessEvents)
	// Loads run after the player so a target hit swaps levels within the tick
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateBanner)
	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.ClearInputEdges)

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.HUDLayer, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUDLayer, systems.DrawBanner)
	ecs.AddRenderer(cfg.HUDLayer, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.HUDLayer, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateLevel(ps.ecs, ps.source, ps.start)
	factory.CreatePlayer(ps.ecs)
	factory.CreateCamera(ps.ecs)

	if err := systems.ValidateCameras(ps.ecs.World); err != nil {
		return err
	}

	if cfg.Level.Watch {
		if cfg.Level.Dir == "" {
			return errors.New("level watch needs a level directory")
		}
		w, err := assets.NewWatcher(cfg.Level.WatchDebounce, cfg.Level.Dir)
		if err != nil {
			return fmt.Errorf("watch levels: %w", err)
		}
		ps.watcher = w
		factory.CreateLevelWatch(ps.ecs, w.Events, w.Errors)
		logrus.WithField("dir", cfg.Level.Dir).Info("watching level files")
	}

	return nil
}
