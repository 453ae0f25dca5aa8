package main

import (
	"errors"
	"flag"
	"image"

	"github.com/automoto/blastoff/assets"
	"github.com/automoto/blastoff/config"
	"github.com/automoto/blastoff/fonts"
	"github.com/automoto/blastoff/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelDir := flag.String("levels", "", "directory of level<N>.png files (default: embedded levels)")
	start := flag.Int("level", 0, "level number to start from")
	watch := flag.Bool("watch", false, "reload the current level when its file changes")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logrus.WithError(err).Fatal("load config")
		}
	}
	if *levelDir != "" {
		config.Level.Dir = *levelDir
	}
	if *start > 0 {
		config.Level.Start = *start
	}
	if *watch {
		config.Level.Watch = true
	}
	if *debug {
		config.Debug.Enabled = true
		config.Debug.LogLevel = "debug"
	}

	level, err := logrus.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.BannerFontSize); err != nil {
		logrus.WithError(err).Fatal("load fonts")
	}

	source, err := assets.NewLevelLoaderFromDir(config.Level.Dir, config.Level.Dimensions())
	if err != nil {
		logrus.WithError(err).Fatal("open levels")
	}
	logrus.WithFields(logrus.Fields{
		"dir":    config.Level.Dir,
		"levels": source.Count(),
		"start":  config.Level.Start,
	}).Info("starting")

	scene := scenes.NewPlaymodeScene(source, config.Level.Start)
	defer scene.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		scene.Close()
		logrus.WithError(err).Fatal("game stopped")
	}
}
