package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/blastoff/shared/leveldata"
)

var (
	//go:embed levels/*.png
	assetFS embed.FS
)

// EmbeddedLevels returns the level files shipped with the binary.
func EmbeddedLevels() fs.FS {
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return sub
}

// LevelLoader reads level<N>.png files from a file system.
type LevelLoader struct {
	fsys fs.FS
	dims leveldata.Dimensions
}

func NewLevelLoader(fsys fs.FS, dims leveldata.Dimensions) *LevelLoader {
	return &LevelLoader{fsys: fsys, dims: dims}
}

// NewLevelLoaderFromDir uses dir when set and the embedded levels otherwise.
func NewLevelLoaderFromDir(dir string, dims leveldata.Dimensions) (*LevelLoader, error) {
	if dir == "" {
		return NewLevelLoader(EmbeddedLevels(), dims), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("level directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("level directory %s: not a directory", dir)
	}
	return NewLevelLoader(os.DirFS(dir), dims), nil
}

// Load decodes level n.
func (l *LevelLoader) Load(n int) (*leveldata.Grid, error) {
	return leveldata.Load(l.fsys, leveldata.LevelFile(n), l.dims)
}

// Has reports whether level n exists.
func (l *LevelLoader) Has(n int) bool {
	_, err := fs.Stat(l.fsys, leveldata.LevelFile(n))
	return err == nil
}

// Count returns how many consecutive levels exist starting at level 1.
func (l *LevelLoader) Count() int {
	n := 0
	for l.Has(n + 1) {
		n++
	}
	return n
}
