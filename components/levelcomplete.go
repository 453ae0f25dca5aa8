package components

import "github.com/yohamta/donburi"

// LevelCompleteData records that the last level was cleared and there is
// nothing left to load.
type LevelCompleteData struct {
	IsComplete    bool
	LastIndex     int
	ExitRequested bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
