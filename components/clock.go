package components

import "github.com/yohamta/donburi"

// ClockData holds the fixed simulation step.
type ClockData struct {
	DT    float32 // seconds per tick
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
