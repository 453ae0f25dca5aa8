package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Arrow  = donburi.NewTag().SetName("Arrow")
	Banner = donburi.NewTag().SetName("Banner")
)
