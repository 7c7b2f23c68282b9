package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ring   = donburi.NewTag().SetName("Ring")
	Game   = donburi.NewTag().SetName("Game")
)
