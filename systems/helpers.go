package systems

import (
	"github.com/automoto/wingflap/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getGame returns the singleton game entry, or false before the scene has
// spawned it.
func getGame(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Game.First(e.World)
}

// frameDelta returns the current frame's delta in seconds, 0 without a clock.
func frameDelta(entry *donburi.Entry) float64 {
	if !entry.HasComponent(components.Frame) {
		return 0
	}
	return components.Frame.Get(entry).Delta
}
