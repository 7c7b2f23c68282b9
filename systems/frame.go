package systems

import (
	"github.com/automoto/wingflap/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFrame returns a system that stamps each update with a delta from
// clock, in seconds. It must run before any gameplay system.
func NewUpdateFrame(clock func() float64) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := getGame(e)
		if !ok {
			return
		}
		frame := components.Frame.Get(entry)
		frame.Delta = clock()
		frame.Tick++
	}
}
