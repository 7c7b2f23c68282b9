package factory

import (
	"github.com/automoto/wingflap/archetypes"
	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the session singleton in the lobby with no profile
// loaded yet.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Game.SetValue(game, components.GameData{
		State: cfg.GameStateLobby,
		Score: 0,
	})
	components.HUD.SetValue(game, components.HUDData{
		ScoreScale: 1,
	})

	emu := components.EmulatorData{
		Presenting: cfg.Debug.StartPresenting,
	}
	for _, hand := range components.Hands {
		emu.HandY[hand] = cfg.Emulator.RestHeight
	}
	components.Emulator.SetValue(game, emu)

	return game
}
