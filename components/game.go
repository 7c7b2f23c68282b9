package components

import (
	cfg "github.com/automoto/wingflap/config"
	"github.com/yohamta/donburi"
)

// Keys of the values shared with the presentation side.
const (
	KeyScore     = "score"
	KeyGameState = "gameState"
)

// GameData is the lobby/in-game state and current score.
// This is a singleton component, written only by the game state system.
type GameData struct {
	State cfg.GameStateID
	Score int
}

// Get reads a shared value by key: score as int, gameState as its name.
func (g *GameData) Get(key string) (any, bool) {
	switch key {
	case KeyScore:
		return g.Score, true
	case KeyGameState:
		return g.State.String(), true
	}
	return nil, false
}

// Set writes a shared value by key. It reports false for unknown keys and
// values of the wrong type or range.
func (g *GameData) Set(key string, value any) bool {
	switch key {
	case KeyScore:
		score, ok := value.(int)
		if !ok || score < 0 {
			return false
		}
		g.Score = score
		return true
	case KeyGameState:
		name, ok := value.(string)
		if !ok {
			return false
		}
		state, ok := cfg.ParseGameState(name)
		if !ok {
			return false
		}
		g.State = state
		return true
	}
	return false
}

var Game = donburi.NewComponentType[GameData]()
