package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; every entity and renderer lives on it.
const Default ecs.LayerID = 0

// GameStateID is the lobby/in-game state of the flap game
type GameStateID int

const (
	GameStateLobby GameStateID = iota
	GameStateInGame
)

// Names used for the gameState key shared with the renderer side.
const (
	GameStateLobbyName  = "lobby"
	GameStateInGameName = "ingame"
)

func (s GameStateID) String() string {
	switch s {
	case GameStateLobby:
		return GameStateLobbyName
	case GameStateInGame:
		return GameStateInGameName
	default:
		return "unknown"
	}
}

// ParseGameState maps a gameState key value back to its ID.
func ParseGameState(name string) (GameStateID, bool) {
	switch name {
	case GameStateLobbyName:
		return GameStateLobby, true
	case GameStateInGameName:
		return GameStateInGame, true
	}
	return GameStateLobby, false
}
