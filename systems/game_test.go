package systems

import (
	"math"
	"testing"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/gamemath"
	"github.com/automoto/wingflap/storage"
)

// useLoadedStore installs store as the profile backend and applies the load.
func useLoadedStore(t *testing.T, w *testWorld, store storage.Store) *storage.Profile {
	t.Helper()
	p := UseStore(store)
	p.Flush()
	UpdateProfile(w.ecs)
	if !w.profile().RecordLoaded {
		t.Fatalf("profile did not load")
	}
	return p
}

func TestRingPlacedWhenFirstSeen(t *testing.T) {
	w := newTestWorld(t, true)
	w.flight().Altitude = 4.2
	UpdateGame(w.ecs)

	ring := w.ringData()
	if !ring.Placed {
		t.Fatalf("ring not placed on first update")
	}
	if ring.Height != 4.2 || ring.Scale != cfg.Ring.StartingScale || ring.Label != 0 {
		t.Fatalf("placed ring = %+v, want height 4.2 scale %v label 0", ring, cfg.Ring.StartingScale)
	}
	wantYaw := math.Pi / 25 * 3
	if got := gamemath.Yaw(ring.Rotation); math.Abs(got-wantYaw) > 1e-9 {
		t.Fatalf("ring yaw = %v, want %v ahead of the player", got, wantYaw)
	}
}

func TestLobbyThreeFlapsStartsGame(t *testing.T) {
	w := newTestWorld(t, true)
	w.flapLeft(2)
	if w.gameData().State != cfg.GameStateLobby {
		t.Fatalf("state after 2 flaps = %v, want lobby", w.gameData().State)
	}
	if got := w.flapData().Hands[components.HandLeft].Flaps; got != 2 {
		t.Fatalf("left flaps = %d, want 2", got)
	}

	w.setHands(0.4, 1.0)
	UpdateGame(w.ecs)
	w.setHands(1.0, 1.0)
	UpdateGame(w.ecs)

	game := w.gameData()
	if game.State != cfg.GameStateInGame {
		t.Fatalf("state after 3 flaps = %v, want ingame", game.State)
	}
	if game.Score != 0 {
		t.Fatalf("score = %d, want 0", game.Score)
	}
	ring := w.ringData()
	if ring.Label != 1 || ring.Height != cfg.Ring.StartHeight || ring.Scale != cfg.Ring.StartingScale || ring.Timer != cfg.Ring.Interval {
		t.Fatalf("ring after start = %+v", ring)
	}
	for _, hand := range components.Hands {
		if w.flapData().Hands[hand] != (gamemath.Stroke{}) {
			t.Fatalf("%v stroke not reset on start: %+v", hand, w.flapData().Hands[hand])
		}
	}
}

func TestLobbyEitherHandCounts(t *testing.T) {
	w := newTestWorld(t, true)
	w.setHands(1.0, 1.0)
	UpdateGame(w.ecs)
	for i := 0; i < 3; i++ {
		w.setHands(1.0, 0.3)
		UpdateGame(w.ecs)
		w.setHands(1.0, 1.0)
		UpdateGame(w.ecs)
	}
	if w.gameData().State != cfg.GameStateInGame {
		t.Fatalf("three right-hand flaps did not start the game")
	}
}

func TestLobbyShortStrokesNeverStart(t *testing.T) {
	w := newTestWorld(t, true)
	w.setHands(1.0, 1.0)
	UpdateGame(w.ecs)
	for i := 0; i < 10; i++ {
		w.setHands(0.95, 0.95)
		UpdateGame(w.ecs)
		w.setHands(1.0, 1.0)
		UpdateGame(w.ecs)
	}
	if w.gameData().State != cfg.GameStateLobby {
		t.Fatalf("tiny strokes started the game")
	}
}

func TestLobbyWeakStrokeCancelsProgress(t *testing.T) {
	w := newTestWorld(t, true)
	w.flapLeft(2)
	w.setHands(0.7, 1.0)
	UpdateGame(w.ecs)
	w.setHands(1.0, 1.0)
	UpdateGame(w.ecs)
	if got := w.flapData().Hands[components.HandLeft].Flaps; got != 0 {
		t.Fatalf("left flaps after weak stroke = %d, want 0", got)
	}
	w.flapLeft(2)
	if w.gameData().State != cfg.GameStateLobby {
		t.Fatalf("game started after a cancelled run and only 2 new flaps")
	}
}

func TestLobbyIgnoresFlapsWhileNotPresenting(t *testing.T) {
	w := newTestWorld(t, true)
	w.flapLeft(1)
	components.XRFrame.Get(w.game).Presenting = false
	UpdateGame(w.ecs)
	if w.hud().ScoreboardVisible {
		t.Fatalf("scoreboard visible while not presenting")
	}
	if got := w.flapData().Hands[components.HandLeft].Flaps; got != 1 {
		t.Fatalf("left flaps = %d, want 1", got)
	}
}

func TestGameRoundScenario(t *testing.T) {
	SeedRings(7)
	w := newTestWorld(t, true)
	store := storage.NewMemory()
	p := useLoadedStore(t, w, store)

	w.flapLeft(3)
	if w.gameData().State != cfg.GameStateInGame || w.ringData().Label != 1 {
		t.Fatalf("game did not start: state=%v label=%d", w.gameData().State, w.ringData().Label)
	}

	// Pass the first ring
	w.flight().Altitude = 4.5
	w.setDelta(1.6)
	UpdateGame(w.ecs)
	if w.gameData().Score != 0 {
		t.Fatalf("ring checked before its timer ran out")
	}
	UpdateGame(w.ecs)

	ring := w.ringData()
	if w.gameData().Score != 1 || ring.Label != 2 {
		t.Fatalf("after pass: score=%d label=%d, want 1, 2", w.gameData().Score, ring.Label)
	}
	if !approxEqual(ring.Scale, cfg.Ring.StartingScale*0.98) {
		t.Fatalf("ring scale = %v, want %v", ring.Scale, cfg.Ring.StartingScale*0.98)
	}
	if ring.Height < 4 || ring.Height >= 9 {
		t.Fatalf("ring height = %v, want in [4, 9)", ring.Height)
	}
	if ring.Timer != cfg.Ring.Interval {
		t.Fatalf("ring timer = %v, want reset to %v", ring.Timer, cfg.Ring.Interval)
	}
	if w.hud().ScorePop == nil {
		t.Fatalf("score pop not started on pass")
	}

	// Miss the second one
	w.flight().Altitude = ring.Height + ring.Radius() + 1
	w.setDelta(3.5)
	UpdateGame(w.ecs)

	if w.gameData().State != cfg.GameStateLobby || w.gameData().Score != 0 {
		t.Fatalf("after miss: state=%v score=%d, want lobby 0", w.gameData().State, w.gameData().Score)
	}
	if w.flight().Altitude != cfg.Flight.HoverHeight {
		t.Fatalf("altitude after miss = %v, want %v", w.flight().Altitude, cfg.Flight.HoverHeight)
	}
	if w.hud().LastScore != 1 || w.profile().Record != 1 {
		t.Fatalf("last score=%d record=%d, want 1, 1", w.hud().LastScore, w.profile().Record)
	}

	p.Flush()
	if got, ok := storage.LoadRecord(store, cfg.Storage.RecordScoreKey); !ok || got != 1 {
		t.Fatalf("stored record = %d, %v; want 1, true", got, ok)
	}
}

func TestGameOverKeepsHigherRecord(t *testing.T) {
	w := newTestWorld(t, true)
	store := storage.NewMemory()
	_ = storage.SaveRecord(store, cfg.Storage.RecordScoreKey, 5)
	p := useLoadedStore(t, w, store)
	if w.profile().Record != 5 {
		t.Fatalf("loaded record = %d, want 5", w.profile().Record)
	}

	w.flapLeft(3)
	w.gameData().Score = 3
	w.flight().Altitude = 100
	w.setDelta(4)
	UpdateGame(w.ecs)

	if w.gameData().State != cfg.GameStateLobby {
		t.Fatalf("state = %v, want lobby", w.gameData().State)
	}
	if w.profile().Record != 5 {
		t.Fatalf("record = %d, want unchanged 5", w.profile().Record)
	}
	p.Flush()
	if got, _ := storage.LoadRecord(store, cfg.Storage.RecordScoreKey); got != 5 {
		t.Fatalf("stored record = %d, want 5", got)
	}
}

func TestInGameWithoutRingDoesNothing(t *testing.T) {
	w := newTestWorld(t, false)
	w.flapLeft(3)
	if w.gameData().State != cfg.GameStateInGame {
		t.Fatalf("game should start even before the ring exists")
	}
	w.flight().Altitude = 100
	w.setDelta(10)
	UpdateGame(w.ecs)
	if w.gameData().State != cfg.GameStateInGame {
		t.Fatalf("game ended without a ring")
	}
}

func TestInGameSkipsNonPositiveDelta(t *testing.T) {
	w := newTestWorld(t, true)
	w.flapLeft(3)
	w.setDelta(-1)
	UpdateGame(w.ecs)
	if w.ringData().Timer != cfg.Ring.Interval {
		t.Fatalf("timer = %v after negative delta, want %v", w.ringData().Timer, cfg.Ring.Interval)
	}
}

func TestLoadedProfileMerge(t *testing.T) {
	UseStore(storage.NewMemory())

	p := components.ProfileData{}
	applyLoadedProfile(&p, storage.Loaded{Record: 4, HasRecord: true, PlayerID: "abc"})
	if p.Record != 4 || !p.RecordLoaded || p.PlayerID != "abc" {
		t.Fatalf("applied profile = %+v", p)
	}

	p = components.ProfileData{Record: 6}
	applyLoadedProfile(&p, storage.Loaded{Record: 4, HasRecord: true})
	if p.Record != 6 {
		t.Fatalf("session record overwritten by lower stored one: %d", p.Record)
	}
}

func TestGameDataKeys(t *testing.T) {
	g := components.GameData{}
	if v, ok := g.Get(components.KeyGameState); !ok || v != "lobby" {
		t.Fatalf("Get(gameState) = %v, %v; want lobby", v, ok)
	}
	if !g.Set(components.KeyGameState, "ingame") || g.State != cfg.GameStateInGame {
		t.Fatalf("Set(gameState, ingame) failed, state=%v", g.State)
	}
	if !g.Set(components.KeyScore, 12) {
		t.Fatalf("Set(score, 12) failed")
	}
	if v, _ := g.Get(components.KeyScore); v != 12 {
		t.Fatalf("Get(score) = %v, want 12", v)
	}
	if g.Set(components.KeyScore, -1) || g.Set(components.KeyGameState, "paused") || g.Set("lives", 3) {
		t.Fatalf("Set accepted an invalid key or value")
	}
}

func TestTransitionsQueueSounds(t *testing.T) {
	w := newTestWorld(t, true)
	pending := func() []cfg.SoundID {
		return components.Audio.Get(w.game).PendingSFX
	}

	w.flapLeft(1)
	if got := pending(); len(got) != 1 || got[0] != cfg.SoundFlap {
		t.Fatalf("after one flap pending = %v, want [flap]", got)
	}

	w.flapLeft(2)
	got := pending()
	if len(got) != 3 || got[2] != cfg.SoundStart {
		t.Fatalf("after start pending = %v, want flap, flap, start", got)
	}

	w.flight().Altitude = 100
	w.setDelta(4)
	UpdateGame(w.ecs)
	got = pending()
	if got[len(got)-1] != cfg.SoundGameOver {
		t.Fatalf("after miss pending = %v, want game over last", got)
	}
}
