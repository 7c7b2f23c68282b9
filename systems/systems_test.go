package systems

import (
	"math"
	"testing"

	"github.com/automoto/wingflap/components"
	"github.com/automoto/wingflap/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type testWorld struct {
	ecs    *ecs.ECS
	game   *donburi.Entry
	player *donburi.Entry
	ring   *donburi.Entry
}

func newTestWorld(t *testing.T, withRing bool) *testWorld {
	t.Helper()
	w := &testWorld{ecs: ecs.NewECS(donburi.NewWorld())}
	w.game = factory.CreateGame(w.ecs)
	w.player = factory.CreatePlayer(w.ecs)
	if withRing {
		w.ring = factory.CreateRing(w.ecs)
	}
	return w
}

func (w *testWorld) setDelta(d float64) {
	components.Frame.Get(w.game).Delta = d
}

// setHands publishes a presenting XR frame with both hands at the given heights.
func (w *testWorld) setHands(left, right float64) {
	xr := components.XRFrame.Get(w.game)
	xr.Presenting = true
	xr.Head = mgl64.Vec3{0, 1.6, 0}
	xr.Controllers[components.HandLeft] = components.ControllerSample{Connected: true, Position: mgl64.Vec3{-0.6, left, -0.3}}
	xr.Controllers[components.HandRight] = components.ControllerSample{Connected: true, Position: mgl64.Vec3{0.6, right, -0.3}}
}

func (w *testWorld) gameData() *components.GameData { return components.Game.Get(w.game) }
func (w *testWorld) flight() *components.FlightData { return components.Flight.Get(w.player) }
func (w *testWorld) ringData() *components.RingData { return components.Ring.Get(w.ring) }
func (w *testWorld) profile() *components.ProfileData { return components.Profile.Get(w.game) }
func (w *testWorld) hud() *components.HUDData { return components.HUD.Get(w.game) }
func (w *testWorld) flapData() *components.FlapData { return components.Flap.Get(w.player) }
func (w *testWorld) pathData() *components.FlightPathData { return components.FlightPath.Get(w.player) }

// flapLeft runs n full strokes of the left hand (1.0 down to 0.4 and back)
// through the game system.
func (w *testWorld) flapLeft(n int) {
	w.setHands(1.0, 1.0)
	UpdateGame(w.ecs)
	for i := 0; i < n; i++ {
		w.setHands(0.4, 1.0)
		UpdateGame(w.ecs)
		w.setHands(1.0, 1.0)
		UpdateGame(w.ecs)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
