package scenes

import (
	"sync"

	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/systems"
	"github.com/automoto/wingflap/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene is the whole game: lobby and play share one world.
type FlightScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewFlightScene() *FlightScene {
	return &FlightScene{}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.HUD.BackgroundColor)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and input first, everything else reads them
	ecs.AddSystem(systems.NewUpdateFrame(frameDelta))
	ecs.AddSystem(systems.UpdateEmulator)
	ecs.AddSystem(systems.UpdateProfile)

	// Gameplay, in dependency order
	ecs.AddSystem(systems.UpdateFlightPath)
	ecs.AddSystem(systems.UpdateFlight)
	ecs.AddSystem(systems.UpdateGame)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawTrack)
	ecs.AddRenderer(cfg.Default, systems.DrawGauge)
	ecs.AddRenderer(cfg.Default, systems.DrawWings)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	fs.ecs = ecs

	factory.CreateGame(fs.ecs)
	factory.CreatePlayer(fs.ecs)
	factory.CreateRing(fs.ecs)
}

// frameDelta is the fixed step of one ebiten update.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
