package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/fonts"
	"github.com/automoto/wingflap/scenes"
	"github.com/automoto/wingflap/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewFlightScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "TOML file overriding flight, flap, track and ring values")
	flag.BoolVar(&cfg.Debug.StartPresenting, "present", cfg.Debug.StartPresenting, "start with the flight session active")
	flag.BoolVar(&cfg.Audio.Muted, "mute", cfg.Audio.Muted, "disable sound effects")
	flag.Int64Var(&cfg.Debug.Seed, "seed", cfg.Debug.Seed, "ring height seed (0 = random)")
	flag.Parse()

	if *tuningPath != "" {
		if err := cfg.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if cfg.Debug.Seed != 0 {
		systems.SeedRings(cfg.Debug.Seed)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and start loading the record and player id
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	systems.PreloadAllSFX()

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("wingflap")
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
