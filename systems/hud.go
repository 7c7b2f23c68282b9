package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var hudTextOp = &ebiten.DrawImageOptions{}

// popScore restarts the score counter's pop animation.
func popScore(hud *components.HUDData) {
	hud.ScorePop = gween.New(float32(cfg.HUD.PopScale), 1, float32(cfg.HUD.PopDuration), ease.OutQuad)
	hud.ScoreScale = cfg.HUD.PopScale
}

// UpdateHUD advances HUD animations.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := getGame(e)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.ScorePop == nil {
		hud.ScoreScale = 1
		return
	}
	scale, finished := hud.ScorePop.Update(float32(frameDelta(entry)))
	hud.ScoreScale = float64(scale)
	if finished {
		hud.ScorePop = nil
		hud.ScoreScale = 1
	}
}

// DrawHUD renders the state line, the score counter and, in the lobby, the
// scoreboard with the last score and the record.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getGame(e)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	hud := components.HUD.Get(entry)
	profile := components.Profile.Get(entry)
	xr := components.XRFrame.Get(entry)

	regular := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)

	status := "session idle - press P to start flying"
	if xr.Presenting {
		status = "lobby - flap " + fmt.Sprint(cfg.Flap.FlapsToStart) + " times to start"
		if game.State == cfg.GameStateInGame {
			status = "in game"
		}
	}
	text.Draw(screen, status, regular, x, y, cfg.HUD.TextColor)

	if game.State == cfg.GameStateInGame {
		drawScaledText(screen, fmt.Sprintf("%d", game.Score), fonts.Title, float64(x), float64(y)+cfg.HUD.LineHeight*2.5, hud.ScoreScale, cfg.HUD.TextColor)
	}

	if hud.ScoreboardVisible {
		drawScoreboard(screen, hud, profile)
	}
}

func drawScoreboard(screen *ebiten.Image, hud *components.HUDData, profile *components.ProfileData) {
	const width, height = 180, 70
	left := float32(cfg.C.Width)/2 - width/2
	top := float32(cfg.C.Height) - height - float32(cfg.HUD.Margin)
	vector.DrawFilledRect(screen, left, top, width, height, cfg.HUD.PanelColor, false)

	regular := fonts.Regular.Get()
	lx := int(left) + 12
	ly := int(top) + 22
	text.Draw(screen, fmt.Sprintf("Score   %d", hud.LastScore), regular, lx, ly, cfg.HUD.TextColor)

	record := "..."
	if profile.RecordLoaded || profile.Record > 0 {
		record = fmt.Sprintf("%d", profile.Record)
	}
	text.Draw(screen, "Record  "+record, regular, lx, ly+int(cfg.HUD.LineHeight), cfg.HUD.TextColor)

	if profile.PlayerID != "" {
		id := profile.PlayerID
		if len(id) > 8 {
			id = id[:8]
		}
		text.Draw(screen, "player "+id, fonts.Small.Get(), lx, ly+int(cfg.HUD.LineHeight*2), cfg.HUD.TextColor)
	}
}

func drawScaledText(screen *ebiten.Image, s string, face fonts.FontName, x, y, scale float64, clr color.Color) {
	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Scale(scale, scale)
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face.Get(), hudTextOp)
}
