// Package screens holds the game's screens: background, splash, main menu,
// quit confirmation and gameplay.
package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sokoban/assets"
	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/levels"
	"github.com/milk9111/sokoban/scene"
)

// Env is what the screens share: the scene stack they push onto, the active
// configuration and the level set.
type Env struct {
	Stack  *scene.Stack
	Config config.Config
	Levels []*levels.Level
	// StartLevel is the index of the first level shown.
	StartLevel int
	// Watcher is optional; when set, gameplay reloads the transition
	// settings when the config file changes.
	Watcher *config.Watcher
}

// NewEnv returns an Env whose stack already holds the background.
func NewEnv(cfg config.Config, lvls []*levels.Level) *Env {
	return &Env{
		Stack:  scene.NewStack(NewBackground()),
		Config: cfg,
		Levels: lvls,
	}
}

// drawBlack covers the whole screen with black at the given alpha.
func drawBlack(screen *ebiten.Image, alpha uint8) {
	if screen == nil || alpha == 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleWithColor(color.NRGBA{A: alpha})
	screen.DrawImage(assets.BlankTile, op)
}

// drawCentered draws a line of text horizontally centered at y.
func drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, assets.Face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, assets.Face, op)
}
