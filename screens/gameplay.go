package screens

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/assets"
	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
	"github.com/milk9111/sokoban/scene"
	"github.com/milk9111/sokoban/transition"
)

// Gameplay shows the current level and plays the tile wipe between levels:
// the tiles cover the screen, the next level is loaded behind them, and the
// tiles are peeled back in the same diagonal order.
type Gameplay struct {
	env     *Env
	tiles   *transition.TileTransition
	levels  *LevelManager
	texture *ebiten.Image

	fade    scene.Fade
	started bool
	// reload holds a config read from disk, applied once the wipe is idle.
	reload *config.Config
}

func NewGameplay(env *Env) (*Gameplay, error) {
	g := &Gameplay{
		env:     env,
		levels:  NewLevelManager(env.Levels, env.StartLevel),
		texture: assets.BlankTile,
		fade:    scene.Fade{Position: 1},
	}
	if err := g.buildTransition(env.Config.Transition); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Gameplay) buildTransition(cfg config.Transition) error {
	tt, err := transition.NewTileTransition(cfg.TileConfig())
	if err != nil {
		return fmt.Errorf("gameplay: %w", err)
	}
	tt.OnStop = g.transitionStopped
	g.tiles = tt
	return nil
}

// transitionStopped flips the wipe after each pass. After covering the
// screen it immediately starts uncovering it with the next level loaded;
// after uncovering it stays idle.
func (g *Gameplay) transitionStopped(now gametime.Time) {
	if g.tiles.Reverse() < 0 {
		g.tiles.Start(now)
		g.levels.LoadNextLevel()
		return
	}
	log.Debug("transition finished", "at", now.Total)
}

func (g *Gameplay) Update(now gametime.Time, in input.State) error {
	if !g.started {
		g.started = true
		g.tiles.Start(now)
	}
	g.fade.Update(now.Elapsed, g.env.Config.Screens.GameplayFadeIn, -1)

	g.pollConfig()
	if g.tiles.State() == transition.StateIdle {
		g.applyReload()

		switch {
		case in.Pressed.Has(input.KeyStart):
			g.finishLevel(now)
		case in.Pressed.Has(input.KeyBack):
			log.Info("returning to menu")
			g.env.Stack.Replace(NewMainMenu(g.env))
			return nil
		}
	}

	g.tiles.Update(now)
	return nil
}

// finishLevel is called when the player completes the level on screen.
func (g *Gameplay) finishLevel(now gametime.Time) {
	log.Info("level finished", "index", g.levels.Index())
	g.tiles.Start(now)
}

func (g *Gameplay) pollConfig() {
	path, ok := g.env.Watcher.Poll()
	if !ok {
		return
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		log.Error("config reload failed", "path", path, "err", err)
		return
	}
	log.Info("config reloaded", "path", path)
	g.reload = &cfg
}

func (g *Gameplay) applyReload() {
	if g.reload == nil {
		return
	}
	cfg := *g.reload
	g.reload = nil
	if err := g.buildTransition(cfg.Transition); err != nil {
		log.Error("transition rebuild failed", "err", err)
		return
	}
	g.env.Config = cfg
}

func (g *Gameplay) Draw(screen *ebiten.Image) {
	g.levels.Draw(screen)
	g.tiles.Draw(screen, g.texture)
	drawBlack(screen, uint8(g.fade.Position*255))
}

// Transition exposes the wipe for the debug overlay.
func (g *Gameplay) Transition() *transition.TileTransition { return g.tiles }

func (g *Gameplay) Levels() *LevelManager { return g.levels }
