package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sokoban/common"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
	"github.com/milk9111/sokoban/scene"
	"github.com/milk9111/sokoban/screens"
)

type Game struct {
	frames int
	debug  bool

	clock *gametime.Clock
	input *input.Poller
	stack *scene.Stack
}

func NewGame(env *screens.Env, debug, skipSplash bool) *Game {
	if skipSplash {
		env.Stack.Push(screens.NewMainMenu(env))
	} else {
		env.Stack.Push(screens.NewSplash(env))
	}
	return &Game{
		debug: debug,
		clock: gametime.NewClock(ebiten.TPS()),
		input: input.NewPoller(),
		stack: env.Stack,
	}
}

func (g *Game) Update() error {
	g.frames++

	now := g.clock.Tick()
	in := g.input.Update()
	return g.stack.Update(now, in)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)

	if !g.debug {
		return
	}
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f\nT: %v", g.frames, ebiten.ActualFPS(), g.clock.Now().Total)
	if gp, ok := g.stack.Top().(*screens.Gameplay); ok {
		tt := gp.Transition()
		msg += fmt.Sprintf("\nwipe: %v dir=%d strip=%d/%d since %v", tt.State(), tt.Direction(), tt.Cursor(), tt.StripCount(), tt.StartedAt())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
