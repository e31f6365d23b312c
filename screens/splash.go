package screens

import (
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
	"github.com/milk9111/sokoban/scene"
)

// Splash shows a pulsing "Press Start" until start is pressed, then fades
// out into the main menu.
type Splash struct {
	env     *Env
	fade    scene.Fade
	exiting bool
	total   time.Duration
}

func NewSplash(env *Env) *Splash {
	return &Splash{env: env}
}

func (s *Splash) Update(now gametime.Time, in input.State) error {
	s.total = now.Total

	if s.exiting {
		if !s.fade.Update(now.Elapsed, s.env.Config.Screens.SplashFadeOut, 1) {
			log.Debug("splash finished")
			s.env.Stack.Replace(NewMainMenu(s.env))
		}
		return nil
	}

	if in.Pressed.Has(input.KeyStart) {
		s.exiting = true
	}
	return nil
}

func (s *Splash) Draw(screen *ebiten.Image) {
	secs := s.total.Seconds()
	pulse := (0.5 + math.Sin(secs*6)*0.25) * float64(s.fade.Alpha())
	drawCentered(screen, "Press Start", float64(screen.Bounds().Dy())/2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(pulse)})
}
