// Package transition implements the tile wipe used between levels.
//
// A TileTransition splits the screen into a grid of tiles, groups the tiles
// into strips along the grid's anti-diagonals and fades the strips in one
// after another on a fixed cadence. Played forward it covers the screen with
// black tiles sweeping from the top-left corner; reversed it uncovers it in
// the same order.
package transition

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/common"
	"github.com/milk9111/sokoban/gametime"
)

var (
	ErrInvalidGrid     = errors.New("transition: invalid grid")
	ErrInvalidDuration = errors.New("transition: invalid duration")
)

// Canvas is anything a transition can draw onto. *ebiten.Image satisfies it.
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Transition is a screen effect driven by the frame clock.
type Transition interface {
	Update(now gametime.Time)
	Draw(dst Canvas, tex *ebiten.Image)
}

// positions within epsilon of a bound snap onto it so accumulated float
// error cannot leave a finished fade at 0.9999999.
const epsilon = 1e-9

// Step advances a 0..1 fade position by elapsed/duration in the given
// direction and clamps the result. A non-positive duration completes the
// fade in a single step.
func Step(position float64, elapsed, duration time.Duration, direction int) float64 {
	delta := 1.0
	if duration > 0 {
		delta = float64(elapsed) / float64(duration)
	}
	p := common.Clamp(position+delta*float64(direction), 0, 1)
	if p >= 1-epsilon {
		return 1
	}
	if p <= epsilon {
		return 0
	}
	return p
}
