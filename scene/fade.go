package scene

import (
	"time"

	"github.com/milk9111/sokoban/common"
	"github.com/milk9111/sokoban/transition"
)

// Fade tracks a whole-screen transition position: 0 is fully shown, 1 is
// fully faded out.
type Fade struct {
	Position float64
}

// Update moves the position by elapsed/duration in direction (+1 fading
// out, -1 fading in) and reports whether the fade is still in progress.
func (f *Fade) Update(elapsed, duration time.Duration, direction int) bool {
	f.Position = transition.Step(f.Position, elapsed, duration, direction)
	return f.Position > 0 && f.Position < 1
}

// Alpha is the opacity of the screen's content: 255 when fully shown.
func (f *Fade) Alpha() uint8 {
	return uint8(common.Lerp(255, 0, f.Position))
}
