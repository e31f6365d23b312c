package transition

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/gametime"
)

type drawCall struct {
	img *ebiten.Image
	op  ebiten.DrawImageOptions
}

type recordCanvas struct {
	calls []drawCall
}

func (r *recordCanvas) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	r.calls = append(r.calls, drawCall{img: img, op: *op})
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// frame builds the time signal for a fixed-step frame ending at total.
func frame(total, step time.Duration) gametime.Time {
	return gametime.At(total, step)
}
