package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/assets"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
)

// Background sits at the bottom of the stack and never changes.
type Background struct {
	img *ebiten.Image
}

func NewBackground() *Background {
	return &Background{img: assets.Background}
}

func (b *Background) Update(gametime.Time, input.State) error { return nil }

func (b *Background) Draw(screen *ebiten.Image) {
	if screen == nil || b.img == nil {
		return
	}
	screen.DrawImage(b.img, &ebiten.DrawImageOptions{})
}
