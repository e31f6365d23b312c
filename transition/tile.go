package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tile is one cell of the transition grid. X and Y are 1-based.
type Tile struct {
	X    int
	Y    int
	Size int
}

// Position returns the tile's top-left corner in pixels.
func (t Tile) Position() (int, int) {
	return (t.X - 1) * t.Size, (t.Y - 1) * t.Size
}

// Draw stretches tex over the tile's cell as a black overlay with the given
// alpha.
func (t Tile) Draw(dst Canvas, tex *ebiten.Image, alpha uint8) {
	if dst == nil || tex == nil {
		return
	}
	b := tex.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	x, y := t.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(t.Size)/float64(b.Dx()), float64(t.Size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0, G: 0, B: 0, A: alpha})
	dst.DrawImage(tex, op)
}
