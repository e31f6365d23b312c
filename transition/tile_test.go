package transition

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTilePosition(t *testing.T) {
	cases := []struct {
		tile   Tile
		wx, wy int
	}{
		{Tile{X: 1, Y: 1, Size: 16}, 0, 0},
		{Tile{X: 2, Y: 1, Size: 16}, 16, 0},
		{Tile{X: 15, Y: 22, Size: 16}, 224, 336},
		{Tile{X: 3, Y: 4, Size: 15}, 30, 45},
	}
	for _, c := range cases {
		x, y := c.tile.Position()
		if x != c.wx || y != c.wy {
			t.Fatalf("%+v: expected (%d,%d), got (%d,%d)", c.tile, c.wx, c.wy, x, y)
		}
	}
}

func TestTileDraw(t *testing.T) {
	tex := ebiten.NewImage(2, 2)
	canvas := &recordCanvas{}

	tile := Tile{X: 3, Y: 2, Size: 16}
	tile.Draw(canvas, tex, 128)

	if len(canvas.calls) != 1 {
		t.Fatalf("expected one draw call, got %d", len(canvas.calls))
	}
	call := canvas.calls[0]
	if call.img != tex {
		t.Fatalf("expected the supplied texture to be drawn")
	}

	// the 2x2 texture must cover the 16x16 cell at (32,16)
	x0, y0 := call.op.GeoM.Apply(0, 0)
	x1, y1 := call.op.GeoM.Apply(2, 2)
	if x0 != 32 || y0 != 16 || x1 != 48 || y1 != 32 {
		t.Fatalf("expected cell (32,16)-(48,32), got (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}

	cs := call.op.ColorScale
	if cs.R() != 0 || cs.G() != 0 || cs.B() != 0 {
		t.Fatalf("expected black overlay, got r=%v g=%v b=%v", cs.R(), cs.G(), cs.B())
	}
	if math.Abs(float64(cs.A())-128.0/255.0) > 1e-3 {
		t.Fatalf("expected alpha 128/255, got %v", cs.A())
	}
}

func TestTileDrawWithoutTexture(t *testing.T) {
	canvas := &recordCanvas{}
	Tile{X: 1, Y: 1, Size: 8}.Draw(canvas, nil, 255)
	if len(canvas.calls) != 0 {
		t.Fatalf("expected no draw without a texture")
	}
}
