package assets

import (
	"bytes"
	"embed"
	"image"
	"image/color"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

//go:embed *.png
var assetsFS embed.FS

// Background is drawn behind every screen.
var Background *ebiten.Image

// BlankTile is a 1x1 white texture; the tile transition tints and stretches
// it into black overlay tiles.
var BlankTile *ebiten.Image

// Face is the fixed-size UI font.
var Face text.Face

func init() {
	Background = loadImageFromAssets("background.png")
	BlankTile = NewBlankTile()
	Face = text.NewGoXFace(basicfont.Face7x13)
}

// NewBlankTile creates a fresh 1x1 white image.
func NewBlankTile() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

// LoadImage loads an embedded image by file name.
func LoadImage(name string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadImageFromAssets(path string) *ebiten.Image {
	img, err := LoadImage(path)
	if err != nil {
		log.Fatalf("embed: load %s: %v", path, err)
	}
	return img
}
