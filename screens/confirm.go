package screens

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sokoban/assets"
	"github.com/milk9111/sokoban/common"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
	"github.com/milk9111/sokoban/scene"
)

const confirmMessage = "Are you sure you want\nto exit?"

// ConfirmQuit is a popup over the main menu. Start quits the game, back
// dismisses the popup.
type ConfirmQuit struct {
	env *Env
	ui  *ebitenui.UI
}

func NewConfirmQuit(env *Env) *ConfirmQuit {
	return &ConfirmQuit{env: env}
}

func isConfirm(sc scene.Scene) bool {
	_, ok := sc.(*ConfirmQuit)
	return ok
}

func (c *ConfirmQuit) Update(now gametime.Time, in input.State) error {
	switch {
	case in.Pressed.Has(input.KeyStart):
		log.Info("quit confirmed")
		return ebiten.Termination
	case in.Pressed.Has(input.KeyBack):
		c.env.Stack.Pop()
	}
	return nil
}

func (c *ConfirmQuit) Draw(screen *ebiten.Image) {
	if c.ui == nil {
		c.buildUI()
	}
	drawBlack(screen, 128)
	c.ui.Draw(screen)
}

func (c *ConfirmQuit) buildUI() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 230})
	var face text.Face = assets.Face
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}

	msg := widget.NewText(
		widget.TextOpts.Text(confirmMessage, &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("start: yes   back: no", &face, grey),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*3/4, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(msg)
	panel.AddChild(hint)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	c.ui = &ebitenui.UI{Container: root}
}
