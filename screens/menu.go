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

const menuTitle = "Sokoban"

type menuEntry struct {
	label    string
	selected func()
}

// MainMenu lists the entries vertically. Up/down move the selection and
// start activates it; entries can also be clicked.
type MainMenu struct {
	env     *Env
	entries []menuEntry
	cursor  int
	// clicked is set by a button handler and consumed on the next Update.
	clicked int

	fade    scene.Fade
	exiting bool

	ui      *ebitenui.UI
	buttons []*widget.Button
}

func NewMainMenu(env *Env) *MainMenu {
	m := &MainMenu{env: env, clicked: -1}
	m.entries = []menuEntry{
		{label: "play sokoban", selected: m.play},
		{label: "options", selected: func() { log.Debug("options menu not available") }},
		{label: "quit", selected: m.cancel},
	}
	return m
}

func (m *MainMenu) Update(now gametime.Time, in input.State) error {
	if m.exiting {
		if !m.fade.Update(now.Elapsed, m.env.Config.Screens.MenuFadeOut, 1) {
			gp, err := NewGameplay(m.env)
			if err != nil {
				return err
			}
			m.env.Stack.Replace(gp)
		}
		return nil
	}

	if m.ui != nil {
		m.ui.Update()
	}

	switch {
	case m.clicked >= 0:
		m.cursor = m.clicked
		m.clicked = -1
		m.entries[m.cursor].selected()
	case in.Pressed.Has(input.KeyUp):
		m.move(-1)
	case in.Pressed.Has(input.KeyDown):
		m.move(1)
	case in.Pressed.Has(input.KeyStart):
		m.entries[m.cursor].selected()
	case in.Pressed.Has(input.KeyBack):
		m.cancel()
	}
	return nil
}

// move steps the selection, wrapping at both ends.
func (m *MainMenu) move(delta int) {
	n := len(m.entries)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.refreshLabels()
}

// Selected returns the highlighted entry's label.
func (m *MainMenu) Selected() string {
	return m.entries[m.cursor].label
}

func (m *MainMenu) play() {
	log.Info("starting game")
	m.exiting = true
}

func (m *MainMenu) cancel() {
	if m.env.Stack.Contains(isConfirm) {
		return
	}
	m.env.Stack.Push(NewConfirmQuit(m.env))
}

func (m *MainMenu) Draw(screen *ebiten.Image) {
	if m.ui == nil {
		m.buildUI()
	}
	m.ui.Draw(screen)
	if m.exiting {
		drawBlack(screen, uint8(m.fade.Position*255))
	}
}

func (m *MainMenu) refreshLabels() {
	for i, btn := range m.buttons {
		label := m.entries[i].label
		if i == m.cursor {
			label = "> " + label + " <"
		}
		if t := btn.Text(); t != nil {
			t.Label = label
		}
	}
}

// buildUI creates the widgets on first draw so the menu can be driven
// without a graphics context.
func (m *MainMenu) buildUI() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face text.Face = assets.Face
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text(menuTitle, &face, color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*3/4, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	m.buttons = m.buttons[:0]
	for i, e := range m.entries {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(e.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.clicked = i
			}),
		)
		panel.AddChild(btn)
		m.buttons = append(m.buttons, btn)
	}
	m.refreshLabels()

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
}
