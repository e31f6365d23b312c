package screens

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sokoban/levels"
)

const (
	maxCellSize = 24
	headerSize  = 24
)

var cellColors = map[byte]color.RGBA{
	levels.Wall:         {R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
	levels.Floor:        {R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
	levels.Goal:         {R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
	levels.Box:          {R: 0xd4, G: 0xa0, B: 0x17, A: 0xff},
	levels.BoxOnGoal:    {R: 0x3c, G: 0xb3, B: 0x71, A: 0xff},
	levels.Player:       {R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
	levels.PlayerOnGoal: {R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
}

var goalColor = color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}

// LevelManager decides which level is on screen. Nothing is shown until the
// first LoadNextLevel, which happens behind the opening transition.
type LevelManager struct {
	levels  []*levels.Level
	index   int
	visible bool
}

func NewLevelManager(lvls []*levels.Level, start int) *LevelManager {
	if len(lvls) > 0 {
		start = ((start % len(lvls)) + len(lvls)) % len(lvls)
	} else {
		start = 0
	}
	return &LevelManager{levels: lvls, index: start}
}

// LoadNextLevel shows the current level the first time and advances to the
// next one, wrapping around, on every later call.
func (m *LevelManager) LoadNextLevel() {
	if len(m.levels) == 0 {
		return
	}
	if !m.visible {
		m.visible = true
	} else {
		m.index = (m.index + 1) % len(m.levels)
	}
	log.Info("level loaded", "index", m.index, "name", m.levels[m.index].Name)
}

func (m *LevelManager) Visible() bool { return m.visible }

func (m *LevelManager) Index() int { return m.index }

// Current returns the level on screen, or nil when none is.
func (m *LevelManager) Current() *levels.Level {
	if !m.visible || len(m.levels) == 0 {
		return nil
	}
	return m.levels[m.index]
}

func (m *LevelManager) Draw(screen *ebiten.Image) {
	lvl := m.Current()
	if lvl == nil || screen == nil {
		return
	}

	drawCentered(screen, lvl.Name, 6, color.White)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()-headerSize
	w, h := lvl.Size()
	if w == 0 || h == 0 {
		return
	}
	cell := min(maxCellSize, sw/w, sh/h)
	if cell <= 0 {
		return
	}
	ox := float32((sw - w*cell) / 2)
	oy := float32(headerSize + (sh-h*cell)/2)
	size := float32(cell)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := lvl.Cell(x, y)
			px, py := ox+float32(x)*size, oy+float32(y)*size
			vector.DrawFilledRect(screen, px, py, size, size, cellColors[c], false)
			switch c {
			case levels.Goal, levels.PlayerOnGoal:
				r := float32(math.Max(2, float64(size)/6))
				vector.DrawFilledCircle(screen, px+size/2, py+size/2, r, goalColor, true)
			case levels.Box, levels.BoxOnGoal, levels.Player:
				vector.StrokeRect(screen, px+1, py+1, size-2, size-2, 1, color.Black, false)
			}
		}
	}
}
