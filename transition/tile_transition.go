package transition

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/gametime"
)

// State is the lifecycle phase of a TileTransition.
type State int

const (
	// StateIdle: not updating or drawing.
	StateIdle State = iota
	// StateRunning: strips are still being started on the interval.
	StateRunning
	// StateDraining: every strip has started; waiting for the last fade.
	StateDraining
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config describes the transition grid and its timing.
type Config struct {
	// TileSize is the edge length of one tile in pixels.
	TileSize int
	Columns  int
	Rows     int
	// StripInterval is the delay between two strips starting.
	StripInterval time.Duration
	// TileDuration is how long one strip takes to fade completely.
	TileDuration time.Duration
}

// Validate reports grids that cannot be built and negative durations.
func (c Config) Validate() error {
	if c.TileSize < 1 || c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: %dx%d tiles of %dpx", ErrInvalidGrid, c.Columns, c.Rows, c.TileSize)
	}
	if c.StripInterval < 0 {
		return fmt.Errorf("%w: strip interval %v", ErrInvalidDuration, c.StripInterval)
	}
	if c.TileDuration < 0 {
		return fmt.Errorf("%w: tile duration %v", ErrInvalidDuration, c.TileDuration)
	}
	return nil
}

// TileTransition sweeps a diagonal wipe of fading tiles across the screen.
type TileTransition struct {
	// OnStop is called when the last strip has finished fading. The
	// transition is already idle when it runs, so it may call Start again.
	OnStop func(now gametime.Time)

	cfg       Config
	strips    []*Strip
	interval  *Interval
	direction int
	cursor    int
	enabled   bool
	startedAt time.Duration
	endAt     time.Duration
	ending    bool
}

var _ Transition = (*TileTransition)(nil)

func NewTileTransition(cfg Config) (*TileTransition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TileTransition{
		cfg:       cfg,
		strips:    buildStrips(cfg),
		interval:  NewInterval(cfg.StripInterval),
		direction: 1,
	}, nil
}

// buildStrips walks the anti-diagonals of the grid from the top-left corner.
// Along each diagonal x decreases while y increases.
func buildStrips(cfg Config) []*Strip {
	count := cfg.Columns + cfg.Rows - 1
	strips := make([]*Strip, 0, count)
	for d := 0; d < count; d++ {
		xMax := min(d+1, cfg.Columns)
		xMin := max(1, d+2-cfg.Rows)
		tiles := make([]Tile, 0, xMax-xMin+1)
		for x := xMax; x >= xMin; x-- {
			tiles = append(tiles, Tile{X: x, Y: d + 2 - x, Size: cfg.TileSize})
		}
		strips = append(strips, newStrip(cfg.TileDuration, tiles))
	}
	return strips
}

// Start begins a pass at now. The strip cursor and each strip's progress
// carry over from the previous pass, which is what lets a reversed pass fade
// the same tiles back out.
func (t *TileTransition) Start(now gametime.Time) {
	t.startedAt = now.Total
	t.interval.Start(now.Total)
	t.enabled = true
}

// Update advances the strips, starts the next strip when the interval fires
// and stops the transition once the last strip has had time to finish.
func (t *TileTransition) Update(now gametime.Time) {
	if !t.enabled {
		return
	}

	for _, s := range t.strips {
		s.Update(now.Elapsed, t.direction)
	}

	if t.interval.Update(now.Total) {
		t.startNext(now)
	}

	if t.ending && now.Total > t.endAt {
		t.stop(now)
	}
}

func (t *TileTransition) startNext(now gametime.Time) {
	t.strips[t.cursor].Start(now.Total)
	t.cursor++
	if t.cursor < len(t.strips) {
		return
	}
	t.endAt = now.Total + t.cfg.TileDuration
	t.ending = true
	t.cursor = 0
	t.interval.Disable()
}

func (t *TileTransition) stop(now gametime.Time) {
	t.ending = false
	t.endAt = 0
	t.enabled = false
	if t.OnStop != nil {
		t.OnStop(now)
	}
}

func (t *TileTransition) Draw(dst Canvas, tex *ebiten.Image) {
	if !t.enabled {
		return
	}
	for _, s := range t.strips {
		s.Draw(dst, tex)
	}
}

// Reverse flips the fade direction and returns the new direction.
func (t *TileTransition) Reverse() int {
	t.direction *= -1
	return t.direction
}

// Direction is +1 while covering the screen and -1 while uncovering it.
func (t *TileTransition) Direction() int { return t.direction }

func (t *TileTransition) Enabled() bool { return t.enabled }

func (t *TileTransition) State() State {
	switch {
	case !t.enabled:
		return StateIdle
	case t.ending:
		return StateDraining
	default:
		return StateRunning
	}
}

// Cursor is the index of the next strip to start.
func (t *TileTransition) Cursor() int { return t.cursor }

func (t *TileTransition) StartedAt() time.Duration { return t.startedAt }

func (t *TileTransition) StripCount() int { return len(t.strips) }

// Strips exposes the strips in activation order. Callers must not start or
// update them.
func (t *TileTransition) Strips() []*Strip { return t.strips }

func (t *TileTransition) Config() Config { return t.cfg }
