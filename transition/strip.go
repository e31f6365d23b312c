package transition

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Strip is the group of tiles on one anti-diagonal of the grid. All tiles in
// a strip share one fade timeline.
type Strip struct {
	tiles     []Tile
	duration  time.Duration
	progress  float64
	armed     bool
	startedAt time.Duration
}

func newStrip(duration time.Duration, tiles []Tile) *Strip {
	return &Strip{tiles: tiles, duration: duration}
}

// Start arms the strip. Which way it fades is decided by Update.
func (s *Strip) Start(now time.Duration) {
	s.startedAt = now
	s.armed = true
}

// Update advances the fade by elapsed in direction (+1 towards opaque, -1
// towards clear). Reaching either end disarms the strip until the next
// Start.
func (s *Strip) Update(elapsed time.Duration, direction int) {
	if !s.armed {
		return
	}
	s.progress = Step(s.progress, elapsed, s.duration, direction)
	if s.progress == 0 || s.progress == 1 {
		s.armed = false
	}
}

// Alpha is the overlay opacity for the current progress.
func (s *Strip) Alpha() uint8 {
	return uint8(math.Round(s.progress * 255))
}

func (s *Strip) Draw(dst Canvas, tex *ebiten.Image) {
	alpha := s.Alpha()
	for _, tile := range s.tiles {
		tile.Draw(dst, tex, alpha)
	}
}

func (s *Strip) Progress() float64 { return s.progress }

func (s *Strip) Armed() bool { return s.armed }

func (s *Strip) StartedAt() time.Duration { return s.startedAt }

// Tiles returns a copy of the strip's tiles in diagonal order.
func (s *Strip) Tiles() []Tile {
	return append([]Tile(nil), s.tiles...)
}
