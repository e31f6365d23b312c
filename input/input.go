// Package input polls the keyboard and the first gamepad once per frame and
// turns them into edge-detected game keys.
package input

import "strings"

// Key is a logical game key.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyBack
	KeyStart
)

var keyNames = [...]string{"up", "down", "left", "right", "back", "start"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Keys is a set of game keys.
type Keys uint8

func KeySet(keys ...Key) Keys {
	var s Keys
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s Keys) With(k Key) Keys { return s | 1<<k }

func (s Keys) Has(k Key) bool { return s&(1<<k) != 0 }

func (s Keys) Empty() bool { return s == 0 }

func (s Keys) String() string {
	var names []string
	for k := KeyUp; k <= KeyStart; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// State is the input for one frame.
type State struct {
	// Down holds every key currently held.
	Down Keys
	// Pressed holds keys that went down this frame.
	Pressed Keys
	// Released holds keys that went up this frame.
	Released Keys
}

// Poller remembers the previous frame's keys to detect presses and releases.
type Poller struct {
	prev   Keys
	sample func() Keys
}

// NewPoller returns a poller reading the keyboard and gamepad through ebiten.
func NewPoller() *Poller {
	return &Poller{sample: Sample}
}

// Update samples the devices and returns this frame's state.
func (p *Poller) Update() State {
	var cur Keys
	if p.sample != nil {
		cur = p.sample()
	}
	return p.Feed(cur)
}

// Feed computes the frame state for an already sampled key set.
func (p *Poller) Feed(cur Keys) State {
	st := State{
		Down:     cur,
		Pressed:  cur &^ p.prev,
		Released: p.prev &^ cur,
	}
	p.prev = cur
	return st
}
