// Package scene keeps the stack of screens the game is showing.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
)

// Scene is one screen of the game.
type Scene interface {
	Update(now gametime.Time, in input.State) error
	Draw(screen *ebiten.Image)
}

// Stack holds the active scenes. Only the top scene receives updates and
// input; every scene is drawn, bottom first, so popups show over what is
// underneath them.
type Stack struct {
	scenes []Scene
}

func NewStack(scenes ...Scene) *Stack {
	return &Stack{scenes: append([]Scene(nil), scenes...)}
}

func (s *Stack) Push(sc Scene) {
	if sc == nil {
		return
	}
	s.scenes = append(s.scenes, sc)
}

// Pop removes and returns the top scene, or nil when the stack is empty.
func (s *Stack) Pop() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	return top
}

// Replace swaps the top scene for sc.
func (s *Stack) Replace(sc Scene) {
	s.Pop()
	s.Push(sc)
}

func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

func (s *Stack) Len() int { return len(s.scenes) }

// Contains reports whether a scene matching pred is on the stack.
func (s *Stack) Contains(pred func(Scene) bool) bool {
	for _, sc := range s.scenes {
		if pred(sc) {
			return true
		}
	}
	return false
}

// Update updates the top scene. A scene may change the stack while it
// updates; the change takes effect next frame.
func (s *Stack) Update(now gametime.Time, in input.State) error {
	if top := s.Top(); top != nil {
		return top.Update(now, in)
	}
	return nil
}

func (s *Stack) Draw(screen *ebiten.Image) {
	for _, sc := range s.scenes {
		sc.Draw(screen)
	}
}
