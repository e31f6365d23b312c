package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadzone = 0.5

var keyboard = map[Key][]ebiten.Key{
	KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	KeyBack:  {ebiten.KeyEscape, ebiten.KeyBackspace},
	KeyStart: {ebiten.KeyEnter, ebiten.KeySpace},
}

// The handheld pad only had a d-pad, back and one action button; B doubles
// as start there, so both map to KeyStart.
var gamepad = map[Key][]ebiten.StandardGamepadButton{
	KeyUp:    {ebiten.StandardGamepadButtonLeftTop},
	KeyDown:  {ebiten.StandardGamepadButtonLeftBottom},
	KeyLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	KeyRight: {ebiten.StandardGamepadButtonLeftRight},
	KeyBack:  {ebiten.StandardGamepadButtonCenterLeft},
	KeyStart: {ebiten.StandardGamepadButtonCenterRight, ebiten.StandardGamepadButtonRightRight},
}

// Sample reads the keys held right now on the keyboard and first gamepad.
func Sample() Keys {
	var cur Keys
	for k, keys := range keyboard {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				cur = cur.With(k)
				break
			}
		}
	}

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return cur
	}
	id := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return cur
	}
	for k, buttons := range gamepad {
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				cur = cur.With(k)
				break
			}
		}
	}

	// left stick acts as a d-pad
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Abs(x) > stickDeadzone {
		if x < 0 {
			cur = cur.With(KeyLeft)
		} else {
			cur = cur.With(KeyRight)
		}
	}
	if math.Abs(y) > stickDeadzone {
		if y < 0 {
			cur = cur.With(KeyUp)
		} else {
			cur = cur.With(KeyDown)
		}
	}
	return cur
}
