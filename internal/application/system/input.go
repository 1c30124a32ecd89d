package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Stick deadzones. The vertical one is larger so diagonal movement
// doesn't accidentally redirect attacks up or down.
const (
	horizontalDeadzone = 0.2
	verticalDeadzone   = 0.5
)

// InputState is one step's snapshot of digital button states. Analog
// stick input past the deadzones is OR'd into the same fields.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	JumpHeld      bool
	DashPressed   bool // rising edge
	AttackPressed bool // rising edge
}

// InputSystem samples the keyboard and the first attached gamepad once
// per step.
type InputSystem struct {
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state.
func (s *InputSystem) Poll() InputState {
	in := InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD),
		Up:            ebiten.IsKeyPressed(ebiten.KeyW),
		Down:          ebiten.IsKeyPressed(ebiten.KeyS),
		JumpHeld:      ebiten.IsKeyPressed(ebiten.KeySpace),
		DashPressed:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyE),
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	if len(s.gamepads) == 0 {
		return in
	}

	id := s.gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return in
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

	if math.Abs(x) >= horizontalDeadzone {
		in.Left = in.Left || x < 0
		in.Right = in.Right || x > 0
	}
	if math.Abs(y) >= verticalDeadzone {
		in.Up = in.Up || y < 0
		in.Down = in.Down || y > 0
	}

	in.JumpHeld = in.JumpHeld ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.DashPressed = in.DashPressed ||
		inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	in.AttackPressed = in.AttackPressed ||
		inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)

	return in
}
