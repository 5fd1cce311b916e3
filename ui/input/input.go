// Package input flattens keyboard, gamepad, mouse, and touch into one
// per-frame snapshot of logical console buttons plus a single pointer.
//
// Edge detection compares this frame's snapshot against the previous one.
// Screen transitions arm a block mask over the buttons held at the moment
// of the switch, so the press that triggered the transition can't leak
// into the next screen as a fresh edge; each block clears when its button
// is released.
package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/user-none/vitalink/ui/style"
)

// Button is a logical console button bit.
type Button uint32

const (
	BtnUp Button = 1 << iota
	BtnDown
	BtnLeft
	BtnRight
	BtnCross
	BtnCircle
	BtnTriangle
	BtnSquare
	BtnStart
	BtnSelect
)

// Pointer is the unified mouse/touch sample for one frame.
type Pointer struct {
	Down bool
	X    float64
	Y    float64
}

// Manager owns input state. Created once; Poll is called once per frame
// before any consumer reads it.
type Manager struct {
	current Button
	prev    Button

	blockMask    Button
	touchBlocked bool

	pointer     Pointer
	prevPointer Pointer

	// Repeat state for held directional navigation
	direction   Button
	startTime   time.Time
	lastMove    time.Time
	repeatDelay time.Duration
}

// NewManager creates an input manager.
func NewManager() *Manager {
	return &Manager{
		repeatDelay: style.NavStartInterval,
	}
}

// Poll reads all devices and advances the snapshots. Call once per frame.
func (m *Manager) Poll() {
	m.setState(readButtons(), readPointer())
}

// setState advances the snapshot from an explicit sample.
func (m *Manager) setState(buttons Button, ptr Pointer) {
	m.prev = m.current
	m.current = buttons

	m.prevPointer = m.pointer
	m.pointer = ptr

	// A block on a button lives until that button is released.
	m.blockMask &= m.current
	if m.touchBlocked && !ptr.Down {
		m.touchBlocked = false
	}
}

// Pressed reports a press edge on b this frame, unless blocked.
func (m *Manager) Pressed(b Button) bool {
	return m.current&b != 0 && m.prev&b == 0 && m.blockMask&b == 0
}

// Held reports b being down this frame, unless blocked.
func (m *Manager) Held(b Button) bool {
	return m.current&b != 0 && m.blockMask&b == 0
}

// Pointer returns this frame's pointer sample. A blocked touch reads as
// lifted until the finger genuinely releases.
func (m *Manager) Pointer() Pointer {
	if m.touchBlocked {
		return Pointer{X: m.pointer.X, Y: m.pointer.Y}
	}
	return m.pointer
}

// BlockForTransition blocks every currently held button and the current
// touch. Called when switching screens so held input doesn't re-fire.
func (m *Manager) BlockForTransition() {
	m.blockMask |= m.current
	if m.pointer.Down {
		m.touchBlocked = true
	}
}

// Direction returns -1/0/+1 for held up/down (or left/right) navigation
// with initial-delay-then-accelerating repeat. The first press in a new
// direction fires immediately.
func (m *Manager) Direction() int {
	var desired Button
	switch {
	case m.Held(BtnUp) || m.Held(BtnLeft):
		desired = BtnUp
	case m.Held(BtnDown) || m.Held(BtnRight):
		desired = BtnDown
	}

	now := time.Now()

	if desired == 0 {
		m.direction = 0
		m.repeatDelay = style.NavStartInterval
		return 0
	}

	if desired != m.direction {
		m.direction = desired
		m.startTime = now
		m.lastMove = now
		m.repeatDelay = style.NavStartInterval
		return dirValue(desired)
	}

	if now.Sub(m.startTime) >= style.NavInitialDelay && now.Sub(m.lastMove) >= m.repeatDelay {
		m.lastMove = now
		m.repeatDelay -= style.NavAcceleration
		if m.repeatDelay < style.NavMinInterval {
			m.repeatDelay = style.NavMinInterval
		}
		return dirValue(desired)
	}

	return 0
}

func dirValue(b Button) int {
	if b == BtnUp {
		return -1
	}
	return 1
}

// keyBindings maps keyboard keys onto console buttons.
var keyBindings = map[ebiten.Key]Button{
	ebiten.KeyArrowUp:    BtnUp,
	ebiten.KeyArrowDown:  BtnDown,
	ebiten.KeyArrowLeft:  BtnLeft,
	ebiten.KeyArrowRight: BtnRight,
	ebiten.KeyZ:          BtnCross,
	ebiten.KeyEnter:      BtnCross,
	ebiten.KeyX:          BtnCircle,
	ebiten.KeyEscape:     BtnCircle,
	ebiten.KeyC:          BtnTriangle,
	ebiten.KeyV:          BtnSquare,
	ebiten.KeyTab:        BtnStart,
	ebiten.KeyShiftRight: BtnSelect,
}

var padBindings = map[ebiten.StandardGamepadButton]Button{
	ebiten.StandardGamepadButtonLeftTop:     BtnUp,
	ebiten.StandardGamepadButtonLeftBottom:  BtnDown,
	ebiten.StandardGamepadButtonLeftLeft:    BtnLeft,
	ebiten.StandardGamepadButtonLeftRight:   BtnRight,
	ebiten.StandardGamepadButtonRightBottom: BtnCross,
	ebiten.StandardGamepadButtonRightRight:  BtnCircle,
	ebiten.StandardGamepadButtonRightTop:    BtnTriangle,
	ebiten.StandardGamepadButtonRightLeft:   BtnSquare,
	ebiten.StandardGamepadButtonCenterRight: BtnStart,
	ebiten.StandardGamepadButtonCenterLeft:  BtnSelect,
}

func readButtons() Button {
	var b Button

	for key, btn := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			b |= btn
		}
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) > 0 {
		id := ids[0]
		for pad, btn := range padBindings {
			if ebiten.IsStandardGamepadButtonPressed(id, pad) {
				b |= btn
			}
		}

		// Left stick contributes to the D-pad at a 0.5 UI threshold
		axisX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		axisY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if axisY < -0.5 {
			b |= BtnUp
		}
		if axisY > 0.5 {
			b |= BtnDown
		}
		if axisX < -0.5 {
			b |= BtnLeft
		}
		if axisX > 0.5 {
			b |= BtnRight
		}
	}

	return b
}

func readPointer() Pointer {
	// Touch wins over the mouse when both are present
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return Pointer{Down: true, X: float64(x), Y: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:    float64(x),
		Y:    float64(y),
	}
}

// PointInRect reports whether (px, py) is inside the rectangle.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// PointInCircle reports whether (px, py) is within r of (cx, cy).
func PointInCircle(px, py, cx, cy, r float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

// JustPressedScreenshotKey reports the global screenshot chord.
func JustPressedScreenshotKey() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
