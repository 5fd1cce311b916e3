package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/focus"
	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/style"
)

// errorPopup is a modal dialog for failures the user must acknowledge. It
// owns one focus stack entry: pushed when shown, popped when dismissed.
type errorPopup struct {
	title   string
	message string
	gest    *gesture.State
}

// showErrorPopup creates the popup and claims input via the focus stack.
// Returns nil if the stack refuses the push.
func showErrorPopup(f *focus.Stack, title, message string) *errorPopup {
	if !f.PushModal() {
		return nil
	}
	return &errorPopup{
		title:   title,
		message: message,
		gest:    gesture.NewState(),
	}
}

// update returns true once the popup has been dismissed. The caller pops
// the focus entry.
func (p *errorPopup) update(in *input.Manager) bool {
	if in.Pressed(input.BtnCross) || in.Pressed(input.BtnCircle) {
		return true
	}

	ptr := in.Pointer()
	ev := p.gest.Update(ptr.Down, ptr.X, ptr.Y)
	return ev.Phase == gesture.PhaseUp && ev.Tap
}

// debugMenu is a modal overlay of live coordinator state, toggled with
// Start. Like the error popup it owns exactly one focus stack entry.
type debugMenu struct {
	lines func() []string
}

// showDebugMenu claims input via the focus stack; nil if the push is
// refused.
func showDebugMenu(f *focus.Stack, lines func() []string) *debugMenu {
	if !f.PushModal() {
		return nil
	}
	return &debugMenu{lines: lines}
}

// update returns true once dismissed.
func (d *debugMenu) update(in *input.Manager) bool {
	return in.Pressed(input.BtnStart) || in.Pressed(input.BtnCircle)
}

func (d *debugMenu) draw(dst *ebiten.Image) {
	style.FillRect(dst, 0, 0, style.ScreenWidth, style.ScreenHeight,
		style.WithAlpha(style.Black, 0.6))

	lines := d.lines()
	const w = 380.0
	h := float64(len(lines))*20 + 64
	x := (style.ScreenWidth - w) / 2
	y := (style.ScreenHeight - h) / 2

	style.FillRoundedRect(dst, x, y, w, h, 10, style.Surface)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+20, y+16)
	op.ColorScale.ScaleWithColor(style.Text)
	text.Draw(dst, "Debug", style.FontFace(), op)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+20, y+44+float64(i)*20)
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, line, style.FontFace(), op)
	}
}

func (p *errorPopup) draw(dst *ebiten.Image) {
	style.FillRect(dst, 0, 0, style.ScreenWidth, style.ScreenHeight,
		style.WithAlpha(style.Black, 0.6))

	const w, h = 420.0, 160.0
	x := (style.ScreenWidth - w) / 2
	y := (style.ScreenHeight - h) / 2

	style.FillRoundedRect(dst, x, y, w, h, 10, style.Surface)
	style.FillRect(dst, x, y, w, 4, style.StatusOffline)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+20, y+20)
	op.ColorScale.ScaleWithColor(style.Text)
	text.Draw(dst, p.title, style.FontFace(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x+20, y+52)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, p.message, style.FontFace(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x+20, y+h-32)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, "Cross: dismiss", style.FontFace(), op)
}
