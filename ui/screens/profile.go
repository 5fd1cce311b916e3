package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/style"
)

// ProfileScreen lists registered consoles and lets the user forget them.
type ProfileScreen struct {
	app  App
	gest *gesture.State
}

func NewProfileScreen(app App) *ProfileScreen {
	return &ProfileScreen{app: app, gest: gesture.NewState()}
}

func (p *ProfileScreen) OnEnter() {
	p.clampFocusIndex()
}

func (p *ProfileScreen) OnExit() {
	p.gest.Reset()
}

func (p *ProfileScreen) clampFocusIndex() {
	f := p.app.Focus()
	n := len(p.app.Config().Hosts)
	if n == 0 {
		f.SetIndex(0)
		return
	}
	if f.Index() >= n {
		f.SetIndex(n - 1)
	}
}

func (p *ProfileScreen) Update() {
	in := p.app.Input()
	f := p.app.Focus()
	hosts := p.app.Config().Hosts

	ptr := in.Pointer()
	ev := p.gest.Update(ptr.Down, ptr.X, ptr.Y)
	if ev.Phase == gesture.PhaseDown {
		p.gest.SetStartTarget(p.rowAt(ev.X, ev.Y))
	}
	if ev.Phase == gesture.PhaseUp && ev.Tap && ev.Target >= 0 {
		f.SetIndex(ev.Target)
	}

	if !f.IsContent() {
		return
	}

	if d := in.Direction(); d != 0 {
		next := f.Index() + d
		if next >= 0 && next < len(hosts) {
			f.SetIndex(next)
		}
	}

	if in.Pressed(input.BtnTriangle) && len(hosts) > 0 {
		p.forget(f.Index())
	}
}

// forget removes a registered console and persists the change.
func (p *ProfileScreen) forget(i int) {
	cfg := p.app.Config()
	if i < 0 || i >= len(cfg.Hosts) {
		return
	}
	name := cfg.Hosts[i].Name
	cfg.Hosts = append(cfg.Hosts[:i], cfg.Hosts[i+1:]...)
	p.app.SaveConfig()
	p.app.Notify(fmt.Sprintf("Forgot %s", name))
	p.clampFocusIndex()
}

const profileRowHeight = 64.0

func (p *ProfileScreen) rowAt(px, py float64) int {
	x := p.app.ContentLeft() + style.ContentPadding
	w := style.ScreenWidth - x - style.ContentPadding
	for i := range p.app.Config().Hosts {
		y := float64(style.ContentStartY) + float64(i)*profileRowHeight
		if input.PointInRect(px, py, x, y, w, profileRowHeight-8) {
			return i
		}
	}
	return -1
}

func (p *ProfileScreen) Draw(dst *ebiten.Image) {
	drawTitle(dst, p.app.ContentLeft(), "Registered Consoles")

	hosts := p.app.Config().Hosts
	x := p.app.ContentLeft() + style.ContentPadding
	w := style.ScreenWidth - x - style.ContentPadding

	if len(hosts) == 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, style.ContentStartY+20)
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, "No registered consoles.", style.FontFace(), op)
		return
	}

	focused := p.app.Focus().IsContent()
	focusIdx := p.app.Focus().Index()

	for i, h := range hosts {
		y := float64(style.ContentStartY) + float64(i)*profileRowHeight

		style.FillRoundedRect(dst, x, y, w, profileRowHeight-8, 8, style.Surface)
		if focused && i == focusIdx {
			style.StrokeRect(dst, x-2, y-2, w+4, profileRowHeight-4, 2, style.Primary)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+16, y+12)
		op.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, h.Name, style.FontFace(), op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(x+16, y+32)
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, h.Addr+"  (Triangle to forget)", style.FontFace(), op)
	}
}
