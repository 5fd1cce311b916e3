package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/style"
)

// settingsItem is one toggle row.
type settingsItem struct {
	label string
	get   func() bool
	set   func(bool)
}

// SettingsScreen is a vertical list of toggles persisted to config.
type SettingsScreen struct {
	app   App
	items []settingsItem
	gest  *gesture.State
}

func NewSettingsScreen(app App) *SettingsScreen {
	cfg := app.Config()
	return &SettingsScreen{
		app:  app,
		gest: gesture.NewState(),
		items: []settingsItem{
			{
				label: "Keep navigation pinned",
				get:   func() bool { return cfg.KeepNavPinned },
				set:   func(v bool) { cfg.KeepNavPinned = v },
			},
			{
				label: "Discover consoles automatically",
				get:   func() bool { return cfg.AutoDiscovery },
				set:   func(v bool) { cfg.AutoDiscovery = v },
			},
		},
	}
}

func (s *SettingsScreen) OnEnter() {
	f := s.app.Focus()
	if f.Index() >= len(s.items) {
		f.SetIndex(0)
	}
}

func (s *SettingsScreen) OnExit() {
	s.gest.Reset()
}

func (s *SettingsScreen) Update() {
	in := s.app.Input()
	f := s.app.Focus()

	s.updateGesture(in)

	if !f.IsContent() {
		return
	}

	if d := in.Direction(); d != 0 {
		next := f.Index() + d
		if next >= 0 && next < len(s.items) {
			f.SetIndex(next)
		}
	}

	if in.Pressed(input.BtnCross) {
		s.toggle(f.Index())
	}
}

func (s *SettingsScreen) updateGesture(in *input.Manager) {
	p := in.Pointer()
	ev := s.gest.Update(p.Down, p.X, p.Y)

	switch ev.Phase {
	case gesture.PhaseDown:
		s.gest.SetStartTarget(s.rowAt(ev.X, ev.Y))
	case gesture.PhaseUp:
		if ev.Tap && ev.Target >= 0 {
			s.app.Focus().SetIndex(ev.Target)
			s.toggle(ev.Target)
		}
	}
}

func (s *SettingsScreen) toggle(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	item := s.items[i]
	item.set(!item.get())
	s.app.SaveConfig()
}

const settingsRowHeight = 56.0

func (s *SettingsScreen) rowAt(px, py float64) int {
	x := s.app.ContentLeft() + style.ContentPadding
	w := style.ScreenWidth - x - style.ContentPadding
	for i := range s.items {
		y := float64(style.ContentStartY) + float64(i)*settingsRowHeight
		if input.PointInRect(px, py, x, y, w, settingsRowHeight-8) {
			return i
		}
	}
	return -1
}

func (s *SettingsScreen) Draw(dst *ebiten.Image) {
	drawTitle(dst, s.app.ContentLeft(), "Settings")

	x := s.app.ContentLeft() + style.ContentPadding
	w := style.ScreenWidth - x - style.ContentPadding
	focused := s.app.Focus().IsContent()
	focusIdx := s.app.Focus().Index()

	for i, item := range s.items {
		y := float64(style.ContentStartY) + float64(i)*settingsRowHeight

		style.FillRoundedRect(dst, x, y, w, settingsRowHeight-8, 8, style.Surface)
		if focused && i == focusIdx {
			style.StrokeRect(dst, x-2, y-2, w+4, settingsRowHeight-4, 2, style.Primary)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+16, y+18)
		op.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, item.label, style.FontFace(), op)

		// Toggle indicator on the right edge
		tx := x + w - 56
		ty := y + (settingsRowHeight-8)/2 - 10
		track := style.Background
		if item.get() {
			track = style.Primary
		}
		style.FillRoundedRect(dst, tx, ty, 40, 20, 10, track)
		kx := tx + 3.0
		if item.get() {
			kx = tx + 40 - 17
		}
		style.FillCircle(dst, kx+7, ty+10, 7, style.Text)
	}
}
