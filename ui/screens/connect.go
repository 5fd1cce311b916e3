package screens

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/session"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// ConnectScreen shows progress while a session wakes the console and
// connects. It polls the session worker's stage each frame and advances to
// streaming or surfaces the failure.
type ConnectScreen struct {
	app     App
	entered time.Time
}

func NewConnectScreen(app App) *ConnectScreen {
	return &ConnectScreen{app: app}
}

func (c *ConnectScreen) OnEnter() {
	c.entered = time.Now()
}

func (c *ConnectScreen) OnExit() {}

func (c *ConnectScreen) Update() {
	s := c.app.Session()
	if s == nil {
		c.app.SwitchTo(types.ScreenMain)
		return
	}

	switch s.Stage() {
	case session.StageStreaming:
		c.app.SwitchTo(types.ScreenStream)
		return
	case session.StageFailed:
		err := s.Err()
		msg := "Connection failed"
		if err != nil {
			msg = err.Error()
		}
		c.app.ShowError("Could not connect", msg)
		c.app.SwitchTo(types.ScreenMain)
		return
	}

	// Circle cancels the attempt
	if c.app.Input().Pressed(input.BtnCircle) {
		s.Stop()
		c.app.SwitchTo(types.ScreenMain)
	}
}

func stageLabel(s session.Stage) string {
	switch s {
	case session.StageWaking:
		return "Waking console..."
	case session.StageConnecting:
		return "Connecting..."
	default:
		return "Preparing..."
	}
}

func (c *ConnectScreen) Draw(dst *ebiten.Image) {
	s := c.app.Session()
	if s == nil {
		return
	}

	host := s.Host()
	cx := float64(style.ScreenWidth) / 2
	cy := float64(style.ScreenHeight)/2 - 20

	// Orbiting-dot spinner
	t := time.Since(c.entered).Seconds()
	for i := 0; i < 8; i++ {
		a := t*3 + float64(i)*math.Pi/4
		opacity := 0.2 + 0.8*float64(i)/8
		style.FillCircle(dst, cx+36*math.Cos(a), cy+36*math.Sin(a), 5,
			style.WithAlpha(style.Primary, opacity))
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-80, cy+64)
	op.ColorScale.ScaleWithColor(style.Text)
	text.Draw(dst, stageLabel(s.Stage()), style.FontFace(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx-80, cy+88)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, fmt.Sprintf("%s (%s)", host.Name, host.Addr), style.FontFace(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx-80, cy+120)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, "Circle: cancel", style.FontFace(), op)
}
