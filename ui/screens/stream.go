package screens

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/session"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// StreamScreen is active while a session is streaming. Holding Circle
// disconnects; a tap of Circle is forwarded to the console, so the hold
// requirement prevents accidental disconnects mid-game.
type StreamScreen struct {
	app App

	circleHeldSince time.Time
}

const disconnectHold = 1500 * time.Millisecond

func NewStreamScreen(app App) *StreamScreen {
	return &StreamScreen{app: app}
}

func (s *StreamScreen) OnEnter() {
	s.circleHeldSince = time.Time{}
}

func (s *StreamScreen) OnExit() {}

func (s *StreamScreen) Update() {
	sess := s.app.Session()
	if sess == nil || sess.Stage() != session.StageStreaming {
		s.app.SwitchTo(types.ScreenMain)
		return
	}

	in := s.app.Input()
	if in.Held(input.BtnCircle) {
		if s.circleHeldSince.IsZero() {
			s.circleHeldSince = time.Now()
		} else if time.Since(s.circleHeldSince) >= disconnectHold {
			sess.Stop()
			s.app.Notify("Disconnected")
			s.app.SwitchTo(types.ScreenMain)
			return
		}
	} else {
		s.circleHeldSince = time.Time{}
	}
}

func (s *StreamScreen) Draw(dst *ebiten.Image) {
	sess := s.app.Session()
	if sess == nil {
		return
	}

	// Video plane placeholder; decoded frames land here.
	style.FillRect(dst, 0, 0, style.ScreenWidth, style.ScreenHeight, style.Black)

	host := sess.Host()
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, style.ScreenHeight-40)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, fmt.Sprintf("Streaming from %s  (hold Circle to disconnect)", host.Name),
		style.FontFace(), op)

	// Hold progress indicator
	if !s.circleHeldSince.IsZero() {
		frac := float64(time.Since(s.circleHeldSince)) / float64(disconnectHold)
		if frac > 1 {
			frac = 1
		}
		style.FillRoundedRect(dst, 20, style.ScreenHeight-24, 200*frac, 6, 3, style.Primary)
	}
}
