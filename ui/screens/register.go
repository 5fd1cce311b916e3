package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/discovery"
	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

const pinLength = 8

// RegisterScreen pairs a discovered console using the 8-digit PIN the
// console displays. Digits are entered with the D-pad: up/down changes the
// digit under the cursor, left/right moves the cursor.
type RegisterScreen struct {
	app App

	digits [pinLength]int
	cursor int

	target     discovery.Host
	haveTarget bool

	gest *gesture.State
}

func NewRegisterScreen(app App) *RegisterScreen {
	return &RegisterScreen{app: app, gest: gesture.NewState()}
}

func (r *RegisterScreen) OnEnter() {
	r.digits = [pinLength]int{}
	r.cursor = 0
	r.pickTarget()
}

func (r *RegisterScreen) OnExit() {
	r.gest.Reset()
}

// pickTarget chooses the first discovered console that isn't registered yet.
func (r *RegisterScreen) pickTarget() {
	r.haveTarget = false
	registered := make(map[string]bool)
	for _, h := range r.app.Config().Hosts {
		registered[h.HostID] = true
	}
	for _, h := range r.app.DiscoveredHosts() {
		if !registered[h.HostID] {
			r.target = h
			r.haveTarget = true
			return
		}
	}
}

func (r *RegisterScreen) pin() string {
	s := ""
	for _, d := range r.digits {
		s += fmt.Sprintf("%d", d)
	}
	return s
}

func (r *RegisterScreen) Update() {
	if !r.haveTarget {
		r.pickTarget()
	}

	in := r.app.Input()
	f := r.app.Focus()

	ptr := in.Pointer()
	ev := r.gest.Update(ptr.Down, ptr.X, ptr.Y)
	if ev.Phase == gesture.PhaseDown {
		r.gest.SetStartTarget(r.digitAt(ev.X, ev.Y))
	}
	if ev.Phase == gesture.PhaseUp && ev.Tap && ev.Target >= 0 {
		r.cursor = ev.Target
	}

	if !f.IsContent() {
		return
	}

	if in.Pressed(input.BtnLeft) && r.cursor > 0 {
		r.cursor--
	}
	if in.Pressed(input.BtnRight) && r.cursor < pinLength-1 {
		r.cursor++
	}
	if in.Pressed(input.BtnUp) {
		r.digits[r.cursor] = (r.digits[r.cursor] + 1) % 10
	}
	if in.Pressed(input.BtnDown) {
		r.digits[r.cursor] = (r.digits[r.cursor] + 9) % 10
	}

	if in.Pressed(input.BtnCross) {
		r.register()
	}
	if in.Pressed(input.BtnCircle) {
		r.app.SwitchTo(types.ScreenMain)
	}
}

// register records the pairing and returns to the console list. The PIN is
// folded into the stored registration key used for wakeup credentials.
func (r *RegisterScreen) register() {
	if !r.haveTarget {
		r.app.Notify("No unregistered console found")
		return
	}

	cfg := r.app.Config()
	cfg.Hosts = append(cfg.Hosts, storage.RegisteredHost{
		Name:      r.target.Name,
		Addr:      r.target.Addr,
		HostID:    r.target.HostID,
		RegistKey: r.pin(),
	})
	r.app.SaveConfig()
	r.app.Notify(fmt.Sprintf("Registered %s", r.target.Name))
	r.app.SwitchTo(types.ScreenMain)
}

// Digit cell layout

const (
	digitCellW = 52.0
	digitCellH = 72.0
	digitGap   = 12.0
)

func (r *RegisterScreen) digitOrigin() (float64, float64) {
	total := pinLength*digitCellW + (pinLength-1)*digitGap
	left := r.app.ContentLeft()
	x := left + (style.ScreenWidth-left-total)/2
	return x, style.ContentStartY + 80
}

func (r *RegisterScreen) digitAt(px, py float64) int {
	ox, oy := r.digitOrigin()
	for i := 0; i < pinLength; i++ {
		x := ox + float64(i)*(digitCellW+digitGap)
		if input.PointInRect(px, py, x, oy, digitCellW, digitCellH) {
			return i
		}
	}
	return -1
}

func (r *RegisterScreen) Draw(dst *ebiten.Image) {
	drawTitle(dst, r.app.ContentLeft(), "Register Console")

	left := r.app.ContentLeft() + style.ContentPadding
	op := &text.DrawOptions{}
	op.GeoM.Translate(left, style.ContentStartY)

	if r.haveTarget {
		op.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, fmt.Sprintf("Enter the PIN shown on %s", r.target.Name), style.FontFace(), op)
	} else {
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, "Searching for consoles...", style.FontFace(), op)
		return
	}

	ox, oy := r.digitOrigin()
	for i := 0; i < pinLength; i++ {
		x := ox + float64(i)*(digitCellW+digitGap)

		style.FillRoundedRect(dst, x, oy, digitCellW, digitCellH, 8, style.Surface)
		if i == r.cursor {
			style.StrokeRect(dst, x-2, oy-2, digitCellW+4, digitCellH+4, 2, style.Primary)
		}

		dop := &text.DrawOptions{}
		dop.GeoM.Translate(x+digitCellW/2-4, oy+digitCellH/2-6)
		dop.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, fmt.Sprintf("%d", r.digits[i]), style.FontFace(), dop)
	}

	op = &text.DrawOptions{}
	op.GeoM.Translate(left, oy+digitCellH+32)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, "Cross: register    Circle: cancel", style.FontFace(), op)
}
