package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/discovery"
	"github.com/user-none/vitalink/ui/focus"
	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// card is one console entry on the main screen: a registered host joined
// with its live discovery status when visible.
type card struct {
	host   storage.RegisteredHost
	status discovery.HostStatus
}

// MainScreen shows registered consoles as a horizontally scrolling card
// row. Tapping a card or pressing Cross on the focused one connects.
type MainScreen struct {
	app App

	cards []card

	scrollX     float64
	scrollStart float64
	gest        *gesture.State
}

func NewMainScreen(app App) *MainScreen {
	return &MainScreen{
		app:  app,
		gest: gesture.NewState(),
	}
}

func (m *MainScreen) OnEnter() {
	m.refreshCards()
	m.clampFocusIndex()
}

func (m *MainScreen) OnExit() {
	m.gest.Reset()
}

// refreshCards rebuilds the card list from the registered hosts, joining
// in discovery status by host ID.
func (m *MainScreen) refreshCards() {
	cfg := m.app.Config()
	found := make(map[string]discovery.HostStatus)
	for _, h := range m.app.DiscoveredHosts() {
		found[h.HostID] = h.Status
	}

	m.cards = m.cards[:0]
	for _, h := range cfg.Hosts {
		m.cards = append(m.cards, card{host: h, status: found[h.HostID]})
	}
}

func (m *MainScreen) clampFocusIndex() {
	f := m.app.Focus()
	if len(m.cards) == 0 {
		f.SetIndex(0)
		return
	}
	if f.Index() >= len(m.cards) {
		f.SetIndex(len(m.cards) - 1)
	}
}

func (m *MainScreen) Update() {
	m.refreshCards()
	m.clampFocusIndex()

	in := m.app.Input()
	f := m.app.Focus()

	m.updateGesture(in)

	if !f.IsContent() {
		return
	}

	// D-pad card navigation
	if in.Pressed(input.BtnLeft) && f.Index() > 0 {
		f.SetIndex(f.Index() - 1)
		m.scrollToIndex(f.Index())
	}
	if in.Pressed(input.BtnRight) && f.Index() < len(m.cards)-1 {
		f.SetIndex(f.Index() + 1)
		m.scrollToIndex(f.Index())
	}

	if in.Pressed(input.BtnCross) && len(m.cards) > 0 {
		m.connectTo(m.cards[f.Index()])
	}
	if in.Pressed(input.BtnTriangle) {
		m.app.SwitchTo(types.ScreenRegister)
	}
}

func (m *MainScreen) updateGesture(in *input.Manager) {
	p := in.Pointer()
	ev := m.gest.Update(p.Down, p.X, p.Y)

	switch ev.Phase {
	case gesture.PhaseDown:
		m.scrollStart = m.scrollX
		m.gest.SetStartTarget(m.cardAt(ev.X, ev.Y))

	case gesture.PhaseMove:
		if ev.Swipe {
			m.scrollX = m.scrollStart + ev.DragDX
			m.clampScroll()
		}

	case gesture.PhaseUp:
		// The card list can change between touch-down and release
		if ev.Tap && ev.Target >= 0 && ev.Target < len(m.cards) {
			m.app.Focus().SetZone(focus.ZoneMainContent)
			m.app.Focus().SetIndex(ev.Target)
			m.connectTo(m.cards[ev.Target])
		}
		if ev.Swipe {
			m.snapScroll()
		}
	}
}

func (m *MainScreen) connectTo(c card) {
	if c.status == discovery.StatusUnknown {
		m.app.Notify(fmt.Sprintf("%s is not reachable", c.host.Name))
		return
	}
	m.app.Connect(c.host)
	m.app.SwitchTo(types.ScreenWaking)
}

// Layout

func (m *MainScreen) cardOrigin() (float64, float64) {
	x := m.app.ContentLeft() + style.ContentPadding - m.scrollX
	y := float64(style.ContentStartY + 60)
	return x, y
}

// cardAt hit-tests the card row, accounting for scroll.
func (m *MainScreen) cardAt(px, py float64) int {
	ox, oy := m.cardOrigin()
	for i := range m.cards {
		x := ox + float64(i)*(style.CardWidth+style.CardGap)
		if input.PointInRect(px, py, x, oy, style.CardWidth, style.CardHeight) {
			return i
		}
	}
	return -1
}

func (m *MainScreen) maxScroll() float64 {
	overflow := len(m.cards) - style.CardsVisibleMax
	if overflow <= 0 {
		return 0
	}
	return float64(overflow) * (style.CardWidth + style.CardGap)
}

func (m *MainScreen) clampScroll() {
	if m.scrollX < 0 {
		m.scrollX = 0
	}
	if max := m.maxScroll(); m.scrollX > max {
		m.scrollX = max
	}
}

// snapScroll settles the row on the nearest whole-card offset.
func (m *MainScreen) snapScroll() {
	step := float64(style.CardWidth + style.CardGap)
	i := int(m.scrollX/step + 0.5)
	m.scrollX = float64(i) * step
	m.clampScroll()
}

// scrollToIndex keeps the focused card inside the visible window.
func (m *MainScreen) scrollToIndex(i int) {
	step := float64(style.CardWidth + style.CardGap)
	left := float64(i) * step
	if left < m.scrollX {
		m.scrollX = left
	}
	right := left + step - style.CardGap
	window := float64(style.CardsVisibleMax)*step - style.CardGap
	if right > m.scrollX+window {
		m.scrollX = right - window
	}
	m.clampScroll()
}

func statusColor(s discovery.HostStatus) color.NRGBA {
	switch s {
	case discovery.StatusReady:
		return style.StatusReady
	case discovery.StatusStandby:
		return style.StatusStandby
	default:
		return style.StatusOffline
	}
}

func (m *MainScreen) Draw(dst *ebiten.Image) {
	drawTitle(dst, m.app.ContentLeft(), "Consoles")

	if len(m.cards) == 0 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(m.app.ContentLeft()+style.ContentPadding, style.ContentStartY+80)
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, "No consoles registered. Press Triangle to add one.", style.FontFace(), op)
		return
	}

	ox, oy := m.cardOrigin()
	focused := m.app.Focus().IsContent()
	focusIdx := m.app.Focus().Index()

	for i, c := range m.cards {
		x := ox + float64(i)*(style.CardWidth+style.CardGap)
		if x+style.CardWidth < m.app.ContentLeft() || x > style.ScreenWidth {
			continue
		}

		style.FillRoundedRect(dst, x, oy, style.CardWidth, style.CardHeight, 12, style.Surface)
		style.FillCircle(dst, x+20, oy+20, 6, statusColor(c.status))

		if focused && i == focusIdx {
			style.StrokeRect(dst, x-3, oy-3, style.CardWidth+6, style.CardHeight+6, 2, style.Primary)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+16, oy+style.CardHeight-48)
		op.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, c.host.Name, style.FontFace(), op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(x+16, oy+style.CardHeight-28)
		op.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(dst, c.status.String(), style.FontFace(), op)
	}
}

// drawTitle renders the shared screen heading.
func drawTitle(dst *ebiten.Image, left float64, title string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(left+style.ContentPadding, 48)
	op.ColorScale.ScaleWithColor(style.Text)
	text.Draw(dst, title, style.FontFace(), op)
}
