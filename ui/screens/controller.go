package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/selection"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
)

// outputOptions are the console outputs a touch zone can be mapped to.
var outputOptions = []string{
	"None", "Cross", "Circle", "Triangle", "Square",
	"L1", "R1", "L2", "R2", "L3", "R3",
	"Up", "Down", "Left", "Right",
}

// pad identifies which touch surface is being edited.
type pad int

const (
	padFront pad = iota
	padRear
)

func (p pad) String() string {
	if p == padRear {
		return "Rear Touchpad"
	}
	return "Front Touchscreen"
}

// ControllerScreen edits the touch-zone-to-button mapping. Zones are
// selected by dragging across the grid (or with the D-pad cursor), then an
// output is assigned from a modal popup.
type ControllerScreen struct {
	app App

	activePad pad
	front     *selection.Grid
	rear      *selection.Grid

	gest     *gesture.State
	dragging bool

	popup *mappingPopup
}

func NewControllerScreen(app App) *ControllerScreen {
	return &ControllerScreen{
		app:   app,
		front: selection.NewGrid(storage.FrontGridRows, storage.FrontGridCols),
		rear:  selection.NewGrid(storage.RearGridRows, storage.RearGridCols),
		gest:  gesture.NewState(),
	}
}

func (c *ControllerScreen) grid() *selection.Grid {
	if c.activePad == padRear {
		return c.rear
	}
	return c.front
}

func (c *ControllerScreen) mapping() []string {
	cfg := c.app.Config()
	if c.activePad == padRear {
		return cfg.Controller.RearGrid
	}
	return cfg.Controller.FrontGrid
}

func (c *ControllerScreen) OnEnter() {
	c.app.Focus().SetIndex(0)
}

func (c *ControllerScreen) OnExit() {
	c.gest.Reset()
	c.dragging = false
	c.front.Clear()
	c.rear.Clear()
	if c.popup != nil {
		c.closePopup()
	}
}

func (c *ControllerScreen) Update() {
	in := c.app.Input()
	f := c.app.Focus()

	if c.popup != nil {
		c.popup.update(in)
		return
	}

	c.updateGesture(in)

	if !f.IsContent() {
		return
	}

	if in.Pressed(input.BtnSquare) {
		c.switchPad()
	}

	c.updateCursor(in)

	if in.Pressed(input.BtnCross) {
		c.grid().Toggle(f.Index())
	}
	// Triangle confirms the selection and opens the assignment popup
	if in.Pressed(input.BtnTriangle) && c.grid().Count() > 0 {
		c.openPopup()
	}
	if in.Pressed(input.BtnCircle) && c.grid().Count() > 0 {
		c.grid().Clear()
	}
}

func (c *ControllerScreen) switchPad() {
	c.grid().Clear()
	if c.activePad == padFront {
		c.activePad = padRear
	} else {
		c.activePad = padFront
	}
	c.app.Focus().SetIndex(0)
}

// updateCursor moves the D-pad cell cursor with row/column wraparound.
func (c *ControllerScreen) updateCursor(in *input.Manager) {
	g := c.grid()
	f := c.app.Focus()
	row := f.Index() / g.Cols()
	col := f.Index() % g.Cols()

	if in.Pressed(input.BtnLeft) {
		col = (col - 1 + g.Cols()) % g.Cols()
	}
	if in.Pressed(input.BtnRight) {
		col = (col + 1) % g.Cols()
	}
	if in.Pressed(input.BtnUp) {
		row = (row - 1 + g.Rows()) % g.Rows()
	}
	if in.Pressed(input.BtnDown) {
		row = (row + 1) % g.Rows()
	}

	f.SetIndex(g.IndexFromRowCol(row, col))
}

// updateGesture runs the drag-selection path. Every contact sample visits
// the cell under the finger; the grid's own path rules decide whether that
// selects, backtracks, or does nothing.
func (c *ControllerScreen) updateGesture(in *input.Manager) {
	p := in.Pointer()
	ev := c.gest.Update(p.Down, p.X, p.Y)

	gx, gy, gw, gh := c.gridRect()
	g := c.grid()

	switch ev.Phase {
	case gesture.PhaseDown:
		if cell := g.CellFromPoint(gx, gy, gw, gh, ev.X, ev.Y); cell >= 0 {
			c.dragging = true
			g.Visit(cell)
			c.app.Focus().SetIndex(cell)
		}

	case gesture.PhaseMove:
		if c.dragging {
			if cell := g.CellFromPoint(gx, gy, gw, gh, ev.X, ev.Y); cell >= 0 {
				g.Visit(cell)
				c.app.Focus().SetIndex(cell)
			}
		}

	case gesture.PhaseUp:
		if c.dragging {
			c.dragging = false
			g.EndDrag()
			if g.Count() > 0 {
				c.openPopup()
			}
		}
	}
}

func (c *ControllerScreen) gridRect() (x, y, w, h float64) {
	x = c.app.ContentLeft() + style.ContentPadding
	w = style.ScreenWidth - x - style.ContentPadding
	if w > style.DiagramMaxWidth {
		w = style.DiagramMaxWidth
	}
	y = style.ContentStartY + 40
	h = style.DiagramHeight
	return x, y, w, h
}

// Popup lifecycle. Opening pushes a modal focus entry so screen navigation
// underneath freezes; closing pops it.

func (c *ControllerScreen) openPopup() {
	if !c.app.Focus().PushModal() {
		return
	}
	c.popup = newMappingPopup(c.app, c.grid().Count(), c.assign, c.closePopup)
}

func (c *ControllerScreen) closePopup() {
	c.popup = nil
	c.app.Focus().PopModal()
}

// assign writes the chosen output to every selected cell and persists.
func (c *ControllerScreen) assign(option string) {
	mapping := c.mapping()
	value := option
	if option == "None" {
		value = ""
	}
	for _, cell := range c.grid().Collect() {
		if cell < len(mapping) {
			mapping[cell] = value
		}
	}
	c.grid().Clear()
	c.app.SaveConfig()
	c.app.Notify(fmt.Sprintf("Mapped to %s", option))
}

func (c *ControllerScreen) Draw(dst *ebiten.Image) {
	drawTitle(dst, c.app.ContentLeft(), "Controller Mapping")

	op := &text.DrawOptions{}
	op.GeoM.Translate(c.app.ContentLeft()+style.ContentPadding, style.ContentStartY)
	op.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, c.activePad.String()+"  (Square switches pads)", style.FontFace(), op)

	c.drawGrid(dst)

	if c.popup != nil {
		c.popup.draw(dst)
	}
}

func (c *ControllerScreen) drawGrid(dst *ebiten.Image) {
	gx, gy, gw, gh := c.gridRect()
	g := c.grid()
	mapping := c.mapping()

	cw := gw / float64(g.Cols())
	ch := gh / float64(g.Rows())
	focused := c.app.Focus().IsContent()
	cursor := c.app.Focus().Index()

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			i := g.IndexFromRowCol(row, col)
			x := gx + float64(col)*cw
			y := gy + float64(row)*ch

			bg := style.Surface
			if g.IsSelected(i) {
				bg = style.Primary
			}
			style.FillRoundedRect(dst, x+2, y+2, cw-4, ch-4, 6, bg)

			if focused && i == cursor && c.popup == nil {
				style.StrokeRect(dst, x+1, y+1, cw-2, ch-2, 2, style.Text)
			}

			if i < len(mapping) && mapping[i] != "" {
				op := &text.DrawOptions{}
				op.GeoM.Translate(x+8, y+ch/2-6)
				op.ColorScale.ScaleWithColor(style.Text)
				text.Draw(dst, mapping[i], style.FontFace(), op)
			}
		}
	}
}

// mappingPopup is the modal output picker.
type mappingPopup struct {
	app      App
	cells    int
	selected int
	scroll   int
	onAssign func(option string)
	onClose  func()
	gest     *gesture.State
}

func newMappingPopup(app App, cells int, onAssign func(string), onClose func()) *mappingPopup {
	return &mappingPopup{
		app:      app,
		cells:    cells,
		onAssign: onAssign,
		onClose:  onClose,
		gest:     gesture.NewState(),
	}
}

func (p *mappingPopup) update(in *input.Manager) {
	if d := in.Direction(); d != 0 {
		next := p.selected + d
		if next >= 0 && next < len(outputOptions) {
			p.selected = next
			p.scrollIntoView()
		}
	}

	if in.Pressed(input.BtnCross) {
		option := outputOptions[p.selected]
		p.onClose()
		p.onAssign(option)
		return
	}
	if in.Pressed(input.BtnCircle) {
		p.onClose()
		return
	}

	ptr := in.Pointer()
	ev := p.gest.Update(ptr.Down, ptr.X, ptr.Y)
	if ev.Phase == gesture.PhaseDown {
		p.gest.SetStartTarget(p.rowAt(ev.X, ev.Y))
	}
	if ev.Phase == gesture.PhaseUp && ev.Tap {
		if ev.Target >= 0 {
			option := outputOptions[ev.Target]
			p.onClose()
			p.onAssign(option)
		} else if !p.inBounds(ev.X, ev.Y) {
			// Tapping outside dismisses
			p.onClose()
		}
	}
}

func (p *mappingPopup) scrollIntoView() {
	if p.selected < p.scroll {
		p.scroll = p.selected
	}
	if p.selected >= p.scroll+style.PopupVisibleOptions {
		p.scroll = p.selected - style.PopupVisibleOptions + 1
	}
}

func (p *mappingPopup) rect() (x, y, w, h float64) {
	w = 280
	h = float64(style.PopupVisibleOptions*style.PopupRowHeight + 56)
	x = (style.ScreenWidth - w) / 2
	y = (style.ScreenHeight - h) / 2
	return x, y, w, h
}

func (p *mappingPopup) inBounds(px, py float64) bool {
	x, y, w, h := p.rect()
	return input.PointInRect(px, py, x, y, w, h)
}

// rowAt returns the option index under the point, or -1.
func (p *mappingPopup) rowAt(px, py float64) int {
	x, y, w, _ := p.rect()
	for i := 0; i < style.PopupVisibleOptions; i++ {
		ry := y + 48 + float64(i*style.PopupRowHeight)
		if input.PointInRect(px, py, x, ry, w, style.PopupRowHeight) {
			idx := p.scroll + i
			if idx < len(outputOptions) {
				return idx
			}
		}
	}
	return -1
}

func (p *mappingPopup) draw(dst *ebiten.Image) {
	// Scrim over everything beneath the modal
	style.FillRect(dst, 0, 0, style.ScreenWidth, style.ScreenHeight,
		style.WithAlpha(style.Black, 0.6))

	x, y, w, h := p.rect()
	style.FillRoundedRect(dst, x, y, w, h, 10, style.Surface)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+16, y+14)
	op.ColorScale.ScaleWithColor(style.Text)
	text.Draw(dst, fmt.Sprintf("Assign %d zones to:", p.cells), style.FontFace(), op)

	for i := 0; i < style.PopupVisibleOptions; i++ {
		idx := p.scroll + i
		if idx >= len(outputOptions) {
			break
		}
		ry := y + 48 + float64(i*style.PopupRowHeight)

		if idx == p.selected {
			style.FillRoundedRect(dst, x+8, ry, w-16, style.PopupRowHeight-4, 6, style.Primary)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+24, ry+14)
		op.ColorScale.ScaleWithColor(style.Text)
		text.Draw(dst, outputOptions[idx], style.FontFace(), op)
	}
}
