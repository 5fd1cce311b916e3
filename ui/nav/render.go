package nav

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/style"
)

var iconLabels = [style.NavIconCount]string{"Play", "Settings", "Mapping", "Profile"}

const toastMessage = "Tap the pill to reopen navigation"

// Draw renders the sidebar for the current animation frame. navFocused
// draws the selection ring around the highlighted icon.
func (s *Sidebar) Draw(dst *ebiten.Image, navFocused bool) {
	if s.width > 0 {
		s.drawPanel(dst, navFocused)
	}
	if s.pillOpacity > 0 {
		s.drawPill(dst)
	}
	if s.toastActive {
		s.drawToast(dst)
	}
}

func (s *Sidebar) drawPanel(dst *ebiten.Image, navFocused bool) {
	w := s.width

	// Dim the content behind the open sidebar so it reads as an overlay.
	if s.state == StateExpanded {
		style.FillRect(dst, w, 0, style.ScreenWidth-w, style.ScreenHeight,
			color.NRGBA{0, 0, 0, 96})
	}

	style.FillRect(dst, 0, 0, w, style.ScreenHeight, style.Surface)

	s.drawWave(dst, w, s.waveBottom.phase, 26, style.WithAlpha(style.WaveTeal, float64(style.WaveAlphaBottom)/255))
	s.drawWave(dst, w, s.waveTop.phase, 18, style.WithAlpha(style.WaveTeal, float64(style.WaveAlphaTop)/255))

	// Icons fade with the panel during animation; opacity tracks width so
	// they never float over empty background.
	iconOpacity := w / style.NavWidth

	for i := 0; i < style.NavIconCount; i++ {
		cx := float64(style.NavIconX)
		cy := float64(style.NavIconStartY + i*style.NavIconSpacing)
		r := float64(style.NavIconSize) / 2

		bg := style.Background
		if i == s.selectedIcon {
			bg = style.Primary
		}
		style.FillCircle(dst, cx, cy, r+6, style.WithAlpha(bg, iconOpacity))

		if navFocused && i == s.selectedIcon {
			style.StrokeRect(dst, cx-r-10, cy-r-10, 2*(r+10), 2*(r+10), 2,
				style.WithAlpha(style.Text, iconOpacity))
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(cx-r-4, cy+r+10)
		op.ColorScale.ScaleWithColor(style.WithAlpha(style.TextSecondary, iconOpacity))
		text.Draw(dst, iconLabels[i], style.FontFace(), op)
	}
}

// drawWave renders one sine layer along the bottom of the panel as vertical
// strips. Cheap enough at sidebar width to run every frame.
func (s *Sidebar) drawWave(dst *ebiten.Image, w, phase, amplitude float64, c color.NRGBA) {
	const baseY = style.ScreenHeight - 70
	for x := 0.0; x < w; x += 2 {
		y := baseY + amplitude*math.Sin(phase+x*0.045)
		style.FillRect(dst, x, y, 2, style.ScreenHeight-y, c)
	}
}

func (s *Sidebar) drawPill(dst *ebiten.Image) {
	x, y := float64(style.NavPillX), float64(style.NavPillY)
	h := float64(style.NavPillHeight)

	style.FillRoundedRect(dst, x, y, s.pillWidth, h, h/2,
		style.WithAlpha(style.Surface, s.pillOpacity))
	style.FillCircle(dst, x+h/2, y+h/2, 6, style.WithAlpha(style.Primary, s.pillOpacity))

	// The label only fits once the pill has mostly grown out.
	if s.pillWidth > style.NavPillWidth*0.8 {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+h, y+h/2-6)
		op.ColorScale.ScaleWithColor(style.WithAlpha(style.Text, s.pillOpacity))
		text.Draw(dst, "Menu", style.FontFace(), op)
	}
}

func (s *Sidebar) drawToast(dst *ebiten.Image) {
	opacity := s.toastOpacity()
	if opacity <= 0 {
		return
	}

	const w, h = 320.0, 40.0
	x := (style.ScreenWidth - w) / 2
	y := style.ScreenHeight - 90.0

	style.FillRoundedRect(dst, x, y, w, h, h/2, style.WithAlpha(style.Surface, opacity*0.9))

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+24, y+h/2-6)
	op.ColorScale.ScaleWithColor(style.WithAlpha(style.Text, opacity))
	text.Draw(dst, toastMessage, style.FontFace(), op)
}
