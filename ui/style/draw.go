package style

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRect draws a solid axis-aligned rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillCircle draws a solid circle centered at (cx, cy).
func FillCircle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

// FillRoundedRect draws a solid rectangle with circular corners. The radius
// is clamped so opposing corners never overlap.
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if max := w / 2; r > max {
		r = max
	}
	if max := h / 2; r > max {
		r = max
	}
	if r <= 0 {
		FillRect(dst, x, y, w, h, c)
		return
	}
	FillRect(dst, x+r, y, w-2*r, h, c)
	FillRect(dst, x, y+r, r, h-2*r, c)
	FillRect(dst, x+w-r, y+r, r, h-2*r, c)
	FillCircle(dst, x+r, y+r, r, c)
	FillCircle(dst, x+w-r, y+r, r, c)
	FillCircle(dst, x+r, y+h-r, r, c)
	FillCircle(dst, x+w-r, y+h-r, r, c)
}

// StrokeRect draws a rectangle outline, used for focus rings.
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, true)
}
