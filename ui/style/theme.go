package style

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Theme colors
var (
	Background    = color.NRGBA{0x14, 0x16, 0x1a, 0xff} // Charcoal base
	Surface       = color.NRGBA{0x2d, 0x32, 0x37, 0xff} // Card/pill background
	Primary       = color.NRGBA{0x34, 0x90, 0xff, 0xff} // PlayStation blue
	Text          = color.NRGBA{0xfa, 0xfa, 0xfa, 0xff} // Off-white
	TextSecondary = color.NRGBA{0xb4, 0xb4, 0xb4, 0xff}
	WaveTeal      = color.NRGBA{0x5a, 0x96, 0xa0, 0xff}
	StatusReady   = color.NRGBA{0x4c, 0xaf, 0x50, 0xff} // Available green
	StatusStandby = color.NRGBA{0xff, 0x98, 0x00, 0xff} // Standby orange
	StatusOffline = color.NRGBA{0xf4, 0x43, 0x36, 0xff} // Unreachable red
	Black         = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

// Wave layer alpha values (out of 255)
const (
	WaveAlphaBottom = 160
	WaveAlphaTop    = 100
)

// fontFace is the cached font face
var fontFace text.Face

// FontFace returns the font face to use for UI text
func FontFace() text.Face {
	if fontFace == nil {
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return fontFace
}

// WithAlpha returns c scaled to the given opacity in [0, 1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
