package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/vitalink/ui/style"
)

// Notification displays temporary messages on screen
type Notification struct {
	message   string
	startTime time.Time
	duration  time.Duration
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.message = ""
}

// Draw renders the notification
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	textWidth, textHeight := text.Measure(n.message, style.FontFace(), 0)

	padding := 12.0
	bgWidth := textWidth + padding*2
	bgHeight := textHeight + padding*2

	// Bottom-right, 8px margin
	margin := 8.0
	bgX := style.ScreenWidth - bgWidth - margin
	bgY := style.ScreenHeight - bgHeight - margin

	style.FillRoundedRect(screen, bgX, bgY, bgWidth, bgHeight, 6,
		style.WithAlpha(style.Black, 0.6))

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(bgX+padding, bgY+padding)
	opts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, n.message, style.FontFace(), opts)
}
