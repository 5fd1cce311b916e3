// Package screens holds the per-screen UI logic. Each screen is
// immediate-mode: Update reads this frame's input and mutates state, Draw
// renders from that state. Screens never talk to each other directly; all
// cross-screen effects go through the App interface.
package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/vitalink/discovery"
	"github.com/user-none/vitalink/session"
	"github.com/user-none/vitalink/ui/focus"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/types"
)

// Screen is one full-screen UI page.
type Screen interface {
	// OnEnter runs when the screen becomes active, after the focus zone
	// has been set for it.
	OnEnter()
	// OnExit runs when the screen is left.
	OnExit()
	// Update handles one frame of input and state.
	Update()
	// Draw renders the screen content.
	Draw(dst *ebiten.Image)
}

// App is the surface screens use to reach shared state and trigger
// cross-screen effects.
type App interface {
	SwitchTo(screen types.ScreenType)
	Focus() *focus.Stack
	Input() *input.Manager
	Config() *storage.Config
	SaveConfig()
	Notify(message string)
	ShowError(title, message string)

	// ContentLeft is the x offset content starts at, following the
	// sidebar's current width.
	ContentLeft() float64

	Connect(host storage.RegisteredHost)
	Session() *session.Session
	DiscoveredHosts() []discovery.Host
}
