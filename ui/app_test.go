package ui

import (
	"testing"
	"time"

	"github.com/user-none/vitalink/ui/focus"
	"github.com/user-none/vitalink/ui/gesture"
	"github.com/user-none/vitalink/ui/input"
	"github.com/user-none/vitalink/ui/nav"
	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// newTestApp builds an App with just the pieces the routing logic touches.
// No screens are registered; tests stay on paths that never switch screens.
func newTestApp() *App {
	cfg := storage.DefaultConfig()
	return &App{
		config:       cfg,
		focusStack:   focus.NewStack(),
		inputManager: input.NewManager(),
		sidebar:      nav.NewSidebar(cfg),
		navGest:      gesture.NewState(),
		notification: NewNotification(),
		current:      types.ScreenMain,
	}
}

// pillTap is a touch-down landing inside the collapsed pill.
func pillTap() gesture.Event {
	return gesture.Event{
		Phase: gesture.PhaseDown,
		X:     style.NavPillX + 10,
		Y:     style.NavPillY + 10,
	}
}

func TestPillTapExpandsSidebar(t *testing.T) {
	a := newTestApp()

	a.routeNavGesture(pillTap())

	if a.sidebar.State() != nav.StateExpanding {
		t.Errorf("sidebar state = %d, want expanding after pill tap", a.sidebar.State())
	}
	if !a.focusStack.IsNavBar() {
		t.Error("focus did not move to the nav bar on pill tap")
	}
}

func TestNavTouchIgnoredWhileModalOpen(t *testing.T) {
	a := newTestApp()
	if !a.focusStack.PushModal() {
		t.Fatal("could not push modal")
	}

	a.routeNavGesture(pillTap())

	if !a.sidebar.IsCollapsed() {
		t.Error("pill tap expanded the sidebar while a modal owned input")
	}
	if !a.focusStack.HasModal() {
		t.Error("pill tap rewrote the modal focus entry")
	}
	if a.focusStack.Depth() != 1 {
		t.Errorf("focus depth = %d after ignored tap, want 1", a.focusStack.Depth())
	}
}

func TestNavTouchIgnoredWhileStreaming(t *testing.T) {
	a := newTestApp()
	a.current = types.ScreenStream

	a.routeNavGesture(pillTap())

	if !a.sidebar.IsCollapsed() {
		t.Error("pill tap expanded the sidebar during streaming")
	}
	if a.focusStack.IsNavBar() {
		t.Error("focus moved to the nav bar during streaming")
	}
}

func TestCollapsedNavFocusReopensSidebar(t *testing.T) {
	tests := []struct {
		name string
		keys navKeys
	}{
		{"cross", navKeys{cross: true}},
		{"left", navKeys{left: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp()
			a.focusStack.SetZone(focus.ZoneNavBar)

			a.applyNavFocus(tc.keys)

			if a.sidebar.State() != nav.StateExpanding {
				t.Errorf("sidebar state = %d, want expanding", a.sidebar.State())
			}
			if a.focusStack.Index() != a.sidebar.SelectedIcon() {
				t.Errorf("focus index = %d, want selected icon %d",
					a.focusStack.Index(), a.sidebar.SelectedIcon())
			}
		})
	}
}

func TestCollapsedNavFocusIgnoresUpDown(t *testing.T) {
	a := newTestApp()
	a.focusStack.SetZone(focus.ZoneNavBar)
	before := a.sidebar.SelectedIcon()

	a.applyNavFocus(navKeys{up: true})
	a.applyNavFocus(navKeys{down: true})

	if !a.sidebar.IsCollapsed() {
		t.Error("up/down changed sidebar state while collapsed")
	}
	if a.sidebar.SelectedIcon() != before {
		t.Errorf("up/down moved icon selection from %d to %d while collapsed",
			before, a.sidebar.SelectedIcon())
	}
}

func TestScreenshotFilename(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got := screenshotFilename(ts)
	want := "vitalink-20260314-092653.png"
	if got != want {
		t.Errorf("screenshotFilename = %q, want %q", got, want)
	}
}
