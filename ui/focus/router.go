package focus

import "github.com/user-none/vitalink/ui/types"

// Collapser is the sidebar surface the router needs: requesting a collapse
// as a side effect of focus moving into content.
type Collapser interface {
	// RequestCollapse begins a collapse; fromContent marks it as an
	// incidental content interaction (subject to the pinned override).
	RequestCollapse(fromContent bool)
}

// HandleZoneCrossing is the per-frame router entry point, called before any
// screen-specific input handling. rightPressed is this frame's edge-detected
// "move right" input. Returns true when the input was consumed here.
//
// A modal on the stack traps all input, so no crossing is possible while
// one is active. Content-to-nav-bar crossing is deliberately absent: the
// sidebar is reached via the pill or the global toggle, keeping LEFT free
// for in-content navigation.
func (s *Stack) HandleZoneCrossing(screen types.ScreenType, rightPressed bool, nav Collapser) bool {
	if s.HasModal() {
		return false
	}

	if rightPressed && s.IsNavBar() {
		s.SetZone(ZoneForScreen(screen))
		nav.RequestCollapse(true)
		return true
	}

	return false
}
