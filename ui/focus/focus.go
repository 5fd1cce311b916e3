// Package focus tracks which logical UI region owns input each frame.
//
// Ownership is a bounded stack: the base entry follows the active screen,
// and each modal overlay pushes one entry on top. The top of the stack is
// the single source of truth for "who has input"; everything below is
// frozen until the overlay above it pops.
package focus

import (
	"log"

	"github.com/user-none/vitalink/ui/types"
)

// Zone is a logical input-owning region.
type Zone int

const (
	ZoneNavBar Zone = iota
	ZoneMainContent
	ZoneSettingsItems
	ZoneProfileCards
	ZoneControllerContent
	ZoneModal
)

// MaxStackDepth bounds modal nesting: the base entry plus up to three
// stacked overlays.
const MaxStackDepth = 4

// Entry is one stack level: a zone and the selection index within it.
// Index range semantics belong to the screen that owns the zone; the stack
// only guarantees it never goes negative.
type Entry struct {
	Zone  Zone
	Index int
}

// Stack is the focus stack. The zero value is not ready; use NewStack.
type Stack struct {
	entries [MaxStackDepth]Entry
	depth   int
}

// NewStack returns a stack with the base entry focused on main content.
func NewStack() *Stack {
	s := &Stack{}
	s.entries[0] = Entry{Zone: ZoneMainContent}
	return s
}

// Zone returns the top entry's zone.
func (s *Stack) Zone() Zone { return s.entries[s.depth].Zone }

// Index returns the top entry's index.
func (s *Stack) Index() int { return s.entries[s.depth].Index }

// SetZone changes the top entry's zone. Entries below are untouched.
func (s *Stack) SetZone(z Zone) { s.entries[s.depth].Zone = z }

// SetIndex changes the top entry's index, clamped to >= 0.
func (s *Stack) SetIndex(i int) {
	if i < 0 {
		i = 0
	}
	s.entries[s.depth].Index = i
}

// IsNavBar reports whether input is owned by the navigation sidebar.
func (s *Stack) IsNavBar() bool { return s.Zone() == ZoneNavBar }

// IsContent reports whether input is owned by screen content (neither the
// nav bar nor a modal).
func (s *Stack) IsContent() bool {
	z := s.Zone()
	return z != ZoneNavBar && z != ZoneModal
}

// PushModal gives input ownership to a new modal overlay. Pushing beyond
// capacity is refused and logged; state is unchanged so a buggy caller
// degrades to a stuck modal rather than a corrupted stack.
func (s *Stack) PushModal() bool {
	if s.depth >= MaxStackDepth-1 {
		log.Printf("focus: stack overflow, cannot push modal (depth=%d, max=%d)",
			s.depth, MaxStackDepth-1)
		return false
	}
	s.depth++
	s.entries[s.depth] = Entry{Zone: ZoneModal}
	return true
}

// PopModal returns input ownership to the entry below. Popping the base
// entry is refused and logged.
func (s *Stack) PopModal() bool {
	if s.depth <= 0 {
		log.Printf("focus: stack underflow, cannot pop modal (depth=%d)", s.depth)
		return false
	}
	s.depth--
	return true
}

// HasModal reports whether a modal currently owns input.
func (s *Stack) HasModal() bool {
	return s.depth > 0 && s.Zone() == ZoneModal
}

// Depth returns the current stack depth (0 = no modal).
func (s *Stack) Depth() int { return s.depth }

// ZoneForScreen returns the default content zone for a screen.
func ZoneForScreen(screen types.ScreenType) Zone {
	switch screen {
	case types.ScreenMain:
		return ZoneMainContent
	case types.ScreenSettings:
		return ZoneSettingsItems
	case types.ScreenProfile:
		return ZoneProfileCards
	case types.ScreenController:
		return ZoneControllerContent
	default:
		return ZoneMainContent
	}
}
