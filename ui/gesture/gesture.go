// Package gesture classifies raw touch samples into taps and swipes.
//
// Classification is two-phase: motion during a contact can irreversibly
// promote it to a swipe, but nothing fires until the finger lifts. A tap
// fires exactly once, at the touch-down coordinates, so a card activation
// never triggers on a contact the user meant as a scroll.
package gesture

// TapSwipeThreshold is the motion distance in logical pixels beyond which a
// contact stops being a tap. Comparison is done on squared distance.
const TapSwipeThreshold = 25.0

// Phase describes what happened to the touch contact this frame.
type Phase int

const (
	PhaseNone Phase = iota // No contact and none ended
	PhaseDown              // Finger just made contact
	PhaseMove              // Finger held down (may be swiping)
	PhaseUp                // Finger just lifted
)

// Event is the per-frame classifier output.
type Event struct {
	Phase Phase
	X, Y  float64 // Current position; for a tap, the touch-down position

	Tap    bool    // Contact ended without exceeding the threshold
	Swipe  bool    // Contact has been classified as a swipe
	DragDX float64 // startX - currentX while swiping (positive = scroll right)

	Target int // Caller-recorded hit at touch-down, -1 if none
}

// State tracks one touch contact across frames. It is transient: reset at
// touch-down, finalized at touch-up. Only the active screen polls it.
type State struct {
	down        bool
	swipe       bool
	startX      float64
	startY      float64
	startTarget int
}

// NewState returns a classifier with no active contact.
func NewState() *State {
	return &State{startTarget: -1}
}

// IsDown reports whether a contact is currently active.
func (s *State) IsDown() bool { return s.down }

// IsSwipe reports whether the active contact has been classified as a swipe.
func (s *State) IsSwipe() bool { return s.swipe }

// SetStartTarget records the hit-test result at touch-down so the eventual
// tap can activate it even if the finger drifts within the threshold.
func (s *State) SetStartTarget(target int) { s.startTarget = target }

// StartTarget returns the recorded touch-down hit, -1 if none.
func (s *State) StartTarget() int { return s.startTarget }

// Reset discards the active contact without firing anything. Used when a
// touch block engages mid-contact.
func (s *State) Reset() {
	s.down = false
	s.swipe = false
	s.startTarget = -1
}

// Update feeds one frame's raw touch sample and returns the classified
// event. Must be called exactly once per frame by the active screen.
func (s *State) Update(down bool, x, y float64) Event {
	switch {
	case down && !s.down:
		// Touch-down: begin a fresh contact
		s.down = true
		s.swipe = false
		s.startX = x
		s.startY = y
		s.startTarget = -1
		return Event{Phase: PhaseDown, X: x, Y: y, Target: -1}

	case down && s.down:
		if !s.swipe {
			dx := x - s.startX
			dy := y - s.startY
			if dx*dx+dy*dy > TapSwipeThreshold*TapSwipeThreshold {
				s.swipe = true // irreversible for this contact
			}
		}
		ev := Event{Phase: PhaseMove, X: x, Y: y, Target: s.startTarget}
		if s.swipe {
			ev.Swipe = true
			ev.DragDX = s.startX - x
		}
		return ev

	case !down && s.down:
		wasSwipe := s.swipe
		startX, startY := s.startX, s.startY
		target := s.startTarget
		s.Reset()
		if wasSwipe {
			return Event{Phase: PhaseUp, X: x, Y: y, Swipe: true, Target: -1}
		}
		// Tap fires at the touch-down coordinates, not touch-up
		return Event{Phase: PhaseUp, X: startX, Y: startY, Tap: true, Target: target}

	default:
		return Event{Phase: PhaseNone, Target: -1}
	}
}
