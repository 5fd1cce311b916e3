// Package nav implements the collapsible wave sidebar: a four-state timed
// state machine driving the sidebar width, the collapsed-state pill, the
// first-collapse toast, and the background wave phases.
//
// Animation progress is always recomputed from "now minus start" against a
// monotonic clock, never from frame counts, so dropped or delayed frames
// make progress jump forward instead of desynchronizing.
package nav

import (
	"math"
	"time"

	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// State is the sidebar state machine position.
type State int

const (
	StateExpanded State = iota
	StateCollapsing
	StateCollapsed
	StateExpanding
)

// waveLayer is one decorative wave with its own speed.
type waveLayer struct {
	phase float64
	speed float64 // radians per second
}

// Sidebar holds all navigation sidebar state. Created once at UI start in
// the collapsed state; mutated only through its methods, single-threaded.
type Sidebar struct {
	cfg *storage.Config

	state        State
	animStart    time.Time
	animProgress float64

	// Wave phases snapshotted at collapse and restored at expand, so the
	// decorative motion resumes where it left off.
	storedWaveBottom float64
	storedWaveTop    float64

	width       float64 // Current sidebar width, [0, style.NavWidth]
	pillWidth   float64
	pillOpacity float64 // [0, 1]

	toastShownOnce bool
	toastActive    bool
	toastStart     time.Time

	waveBottom     waveLayer
	waveTop        waveLayer
	waveLastUpdate time.Time

	selectedIcon int

	now func() time.Time
}

// NewSidebar returns a sidebar in the collapsed state with the pill fully
// visible.
func NewSidebar(cfg *storage.Config) *Sidebar {
	return &Sidebar{
		cfg:         cfg,
		state:       StateCollapsed,
		width:       0,
		pillWidth:   style.NavPillWidth,
		pillOpacity: 1,
		waveBottom:  waveLayer{speed: style.WaveSpeedBottom},
		waveTop:     waveLayer{speed: style.WaveSpeedTop},
		now:         time.Now,
	}
}

// RequestCollapse begins the collapse animation. It is a no-op unless the
// sidebar is fully expanded, which makes repeated triggers from multiple
// input sources in one frame harmless. When fromContent is true the
// request is an incidental content interaction and the "keep navigation
// pinned" setting suppresses it; the explicit toggle shortcut passes
// fromContent=false and always collapses.
func (s *Sidebar) RequestCollapse(fromContent bool) {
	if fromContent && s.cfg.KeepNavPinned {
		return
	}
	if s.state != StateExpanded {
		return
	}

	s.storedWaveBottom = s.waveBottom.phase
	s.storedWaveTop = s.waveTop.phase

	s.state = StateCollapsing
	s.animStart = s.now()
	s.animProgress = 0
}

// RequestExpand begins the expand animation. No-op unless fully collapsed.
func (s *Sidebar) RequestExpand() {
	if s.state != StateCollapsed {
		return
	}

	// Waves resume from where the collapse froze them.
	s.waveBottom.phase = s.storedWaveBottom
	s.waveTop.phase = s.storedWaveTop

	s.state = StateExpanding
	s.animStart = s.now()
	s.animProgress = 0
}

// Toggle collapses or expands depending on the current terminal state.
// Ignored while animating.
func (s *Sidebar) Toggle() {
	switch s.state {
	case StateExpanded:
		s.RequestCollapse(false)
	case StateCollapsed:
		s.RequestExpand()
	}
}

// ResetCollapsed snaps to the collapsed state without animating, used when
// entering the streaming screen. The toast one-shot is preserved.
func (s *Sidebar) ResetCollapsed() {
	s.state = StateCollapsed
	s.animProgress = 0
	s.width = 0
	s.pillWidth = style.NavPillWidth
	s.pillOpacity = 1
}

// Update advances the collapse animation, the toast, and (while expanded)
// the wave phases. Called once per frame.
func (s *Sidebar) Update() {
	s.updateCollapseAnimation()
	s.updateToast()
	if s.state == StateExpanded {
		s.updateWave()
	}
}

// easeInOutCubic maps linear progress to a smooth curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func (s *Sidebar) updateCollapseAnimation() {
	if s.state != StateCollapsing && s.state != StateExpanding {
		return
	}

	progress := float64(s.now().Sub(s.animStart)) / float64(style.NavCollapseDuration)
	if progress < 0 {
		// Clock anomaly; hold at the start rather than rendering garbage.
		progress = 0
	}

	if progress >= 1 {
		progress = 1
		// Commit the terminal state and snap interpolated values to their
		// exact bounds so no float drift survives the animation.
		if s.state == StateCollapsing {
			s.state = StateCollapsed
			s.width = 0
			s.pillWidth = style.NavPillWidth
			s.pillOpacity = 1
			s.showToastOnce()
		} else {
			s.state = StateExpanded
			s.width = style.NavWidth
			s.pillWidth = style.NavPillHeight
			s.pillOpacity = 0
			// Reset the wave delta timer here, not at request time, so the
			// first expanded frame doesn't integrate the animation duration.
			s.waveLastUpdate = s.now()
		}
		s.animProgress = 1
		return
	}

	s.animProgress = progress

	const split = style.NavPillPhaseSplit
	switch s.state {
	case StateCollapsing:
		// Sidebar withdraws on the eased curve; the pill stays invisible
		// until the final phase so both affordances never share the screen.
		s.width = style.NavWidth * (1 - easeInOutCubic(progress))
		if progress > split {
			pp := (progress - split) / (1 - split)
			s.pillWidth = style.NavPillHeight + (style.NavPillWidth-style.NavPillHeight)*pp
			s.pillOpacity = pp
		} else {
			s.pillWidth = style.NavPillHeight
			s.pillOpacity = 0
		}

	case StateExpanding:
		// Mirror image: pill contracts first, then the sidebar grows.
		if progress < 1-split {
			pp := 1 - progress/(1-split)
			s.pillWidth = style.NavPillHeight + (style.NavPillWidth-style.NavPillHeight)*pp
			s.pillOpacity = pp
			s.width = 0
		} else {
			s.pillWidth = style.NavPillHeight
			s.pillOpacity = 0
			s.width = style.NavWidth * (progress - (1 - split)) / split
		}
	}
}

// showToastOnce arms the collapse hint toast the first time a collapse
// completes in this process, and never again.
func (s *Sidebar) showToastOnce() {
	if s.toastShownOnce {
		return
	}
	s.toastShownOnce = true
	s.toastActive = true
	s.toastStart = s.now()
}

func (s *Sidebar) updateToast() {
	if !s.toastActive {
		return
	}
	total := style.NavToastFade + style.NavToastDuration + style.NavToastFade
	if s.now().Sub(s.toastStart) >= total {
		s.toastActive = false
	}
}

// toastOpacity returns the current toast alpha in [0, 1].
func (s *Sidebar) toastOpacity() float64 {
	if !s.toastActive {
		return 0
	}
	elapsed := s.now().Sub(s.toastStart)
	switch {
	case elapsed < style.NavToastFade:
		return float64(elapsed) / float64(style.NavToastFade)
	case elapsed > style.NavToastFade+style.NavToastDuration:
		fadeOut := elapsed - style.NavToastFade - style.NavToastDuration
		o := 1 - float64(fadeOut)/float64(style.NavToastFade)
		if o < 0 {
			o = 0
		}
		return o
	default:
		return 1
	}
}

func (s *Sidebar) updateWave() {
	now := s.now()
	if s.waveLastUpdate.IsZero() {
		s.waveLastUpdate = now
		return
	}

	delta := now.Sub(s.waveLastUpdate).Seconds()
	s.waveLastUpdate = now

	s.waveBottom.phase += s.waveBottom.speed * delta
	s.waveTop.phase += s.waveTop.speed * delta

	// Wrap with a long period so the motion stays seamless while the phase
	// stays inside float precision on long runs.
	const wrapPeriod = 1000 * 2 * math.Pi
	s.waveBottom.phase = math.Mod(s.waveBottom.phase, wrapPeriod)
	s.waveTop.phase = math.Mod(s.waveTop.phase, wrapPeriod)
}

// State queries

// IsExpanded reports whether the sidebar is fully expanded.
func (s *Sidebar) IsExpanded() bool { return s.state == StateExpanded }

// IsCollapsed reports whether the sidebar is fully collapsed.
func (s *Sidebar) IsCollapsed() bool { return s.state == StateCollapsed }

// IsAnimating reports whether a collapse or expand is in flight.
func (s *Sidebar) IsAnimating() bool {
	return s.state == StateCollapsing || s.state == StateExpanding
}

// CurrentWidth returns the sidebar width for content layout.
func (s *Sidebar) CurrentWidth() float64 { return s.width }

// PillOpacity returns the pill alpha for renderers.
func (s *Sidebar) PillOpacity() float64 { return s.pillOpacity }

// PillWidth returns the current pill width.
func (s *Sidebar) PillWidth() float64 { return s.pillWidth }

// State returns the raw state machine position.
func (s *Sidebar) State() State { return s.state }

// ToastActive reports whether the first-collapse toast is showing.
func (s *Sidebar) ToastActive() bool { return s.toastActive }

// Icon selection

// SelectedIcon returns the highlighted nav icon index.
func (s *Sidebar) SelectedIcon() int { return s.selectedIcon }

// SetSelectedIcon moves the highlight; out-of-range values are ignored.
func (s *Sidebar) SetSelectedIcon(index int) {
	if index >= 0 && index < style.NavIconCount {
		s.selectedIcon = index
	}
}

// MoveSelection steps the highlighted icon with wraparound.
func (s *Sidebar) MoveSelection(delta int) {
	n := style.NavIconCount
	s.selectedIcon = ((s.selectedIcon+delta)%n + n) % n
}

// ScreenForIcon maps a nav icon index to its screen.
func ScreenForIcon(index int) types.ScreenType {
	switch index {
	case 0:
		return types.ScreenMain
	case 1:
		return types.ScreenSettings
	case 2:
		return types.ScreenController
	case 3:
		return types.ScreenProfile
	default:
		return types.ScreenMain
	}
}

// Touch hit testing

// IconAt returns the nav icon index under the point, or -1. Valid only
// while the sidebar is visible.
func (s *Sidebar) IconAt(x, y float64) int {
	for i := 0; i < style.NavIconCount; i++ {
		cx := float64(style.NavIconX)
		cy := float64(style.NavIconStartY + i*style.NavIconSpacing)
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy <= 30*30 {
			return i
		}
	}
	return -1
}

// PillHit reports whether the point lands on the collapsed pill, with a
// small padding so it's easy to hit.
func (s *Sidebar) PillHit(x, y float64) bool {
	if s.state != StateCollapsed {
		return false
	}
	const pad = 8.0
	px, py := float64(style.NavPillX), float64(style.NavPillY)
	return x >= px-pad && x <= px+s.pillWidth+pad &&
		y >= py-pad && y <= py+float64(style.NavPillHeight)+pad
}
