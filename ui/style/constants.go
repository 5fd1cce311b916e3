package style

import "time"

// Logical screen dimensions. All layout math happens in this space; the
// input layer scales native pointer coordinates into it.
const (
	ScreenWidth  = 960
	ScreenHeight = 544
)

// Navigation sidebar layout
const (
	NavWidth       = 130 // Expanded sidebar width
	NavIconSize    = 32
	NavIconX       = 50
	NavIconSpacing = 80
	NavIconStartY  = 152
	NavIconCount   = 4
)

// Collapsed-state pill affordance
const (
	NavPillWidth  = 140
	NavPillHeight = 44
	NavPillX      = 16
	NavPillY      = 16
)

// Collapse/expand animation timing. The pill and the sidebar never animate
// at the same time: collapsing runs the sidebar over progress [0, 0.71] and
// the pill over (0.71, 1]; expanding mirrors the split.
const (
	NavCollapseDuration = 280 * time.Millisecond
	NavPillPhaseSplit   = 0.71
)

// First-collapse toast timing
const (
	NavToastDuration = 2000 * time.Millisecond
	NavToastFade     = 300 * time.Millisecond
)

// Wave background animation (radians per second per layer)
const (
	WaveSpeedBottom = 0.7
	WaveSpeedTop    = 1.1
)

// Content area derived from the expanded sidebar
const (
	ContentAreaX   = NavWidth
	ContentStartY  = 96
	ContentPadding = 40
)

// Console cards on the main screen
const (
	CardWidth       = 200
	CardHeight      = 205
	CardGap         = 36
	CardsVisibleMax = 3
)

// Controller mapping diagram
const (
	DiagramMaxWidth = 720
	DiagramHeight   = 330
)

// Mapping-assignment popup
const (
	PopupVisibleOptions = 4
	PopupRowHeight      = 44
)

// Button repeat for held D-pad navigation in lists
const (
	NavInitialDelay  = 400 * time.Millisecond
	NavStartInterval = 200 * time.Millisecond
	NavMinInterval   = 25 * time.Millisecond
	NavAcceleration  = 20 * time.Millisecond
)
