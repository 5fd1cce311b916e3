package nav

import (
	"math"
	"testing"
	"time"

	"github.com/user-none/vitalink/ui/storage"
	"github.com/user-none/vitalink/ui/style"
	"github.com/user-none/vitalink/ui/types"
)

// fakeClock stands in for time.Now so animation progress is driven
// deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSidebar() (*Sidebar, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewSidebar(storage.DefaultConfig())
	s.now = clock.now
	return s, clock
}

// expand drives the sidebar to the fully expanded state.
func expand(t *testing.T, s *Sidebar, clock *fakeClock) {
	t.Helper()
	s.RequestExpand()
	clock.advance(style.NavCollapseDuration)
	s.Update()
	if !s.IsExpanded() {
		t.Fatal("sidebar did not reach expanded state")
	}
}

func TestInitialState(t *testing.T) {
	s, _ := newTestSidebar()

	if !s.IsCollapsed() {
		t.Error("new sidebar is not collapsed")
	}
	if s.CurrentWidth() != 0 {
		t.Errorf("width = %v, want 0", s.CurrentWidth())
	}
	if s.PillWidth() != style.NavPillWidth {
		t.Errorf("pill width = %v, want %v", s.PillWidth(), float64(style.NavPillWidth))
	}
	if s.PillOpacity() != 1 {
		t.Errorf("pill opacity = %v, want 1", s.PillOpacity())
	}
}

func TestRequestCollapseIgnoredUnlessExpanded(t *testing.T) {
	s, clock := newTestSidebar()

	// Collapsed: request must be a no-op
	s.RequestCollapse(false)
	if s.State() != StateCollapsed {
		t.Fatalf("state = %v after collapse request while collapsed", s.State())
	}

	// Mid-expand: request must be ignored, animation undisturbed
	s.RequestExpand()
	clock.advance(style.NavCollapseDuration / 2)
	s.Update()
	if s.State() != StateExpanding {
		t.Fatalf("state = %v, want StateExpanding", s.State())
	}
	start := s.animStart
	s.RequestCollapse(false)
	if s.State() != StateExpanding || s.animStart != start {
		t.Error("collapse request disturbed an in-flight expand")
	}
}

func TestRequestExpandIgnoredUnlessCollapsed(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)

	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration / 2)
	s.Update()
	start := s.animStart

	s.RequestExpand()
	if s.State() != StateCollapsing || s.animStart != start {
		t.Error("expand request disturbed an in-flight collapse")
	}
}

func TestDoubleRequestIsIdempotent(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)

	s.RequestCollapse(false)
	start := s.animStart
	clock.advance(50 * time.Millisecond)
	s.RequestCollapse(false)

	if s.animStart != start {
		t.Error("second collapse request restarted the animation")
	}
}

func TestCollapseTerminalSnap(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)

	s.RequestCollapse(false)

	// Just before the end nothing is exactly at its bound
	clock.advance(style.NavCollapseDuration - time.Millisecond)
	s.Update()
	if s.State() != StateCollapsing {
		t.Fatalf("state = %v one tick before completion", s.State())
	}

	// Overshooting the duration must still land exactly on the bounds
	clock.advance(100 * time.Millisecond)
	s.Update()

	if !s.IsCollapsed() {
		t.Fatal("sidebar did not reach collapsed state")
	}
	if s.CurrentWidth() != 0 {
		t.Errorf("width = %v at collapse end, want exactly 0", s.CurrentWidth())
	}
	if s.PillWidth() != style.NavPillWidth {
		t.Errorf("pill width = %v, want exactly %v", s.PillWidth(), float64(style.NavPillWidth))
	}
	if s.PillOpacity() != 1 {
		t.Errorf("pill opacity = %v, want exactly 1", s.PillOpacity())
	}
}

func TestExpandTerminalSnap(t *testing.T) {
	s, clock := newTestSidebar()
	s.RequestExpand()
	clock.advance(style.NavCollapseDuration + 500*time.Millisecond)
	s.Update()

	if !s.IsExpanded() {
		t.Fatal("sidebar did not reach expanded state")
	}
	if s.CurrentWidth() != style.NavWidth {
		t.Errorf("width = %v at expand end, want exactly %v", s.CurrentWidth(), float64(style.NavWidth))
	}
	if s.PillOpacity() != 0 {
		t.Errorf("pill opacity = %v at expand end, want 0", s.PillOpacity())
	}
}

func TestAnimationBoundsNeverExceeded(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)
	s.RequestCollapse(false)

	for i := 0; i < 60; i++ {
		clock.advance(style.NavCollapseDuration / 50)
		s.Update()

		if s.CurrentWidth() < 0 || s.CurrentWidth() > style.NavWidth {
			t.Fatalf("width %v escaped [0, %v]", s.CurrentWidth(), float64(style.NavWidth))
		}
		if s.PillOpacity() < 0 || s.PillOpacity() > 1 {
			t.Fatalf("pill opacity %v escaped [0, 1]", s.PillOpacity())
		}
	}
}

func TestPillStaysHiddenUntilFinalPhase(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)
	s.RequestCollapse(false)

	// At 50% progress the sidebar is mid-withdrawal and the pill must not
	// have started appearing.
	clock.advance(style.NavCollapseDuration / 2)
	s.Update()

	if s.PillOpacity() != 0 {
		t.Errorf("pill opacity = %v at 50%% collapse, want 0", s.PillOpacity())
	}
	if s.CurrentWidth() <= 0 || s.CurrentWidth() >= style.NavWidth {
		t.Errorf("width = %v at 50%% collapse, want strictly between bounds", s.CurrentWidth())
	}

	// At 90% progress the pill phase has begun
	clock.advance(2 * style.NavCollapseDuration / 5)
	s.Update()
	if s.PillOpacity() <= 0 {
		t.Errorf("pill opacity = %v at 90%% collapse, want > 0", s.PillOpacity())
	}
}

func TestExpandShrinksPillBeforeGrowingPanel(t *testing.T) {
	s, clock := newTestSidebar()

	s.RequestExpand()
	// 10% progress sits in the pill phase of the expand
	clock.advance(style.NavCollapseDuration / 10)
	s.Update()

	if s.CurrentWidth() != 0 {
		t.Errorf("width = %v during pill phase of expand, want 0", s.CurrentWidth())
	}
	if s.PillOpacity() >= 1 {
		t.Errorf("pill opacity = %v, want < 1 once shrinking", s.PillOpacity())
	}
}

func TestToastShowsExactlyOnce(t *testing.T) {
	s, clock := newTestSidebar()

	// First full collapse arms the toast
	expand(t, s, clock)
	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration)
	s.Update()

	if !s.ToastActive() {
		t.Fatal("toast not shown on first collapse")
	}

	// Let the toast run out
	clock.advance(style.NavToastFade + style.NavToastDuration + style.NavToastFade)
	s.Update()
	if s.ToastActive() {
		t.Fatal("toast still active after its lifetime")
	}

	// Second collapse cycle must not re-arm it
	expand(t, s, clock)
	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration)
	s.Update()

	if s.ToastActive() {
		t.Error("toast shown again on second collapse")
	}
}

func TestToastOpacityEnvelope(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)
	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration)
	s.Update()

	// Mid fade-in
	clock.advance(style.NavToastFade / 2)
	if o := s.toastOpacity(); o <= 0 || o >= 1 {
		t.Errorf("fade-in opacity = %v, want strictly between 0 and 1", o)
	}

	// Hold
	clock.advance(style.NavToastFade/2 + style.NavToastDuration/2)
	if o := s.toastOpacity(); o != 1 {
		t.Errorf("hold opacity = %v, want 1", o)
	}

	// Mid fade-out
	clock.advance(style.NavToastDuration/2 + style.NavToastFade/2)
	if o := s.toastOpacity(); o <= 0 || o >= 1 {
		t.Errorf("fade-out opacity = %v, want strictly between 0 and 1", o)
	}
}

func TestPinnedBlocksOnlyContentCollapse(t *testing.T) {
	cfg := storage.DefaultConfig()
	cfg.KeepNavPinned = true

	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewSidebar(cfg)
	s.now = clock.now
	expand(t, s, clock)

	// Incidental collapse from content interaction is suppressed
	s.RequestCollapse(true)
	if s.State() != StateExpanded {
		t.Error("pinned sidebar collapsed from a content interaction")
	}

	// The explicit toggle still works
	s.RequestCollapse(false)
	if s.State() != StateCollapsing {
		t.Error("pinned setting blocked an explicit collapse")
	}
}

func TestWavePhaseSurvivesCollapseCycle(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)

	// Run the waves for a while
	for i := 0; i < 30; i++ {
		clock.advance(16 * time.Millisecond)
		s.Update()
	}
	bottom, top := s.waveBottom.phase, s.waveTop.phase
	if bottom == 0 || top == 0 {
		t.Fatal("wave phases did not advance while expanded")
	}

	// Collapse, idle, expand: phases resume from where they stopped
	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration)
	s.Update()
	clock.advance(10 * time.Second)
	s.Update()

	s.RequestExpand()
	if s.waveBottom.phase != bottom || s.waveTop.phase != top {
		t.Errorf("wave phases (%v, %v) not restored to (%v, %v)",
			s.waveBottom.phase, s.waveTop.phase, bottom, top)
	}

	// The time spent collapsed must not be integrated into the next step
	clock.advance(style.NavCollapseDuration)
	s.Update()
	clock.advance(16 * time.Millisecond)
	s.Update()

	maxStep := style.WaveSpeedTop * 0.020
	if s.waveTop.phase-top > maxStep {
		t.Errorf("wave jumped by %v after expand, want at most %v", s.waveTop.phase-top, maxStep)
	}
}

func TestWavePhaseWraps(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)
	s.waveBottom.phase = 1000*2*math.Pi - 0.001

	clock.advance(time.Second)
	s.Update()

	if s.waveBottom.phase >= 1000*2*math.Pi {
		t.Errorf("phase %v did not wrap", s.waveBottom.phase)
	}
	if s.waveBottom.phase < 0 {
		t.Errorf("phase %v went negative", s.waveBottom.phase)
	}
}

func TestToggle(t *testing.T) {
	s, clock := newTestSidebar()

	s.Toggle()
	if s.State() != StateExpanding {
		t.Fatalf("state = %v after toggle from collapsed, want StateExpanding", s.State())
	}

	// Toggling mid-animation does nothing
	clock.advance(style.NavCollapseDuration / 2)
	s.Update()
	s.Toggle()
	if s.State() != StateExpanding {
		t.Fatalf("toggle mid-animation changed state to %v", s.State())
	}

	clock.advance(style.NavCollapseDuration)
	s.Update()
	s.Toggle()
	if s.State() != StateCollapsing {
		t.Fatalf("state = %v after toggle from expanded, want StateCollapsing", s.State())
	}
}

func TestResetCollapsedPreservesToastOneShot(t *testing.T) {
	s, clock := newTestSidebar()
	expand(t, s, clock)
	s.RequestCollapse(false)
	clock.advance(style.NavCollapseDuration)
	s.Update()
	clock.advance(style.NavToastFade + style.NavToastDuration + style.NavToastFade)
	s.Update()

	expand(t, s, clock)
	s.ResetCollapsed()

	if !s.IsCollapsed() || s.CurrentWidth() != 0 {
		t.Error("ResetCollapsed did not snap to collapsed")
	}
	if s.ToastActive() {
		t.Error("ResetCollapsed re-armed the toast")
	}
}

func TestMoveSelectionWraps(t *testing.T) {
	s, _ := newTestSidebar()

	s.MoveSelection(-1)
	if s.SelectedIcon() != style.NavIconCount-1 {
		t.Errorf("selection = %d after wrap up, want %d", s.SelectedIcon(), style.NavIconCount-1)
	}
	s.MoveSelection(1)
	if s.SelectedIcon() != 0 {
		t.Errorf("selection = %d after wrap down, want 0", s.SelectedIcon())
	}

	s.SetSelectedIcon(99)
	if s.SelectedIcon() != 0 {
		t.Errorf("out-of-range SetSelectedIcon changed selection to %d", s.SelectedIcon())
	}
}

func TestScreenForIcon(t *testing.T) {
	tests := []struct {
		icon int
		want types.ScreenType
	}{
		{0, types.ScreenMain},
		{1, types.ScreenSettings},
		{2, types.ScreenController},
		{3, types.ScreenProfile},
		{-1, types.ScreenMain},
	}
	for _, tc := range tests {
		if got := ScreenForIcon(tc.icon); got != tc.want {
			t.Errorf("ScreenForIcon(%d) = %v, want %v", tc.icon, got, tc.want)
		}
	}
}

func TestPillHitOnlyWhenCollapsed(t *testing.T) {
	s, clock := newTestSidebar()

	cx := float64(style.NavPillX) + style.NavPillWidth/2
	cy := float64(style.NavPillY) + style.NavPillHeight/2

	if !s.PillHit(cx, cy) {
		t.Error("pill center not hit while collapsed")
	}
	// Padding extends the hit area slightly
	if !s.PillHit(style.NavPillX-5, style.NavPillY-5) {
		t.Error("padded pill edge not hit")
	}
	if s.PillHit(cx, 200) {
		t.Error("point far below pill reported as hit")
	}

	expand(t, s, clock)
	if s.PillHit(cx, cy) {
		t.Error("pill hit while expanded")
	}
}

func TestIconAt(t *testing.T) {
	s, _ := newTestSidebar()

	for i := 0; i < style.NavIconCount; i++ {
		y := float64(style.NavIconStartY + i*style.NavIconSpacing)
		if got := s.IconAt(style.NavIconX, y); got != i {
			t.Errorf("IconAt(icon %d center) = %d", i, got)
		}
	}
	if got := s.IconAt(style.ScreenWidth/2, style.ScreenHeight/2); got != -1 {
		t.Errorf("IconAt(content area) = %d, want -1", got)
	}
}
