package gesture

import (
	"math"
	"testing"
)

func TestTapFiresAtDownCoordinates(t *testing.T) {
	s := NewState()

	s.Update(true, 100, 100)
	// Drift within the threshold, lift somewhere else
	s.Update(true, 110, 110)
	ev := s.Update(false, 110, 110)

	if !ev.Tap {
		t.Fatal("expected tap on release within threshold")
	}
	if ev.X != 100 || ev.Y != 100 {
		t.Errorf("tap fired at (%v, %v), want touch-down coordinates (100, 100)", ev.X, ev.Y)
	}
}

func TestThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		wantSwipe bool
	}{
		{"just under threshold", 24.99, false},
		{"exactly threshold", 25.0, false}, // strictly-greater comparison
		{"just over threshold", 25.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Update(true, 200, 200)
			// Move purely horizontally by the exact distance
			s.Update(true, 200+tc.distance, 200)
			ev := s.Update(false, 200+tc.distance, 200)

			if tc.wantSwipe && ev.Tap {
				t.Errorf("motion of %v px classified as tap, want swipe", tc.distance)
			}
			if !tc.wantSwipe && !ev.Tap {
				t.Errorf("motion of %v px classified as swipe, want tap", tc.distance)
			}
		})
	}
}

func TestDiagonalDistanceUsesEuclidean(t *testing.T) {
	s := NewState()
	s.Update(true, 0, 0)

	// 20 px on each axis = ~28.28 px total, over the threshold
	ev := s.Update(true, 20, 20)
	if !ev.Swipe {
		t.Errorf("diagonal motion of %.2f px not classified as swipe",
			math.Hypot(20, 20))
	}
}

func TestSwipeClassificationIsIrreversible(t *testing.T) {
	s := NewState()
	s.Update(true, 100, 100)
	s.Update(true, 160, 100) // well past threshold
	s.Update(true, 101, 100) // return almost to start

	if !s.IsSwipe() {
		t.Fatal("swipe classification reverted after finger returned to start")
	}

	ev := s.Update(false, 101, 100)
	if ev.Tap {
		t.Error("tap fired for a contact already classified as swipe")
	}
}

func TestDragDeltaDirection(t *testing.T) {
	s := NewState()
	s.Update(true, 300, 200)
	ev := s.Update(true, 250, 200) // drag left

	if !ev.Swipe {
		t.Fatal("expected swipe after 50 px motion")
	}
	if ev.DragDX != 50 {
		t.Errorf("DragDX = %v, want 50 (start minus current)", ev.DragDX)
	}
}

func TestStartTargetSurvivesDrift(t *testing.T) {
	s := NewState()

	ev := s.Update(true, 100, 100)
	if ev.Target != -1 {
		t.Fatalf("touch-down target = %d, want -1 before hit test", ev.Target)
	}
	s.SetStartTarget(3)

	s.Update(true, 108, 100)
	ev = s.Update(false, 108, 100)

	if !ev.Tap {
		t.Fatal("expected tap")
	}
	if ev.Target != 3 {
		t.Errorf("tap target = %d, want 3", ev.Target)
	}
}

func TestResetDiscardsContact(t *testing.T) {
	s := NewState()
	s.Update(true, 100, 100)
	s.SetStartTarget(5)
	s.Reset()

	if s.IsDown() {
		t.Error("contact still active after reset")
	}

	// A release after reset must not fire a tap
	ev := s.Update(false, 100, 100)
	if ev.Tap || ev.Phase == PhaseUp {
		t.Errorf("stale release fired event %+v after reset", ev)
	}
}

func TestTapFiresExactlyOnce(t *testing.T) {
	s := NewState()
	s.Update(true, 50, 50)
	first := s.Update(false, 50, 50)
	second := s.Update(false, 50, 50)

	if !first.Tap {
		t.Fatal("expected tap on first release frame")
	}
	if second.Tap {
		t.Error("tap fired a second time with no new contact")
	}
}
