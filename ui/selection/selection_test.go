package selection

import (
	"reflect"
	"testing"
)

func TestVisitSelectsAndAppends(t *testing.T) {
	g := NewGrid(3, 6)

	g.Visit(3)
	g.Visit(7)
	g.Visit(12)

	if g.Count() != 3 {
		t.Fatalf("count = %d, want 3", g.Count())
	}
	if want := []int{3, 7, 12}; !reflect.DeepEqual(g.Path(), want) {
		t.Errorf("path = %v, want %v", g.Path(), want)
	}
}

func TestVisitSameCellIsNoop(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(4)
	g.Visit(4)
	g.Visit(4)

	if g.Count() != 1 {
		t.Errorf("count = %d, want 1 after resting on the same cell", g.Count())
	}
	if len(g.Path()) != 1 {
		t.Errorf("path length = %d, want 1", len(g.Path()))
	}
}

func TestBacktrackDeselectsMostRecent(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(3)
	g.Visit(7)
	g.Visit(12)

	// Backtrack onto the second-to-last cell undoes only the last cell
	g.Visit(7)

	if g.IsSelected(12) {
		t.Error("cell 12 still selected after backtrack")
	}
	if !g.IsSelected(3) || !g.IsSelected(7) {
		t.Error("earlier path cells were deselected by backtrack")
	}
	if want := []int{3, 7}; !reflect.DeepEqual(g.Path(), want) {
		t.Fatalf("path = %v, want %v", g.Path(), want)
	}

	// Immediately revisiting the undone cell re-selects it
	g.Visit(12)
	if !g.IsSelected(12) {
		t.Error("cell 12 not re-selected after revisit")
	}
	if want := []int{3, 7, 12}; !reflect.DeepEqual(g.Path(), want) {
		t.Errorf("path = %v, want %v", g.Path(), want)
	}
}

func TestRevisitDeepInPathIsNoop(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(3)
	g.Visit(7)
	g.Visit(12)

	// Cell 3 is selected but not the second-to-last entry: crossing it
	// again must not deselect anything or extend the path.
	g.Visit(3)

	if g.Count() != 3 {
		t.Errorf("count = %d, want 3", g.Count())
	}
	if want := []int{3, 7, 12}; !reflect.DeepEqual(g.Path(), want) {
		t.Errorf("path = %v, want %v", g.Path(), want)
	}
}

func TestBacktrackNeedsTwoEntries(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(5)

	// Path has a single entry; there is nothing to backtrack onto.
	g.Visit(5)
	if !g.IsSelected(5) {
		t.Error("single-cell path deselected by repeated visit")
	}
}

func TestCollectAscending(t *testing.T) {
	g := NewGrid(3, 6)
	// Visit out of order
	for _, i := range []int{12, 3, 17, 7} {
		g.Visit(i)
	}

	if want := []int{3, 7, 12, 17}; !reflect.DeepEqual(g.Collect(), want) {
		t.Errorf("Collect() = %v, want %v", g.Collect(), want)
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(1)
	g.Visit(2)
	g.Clear()

	if g.Count() != 0 {
		t.Errorf("count = %d after clear, want 0", g.Count())
	}
	if len(g.Path()) != 0 {
		t.Errorf("path not emptied by clear: %v", g.Path())
	}
	if len(g.Collect()) != 0 {
		t.Errorf("Collect() = %v after clear, want empty", g.Collect())
	}
}

func TestEndDragKeepsSelection(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(2)
	g.Visit(8)
	g.EndDrag()

	if g.Count() != 2 {
		t.Errorf("count = %d after EndDrag, want 2", g.Count())
	}
	if len(g.Path()) != 0 {
		t.Errorf("path survived EndDrag: %v", g.Path())
	}

	// A new drag over an old cell must not backtrack into the dead path
	g.Visit(8)
	if !g.IsSelected(2) || !g.IsSelected(8) {
		t.Error("new drag corrupted selection from previous drag")
	}
}

func TestVisitOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(3, 6)
	g.Visit(-1)
	g.Visit(18)
	g.Visit(1000)

	if g.Count() != 0 {
		t.Errorf("out-of-range visit changed selection: count = %d", g.Count())
	}
}

func TestToggle(t *testing.T) {
	g := NewGrid(3, 6)
	g.Toggle(4)
	if !g.IsSelected(4) {
		t.Fatal("toggle did not select")
	}
	g.Toggle(4)
	if g.IsSelected(4) {
		t.Fatal("toggle did not deselect")
	}
	if g.Count() != 0 {
		t.Errorf("count = %d, want 0", g.Count())
	}
}

func TestCellFromPoint(t *testing.T) {
	g := NewGrid(3, 6)

	tests := []struct {
		name   string
		px, py float64
		want   int
	}{
		{"top-left corner", 100, 100, 0},
		{"center of cell (1,2)", 100 + 2.5*100, 100 + 1.5*100, 8},
		{"bottom-right interior", 699, 399, 17},
		{"left of rect", 99, 200, -1},
		{"right edge exclusive", 700, 200, -1},
		{"above rect", 300, 99, -1},
		{"below rect", 300, 400, -1},
	}

	// 600x300 rect at (100, 100): 100px cells
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.CellFromPoint(100, 100, 600, 300, tc.px, tc.py)
			if got != tc.want {
				t.Errorf("CellFromPoint(%v, %v) = %d, want %d", tc.px, tc.py, got, tc.want)
			}
		})
	}
}
