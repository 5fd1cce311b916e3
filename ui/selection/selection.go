// Package selection maintains multi-cell drag selections over the
// controller-mapping grids.
//
// A drag selection is built from the ordered path of cells the finger
// visits. Backtracking onto the previous path cell undoes the most recent
// cell only; crossing an already-selected cell elsewhere in the path is a
// no-op. This gives free-form multi-select with cheap one-step correction
// from a single continuous drag.
package selection

// Grid holds the selection state for one touch-zone grid. Capacities are
// fixed at construction; no allocation happens during a drag.
type Grid struct {
	rows, cols int
	selected   []bool
	count      int
	path       []int
}

// NewGrid returns an empty selection grid with rows*cols cells.
func NewGrid(rows, cols int) *Grid {
	n := rows * cols
	return &Grid{
		rows:     rows,
		cols:     cols,
		selected: make([]bool, n),
		path:     make([]int, 0, n),
	}
}

// Rows returns the grid row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid column count.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.selected) }

// Count returns the number of currently selected cells.
func (g *Grid) Count() int { return g.count }

// IsSelected reports whether the cell at index is selected.
func (g *Grid) IsSelected(index int) bool {
	if index < 0 || index >= len(g.selected) {
		return false
	}
	return g.selected[index]
}

// Path returns the current drag path in visit order. The returned slice is
// a view; callers must not retain it across mutations.
func (g *Grid) Path() []int { return g.path }

// Visit processes the cell under the finger for this frame. Order matters:
//
//  1. Same cell as last frame: no-op.
//  2. The cell before that (one-step backtrack): deselect and pop the most
//     recent cell.
//  3. Unselected cell: select and append to the path.
//  4. Selected cell reached by re-crossing the path: no-op.
func (g *Grid) Visit(index int) {
	if index < 0 || index >= len(g.selected) {
		return
	}

	n := len(g.path)
	if n > 0 && g.path[n-1] == index {
		return
	}

	if n > 1 && g.path[n-2] == index {
		last := g.path[n-1]
		g.remove(last)
		g.path = g.path[:n-1]
		return
	}

	if !g.selected[index] {
		g.add(index)
		if len(g.path) < cap(g.path) {
			g.path = append(g.path, index)
		}
	}
}

// EndDrag finishes the current drag, keeping the selection but forgetting
// the path so the next contact starts fresh.
func (g *Grid) EndDrag() {
	g.path = g.path[:0]
}

// Toggle flips a single cell outside of any drag (D-pad cursor select).
func (g *Grid) Toggle(index int) {
	if index < 0 || index >= len(g.selected) {
		return
	}
	if g.selected[index] {
		g.remove(index)
	} else {
		g.add(index)
	}
}

// Collect returns the selected cell indices in ascending order.
func (g *Grid) Collect() []int {
	out := make([]int, 0, g.count)
	for i, sel := range g.selected {
		if sel {
			out = append(out, i)
		}
	}
	return out
}

// Clear resets the selection and path. Called on screen enter, screen
// exit, and after a mapping is applied.
func (g *Grid) Clear() {
	for i := range g.selected {
		g.selected[i] = false
	}
	g.count = 0
	g.path = g.path[:0]
}

func (g *Grid) add(index int) {
	if !g.selected[index] {
		g.selected[index] = true
		g.count++
	}
}

func (g *Grid) remove(index int) {
	if g.selected[index] {
		g.selected[index] = false
		if g.count > 0 {
			g.count--
		}
	}
}

// IndexFromRowCol converts a (row, col) pair to a cell index.
func (g *Grid) IndexFromRowCol(row, col int) int {
	return row*g.cols + col
}

// CellFromPoint maps a point inside the given on-screen rect to a cell
// index, or -1 when the point is outside the rect. Points on the interior
// are clamped to valid rows and columns.
func (g *Grid) CellFromPoint(rx, ry, rw, rh, px, py float64) int {
	if rw <= 0 || rh <= 0 {
		return -1
	}
	if px < rx || px >= rx+rw || py < ry || py >= ry+rh {
		return -1
	}

	col := int((px - rx) / rw * float64(g.cols))
	row := int((py - ry) / rh * float64(g.rows))
	if col < 0 {
		col = 0
	}
	if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return g.IndexFromRowCol(row, col)
}
