package life

import (
	"fmt"

	"life-rle/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
//
// A Life value is not safe for concurrent use; callers serialize access.
type Life struct {
	rows, cols int
	cur        *core.Board
	nxt        *core.Board
	generation int
	rng        *core.RNG
}

// New returns an all-dead Life simulation with the provided dimensions.
func New(rows, cols int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Randomize = false
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided options.
func NewWithConfig(cfg Config) (*Life, error) {
	cur, err := core.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	nxt, _ := core.NewBoard(cfg.Rows, cfg.Cols)
	l := &Life{
		rows:       cfg.Rows,
		cols:       cfg.Cols,
		cur:        cur,
		nxt:        nxt,
		generation: 1,
		rng:        core.NewRNG(cfg.Seed),
	}
	if cfg.Randomize {
		l.rng.FillBool(l.cur.Cells())
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cols, H: l.rows} }

// Rows returns the number of rows.
func (l *Life) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Life) Cols() int { return l.cols }

// Generation returns the current generation number, starting at 1.
func (l *Life) Generation() int { return l.generation }

// Cells exposes the current grid values read-only for renderers. The slice is
// replaced on every Step and must not be retained or written.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Seed reseeds the source used by Reset(true).
func (l *Life) Seed(seed int64) { l.rng = core.NewRNG(seed) }

// Reset clears or randomizes the board and restarts at generation 1.
func (l *Life) Reset(randomize bool) {
	if randomize {
		l.rng.FillBool(l.cur.Cells())
	} else {
		l.cur.Clear()
	}
	l.generation = 1
}

// Cell reports whether (row, col) is alive.
func (l *Life) Cell(row, col int) (bool, error) {
	if !l.cur.Contains(row, col) {
		return false, fmt.Errorf("life: cell (%d,%d) on %dx%d board: %w", row, col, l.rows, l.cols, core.ErrOutOfBounds)
	}
	return l.cur.Alive(row, col), nil
}

// SetCell sets a single cell without touching the generation counter.
func (l *Life) SetCell(row, col int, alive bool) error {
	if err := l.cur.Set(row, col, alive); err != nil {
		return fmt.Errorf("life: %w", err)
	}
	return nil
}

// Load overlays b onto the current board. Only the region both boards share
// is written; cells outside it keep their state. The generation restarts at 1.
func (l *Life) Load(b *core.Board) {
	rows := min(l.rows, b.Rows())
	cols := min(l.cols, b.Cols())
	dst := l.cur.Cells()
	src := b.Cells()
	for r := 0; r < rows; r++ {
		copy(dst[r*l.cols:r*l.cols+cols], src[r*b.Cols():r*b.Cols()+cols])
	}
	l.generation = 1
}

// Snapshot returns a copy of the current board that later steps do not affect.
func (l *Life) Snapshot() *core.Board { return l.cur.Clone() }

// NeighborCount returns the number of live cells among the eight wrapped
// neighbours of (row, col). On boards with fewer than three rows or columns
// several offsets wrap onto the same cell, including (row, col) itself, and
// each such offset is counted separately.
func (l *Life) NeighborCount(row, col int) (int, error) {
	if !l.cur.Contains(row, col) {
		return 0, fmt.Errorf("life: cell (%d,%d) on %dx%d board: %w", row, col, l.rows, l.cols, core.ErrOutOfBounds)
	}
	return l.neighbors(l.cur.Cells(), row, col), nil
}

func (l *Life) neighbors(cells []bool, row, col int) int {
	w, h := l.cols, l.rows
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := ((row+dy)%h + h) % h
			nx := ((col+dx)%w + w) % w
			if cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.cols; x++ {
			idx := y*l.cols + x
			neighbors := l.neighbors(cur, y, x)
			alive := cur[idx]
			nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
