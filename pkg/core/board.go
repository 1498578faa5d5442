package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds is returned for cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Board stores a rows×cols grid of cell states in row-major order.
type Board struct {
	rows, cols int
	data       []bool
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	return &Board{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns the grid dimensions with W as columns and H as rows.
func (b *Board) Size() Size { return Size{W: b.cols, H: b.rows} }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []bool { return b.data }

// Index returns the linear slice index for (row, col).
func (b *Board) Index(row, col int) int { return row*b.cols + col }

// Contains reports whether (row, col) lies inside the board.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.rows + b.rows) % b.rows
	col = (col%b.cols + b.cols) % b.cols
	return row, col
}

// Alive reports the state of (row, col). Coordinates outside the board are dead.
func (b *Board) Alive(row, col int) bool {
	if !b.Contains(row, col) {
		return false
	}
	return b.data[b.Index(row, col)]
}

// Set updates a single cell.
func (b *Board) Set(row, col int, alive bool) error {
	if !b.Contains(row, col) {
		return fmt.Errorf("cell (%d,%d) on %dx%d board: %w", row, col, b.rows, b.cols, ErrOutOfBounds)
	}
	b.data[b.Index(row, col)] = alive
	return nil
}

// Clear marks every cell dead.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = false
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, alive := range b.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	data := make([]bool, len(b.data))
	copy(data, b.data)
	return &Board{rows: b.rows, cols: b.cols, data: data}
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i, v := range b.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the board using '#' for live and '.' for dead cells, one
// line per row. Handy in test failure output.
func (b *Board) String() string {
	buf := make([]byte, 0, b.rows*(b.cols+1))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.data[r*b.cols+c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
