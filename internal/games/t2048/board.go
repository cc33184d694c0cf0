package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OutOfRange is returned by Board.Get for coordinates outside the board.
// It never equals a tile value, so edge cells never look mergeable.
const OutOfRange = -1

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the board.
	ErrOutOfBounds = errors.New("t2048: coordinate out of bounds")
	// ErrNegativeValue is returned when a negative tile value is written.
	ErrNegativeValue = errors.New("t2048: negative tile value")
)

// Pos is a board coordinate. Row 0 is the north edge, column 0 the west edge.
type Pos struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a square grid of tile values, 0 meaning empty.
// Cells are stored in row-major order: index = row*size + col.
type Board struct {
	size     int
	cells    []int
	occupied int // number of non-zero cells
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{
		size:  size,
		cells: make([]int, size*size),
	}
}

// LoadBoard builds a board from rows of values. All rows must have the same
// length as the number of rows.
func LoadBoard(rows [][]int) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.New("t2048: empty board")
	}
	b := NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("t2048: row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, v := range row {
			if err := b.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Size returns the number of rows (and columns).
func (b *Board) Size() int {
	return b.size
}

// inBounds returns true if the coordinate is on the board.
func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Get returns the tile value at (row, col), or OutOfRange.
func (b *Board) Get(row, col int) int {
	if !b.inBounds(row, col) {
		return OutOfRange
	}
	return b.cells[row*b.size+col]
}

// Set writes a tile value and keeps the occupied count in step.
// The board is left untouched on error.
func (b *Board) Set(row, col, value int) error {
	if !b.inBounds(row, col) {
		return fmt.Errorf("t2048: set %v on %dx%d board: %w", Pos{row, col}, b.size, b.size, ErrOutOfBounds)
	}
	if value < 0 {
		return fmt.Errorf("t2048: set %v to %d: %w", Pos{row, col}, value, ErrNegativeValue)
	}
	b.put(row*b.size+col, value)
	return nil
}

// put writes a validated cell index.
func (b *Board) put(i, value int) {
	old := b.cells[i]
	switch {
	case old == 0 && value != 0:
		b.occupied++
	case old != 0 && value == 0:
		b.occupied--
	}
	b.cells[i] = value
}

// Clear empties every cell.
func (b *Board) Clear() {
	clear(b.cells)
	b.occupied = 0
}

// Occupied returns the number of tiles on the board.
func (b *Board) Occupied() int {
	return b.occupied
}

// IsFull returns true if every cell holds a tile.
func (b *Board) IsFull() bool {
	return b.occupied == len(b.cells)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:     b.size,
		cells:    cells,
		occupied: b.occupied,
	}
}

// Values returns a copy of the board as rows of values.
func (b *Board) Values() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as right-aligned rows, "." for empty cells.
func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	var sb strings.Builder
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b.cells[r*b.size+c]; v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		if r < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
