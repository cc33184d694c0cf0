package t2048

import (
	"errors"
	"fmt"
)

// Direction represents the edge a tilt slides tiles toward.
type Direction int

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
)

// Directions lists the four tilt directions.
var Directions = [...]Direction{DirNorth, DirEast, DirSouth, DirWest}

// ErrInvalidDirection is returned for a Direction outside the four sides.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// String returns the side name.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MoveOutcome is the result of one tilt.
type MoveOutcome struct {
	Changed    bool    // some tile moved or merged
	ScoreDelta int     // sum of the values created by merges
	Events     []Event // TileMoved and TileMerged, column by column
}

// Merges returns the number of merges the tilt performed.
func (o MoveOutcome) Merges() int {
	n := 0
	for _, e := range o.Events {
		if _, ok := e.(TileMerged); ok {
			n++
		}
	}
	return n
}

// lens views a board turned so that the tilt side is row 0.
// board maps canonical (row, col) to board coordinates, canonical is its inverse.
type lens struct {
	board     func(r, c int) Pos
	canonical func(row, col int) (int, int)
}

// orient returns the lens for tilting an n×n board toward dir.
func orient(dir Direction, n int) (lens, error) {
	last := n - 1
	switch dir {
	case DirNorth:
		return lens{
			board:     func(r, c int) Pos { return Pos{r, c} },
			canonical: func(row, col int) (int, int) { return row, col },
		}, nil
	case DirEast:
		return lens{
			board:     func(r, c int) Pos { return Pos{c, last - r} },
			canonical: func(row, col int) (int, int) { return last - col, row },
		}, nil
	case DirSouth:
		return lens{
			board:     func(r, c int) Pos { return Pos{last - r, last - c} },
			canonical: func(row, col int) (int, int) { return last - row, last - col },
		}, nil
	case DirWest:
		return lens{
			board:     func(r, c int) Pos { return Pos{last - c, r} },
			canonical: func(row, col int) (int, int) { return col, last - row },
		}, nil
	default:
		return lens{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}

// Tilt slides every tile toward dir, merging equal neighbours at most once
// per destination cell, and writes the result back to b.
func Tilt(b *Board, dir Direction) (MoveOutcome, error) {
	n := b.Size()
	l, err := orient(dir, n)
	if err != nil {
		return MoveOutcome{}, err
	}

	grid := make([][]int, n)
	for r := range n {
		grid[r] = make([]int, n)
	}
	for row := range n {
		for col := range n {
			r, c := l.canonical(row, col)
			grid[r][c] = b.Get(row, col)
		}
	}

	var out MoveOutcome
	for c := range n {
		collapseColumn(grid, c, l, &out)
	}

	// Columns never touch each other, so the snapshot is final here.
	for r := range n {
		for c := range n {
			p := l.board(r, c)
			b.put(p.Row*n+p.Col, grid[r][c])
		}
	}
	return out, nil
}

// collapseColumn slides column c of a canonical grid toward row 0.
// Row 0 is already against the edge and is never visited.
func collapseColumn(grid [][]int, c int, l lens, out *MoveOutcome) {
	merged := make([]bool, len(grid))
	for r := 1; r < len(grid); r++ {
		v := grid[r][c]
		if v == 0 {
			continue
		}

		x := r - 1
		for x >= 0 && grid[x][c] == 0 {
			x--
		}

		grid[r][c] = 0
		if x >= 0 && grid[x][c] == v && !merged[x] {
			merged[x] = true
			grid[x][c] = v * 2
			out.ScoreDelta += v * 2
			out.Changed = true
			out.Events = append(out.Events, TileMerged{
				OldValue: v,
				NewValue: v * 2,
				From:     l.board(r, c),
				To:       l.board(x, c),
			})
			continue
		}

		dest := x + 1
		grid[dest][c] = v
		if dest != r {
			out.Changed = true
		}
		out.Events = append(out.Events, TileMoved{
			Value: v,
			From:  l.board(r, c),
			To:    l.board(dest, c),
		})
	}
}

// Terminal reports whether the game on b has ended. A tile equal to winTile
// ends it at once; otherwise it ends only when the board is full and no two
// neighbouring tiles are equal.
func Terminal(b *Board, winTile int) (over, won bool) {
	n := b.Size()
	for r := range n {
		for c := range n {
			if v := b.Get(r, c); v != 0 && v == winTile {
				return true, true
			}
		}
	}

	if !b.IsFull() {
		return false, false
	}

	for r := range n {
		for c := range n {
			v := b.Get(r, c)
			if v == b.Get(r-1, c) || v == b.Get(r, c+1) ||
				v == b.Get(r+1, c) || v == b.Get(r, c-1) {
				return false, false
			}
		}
	}
	return true, false
}

// CanMove returns true if a tilt in some direction would change b.
func CanMove(b *Board) bool {
	for _, dir := range Directions {
		out, err := Tilt(b.Clone(), dir)
		if err == nil && out.Changed {
			return true
		}
	}
	return false
}
