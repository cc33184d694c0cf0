package t2048

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// rowBoard returns a 4x4 board with row as its first row.
func rowBoard(t *testing.T, row [4]int) *Board {
	t.Helper()
	return mustLoad(t, [][]int{
		row[:],
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

func firstRow(b *Board) [4]int {
	var row [4]int
	copy(row[:], b.Values()[0])
	return row
}

func TestTiltRow(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    [4]int
		expected [4]int
		score    int
		changed  bool
	}{
		{"simple merge", DirWest, [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", DirWest, [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4, true},
		{"double merge", DirWest, [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8, true},
		{"no merge possible", DirWest, [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0, false},
		{"slide with gap", DirWest, [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", DirWest, [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4, true},
		{"no change needed", DirWest, [4]int{4, 2, 0, 0}, [4]int{4, 2, 0, 0}, 0, false},
		{"empty row", DirWest, [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, 0, false},
		{"single tile", DirWest, [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0, true},
		{"merged tile does not absorb again", DirWest, [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, 8, true},
		{"four equal tiles", DirWest, [4]int{4, 4, 4, 4}, [4]int{8, 8, 0, 0}, 16, true},
		{"merge then slide", DirWest, [4]int{2, 2, 4, 0}, [4]int{4, 4, 0, 0}, 4, true},
		{"east merge at edge", DirEast, [4]int{2, 0, 2, 2}, [4]int{0, 0, 2, 4}, 4, true},
		{"east packed", DirEast, [4]int{0, 0, 2, 4}, [4]int{0, 0, 2, 4}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rowBoard(t, tt.input)
			out, err := Tilt(b, tt.dir)
			if err != nil {
				t.Fatalf("Tilt() failed: %v", err)
			}
			if got := firstRow(b); got != tt.expected {
				t.Errorf("Tilt(%v, %v) = %v, want %v", tt.input, tt.dir, got, tt.expected)
			}
			if out.ScoreDelta != tt.score {
				t.Errorf("Tilt(%v, %v) score = %d, want %d", tt.input, tt.dir, out.ScoreDelta, tt.score)
			}
			if out.Changed != tt.changed {
				t.Errorf("Tilt(%v, %v) changed = %v, want %v", tt.input, tt.dir, out.Changed, tt.changed)
			}
		})
	}
}

func TestTiltWestEvents(t *testing.T) {
	b := rowBoard(t, [4]int{2, 2, 4, 0})

	out, err := Tilt(b, DirWest)
	if err != nil {
		t.Fatalf("Tilt() failed: %v", err)
	}

	expected := []Event{
		TileMerged{OldValue: 2, NewValue: 4, From: Pos{0, 1}, To: Pos{0, 0}},
		TileMoved{Value: 4, From: Pos{0, 2}, To: Pos{0, 1}},
	}
	if !reflect.DeepEqual(out.Events, expected) {
		t.Errorf("events = %v, want %v", out.Events, expected)
	}
	if out.Merges() != 1 {
		t.Errorf("Merges() = %d, want 1", out.Merges())
	}
}

func TestTiltEastEvents(t *testing.T) {
	b := rowBoard(t, [4]int{2, 0, 2, 2})

	out, err := Tilt(b, DirEast)
	if err != nil {
		t.Fatalf("Tilt() failed: %v", err)
	}

	expected := []Event{
		TileMerged{OldValue: 2, NewValue: 4, From: Pos{0, 2}, To: Pos{0, 3}},
		TileMoved{Value: 2, From: Pos{0, 0}, To: Pos{0, 2}},
	}
	if !reflect.DeepEqual(out.Events, expected) {
		t.Errorf("events = %v, want %v", out.Events, expected)
	}
}

func TestTiltZeroDistanceMove(t *testing.T) {
	b := rowBoard(t, [4]int{4, 2, 0, 0})

	out, err := Tilt(b, DirWest)
	if err != nil {
		t.Fatalf("Tilt() failed: %v", err)
	}

	if out.Changed {
		t.Error("Tilt() should not report a change for packed tiles")
	}
	if len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(out.Events))
	}
	moved, ok := out.Events[0].(TileMoved)
	if !ok {
		t.Fatalf("event = %T, want TileMoved", out.Events[0])
	}
	if moved.From != moved.To || moved.Distance() != 0 {
		t.Errorf("zero-distance move = %v", moved)
	}
}

func TestTiltBoards(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    [][]int
		expected [][]int
		score    int
	}{
		{
			name: "west",
			dir:  DirWest,
			input: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			name: "east",
			dir:  DirEast,
			input: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			name: "north",
			dir:  DirNorth,
			input: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 20,
		},
		{
			name: "south",
			dir:  DirSouth,
			input: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustLoad(t, tt.input)
			out, err := Tilt(b, tt.dir)
			if err != nil {
				t.Fatalf("Tilt() failed: %v", err)
			}
			want := mustLoad(t, tt.expected)
			if !b.Equal(want) {
				t.Errorf("Tilt(%v): got\n%v\nwant\n%v", tt.dir, b, want)
			}
			if !out.Changed {
				t.Errorf("Tilt(%v) should indicate board changed", tt.dir)
			}
			if out.ScoreDelta != tt.score {
				t.Errorf("Tilt(%v) score = %d, want %d", tt.dir, out.ScoreDelta, tt.score)
			}
		})
	}
}

func TestTiltInvalidDirection(t *testing.T) {
	b := rowBoard(t, [4]int{2, 2, 0, 0})
	before := b.Clone()

	_, err := Tilt(b, Direction(7))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Tilt(7) error = %v, want ErrInvalidDirection", err)
	}
	if !b.Equal(before) {
		t.Error("Tilt() with an invalid direction changed the board")
	}
}

func TestOrientRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, dir := range Directions {
			l, err := orient(dir, n)
			if err != nil {
				t.Fatalf("orient(%v, %d) failed: %v", dir, n, err)
			}
			for r := range n {
				for c := range n {
					p := l.board(r, c)
					if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
						t.Fatalf("orient(%v, %d): (%d,%d) maps off the board to %v", dir, n, r, c, p)
					}
					if gr, gc := l.canonical(p.Row, p.Col); gr != r || gc != c {
						t.Errorf("orient(%v, %d): (%d,%d) -> %v -> (%d,%d)", dir, n, r, c, p, gr, gc)
					}
				}
			}
		}
	}
}

func TestOrientEdge(t *testing.T) {
	const n = 4
	for _, dir := range Directions {
		l, err := orient(dir, n)
		if err != nil {
			t.Fatalf("orient(%v) failed: %v", dir, err)
		}
		for c := range n {
			p := l.board(0, c)
			var onEdge bool
			switch dir {
			case DirNorth:
				onEdge = p.Row == 0
			case DirEast:
				onEdge = p.Col == n-1
			case DirSouth:
				onEdge = p.Row == n-1
			case DirWest:
				onEdge = p.Col == 0
			}
			if !onEdge {
				t.Errorf("orient(%v): canonical row 0 maps to %v, not the %v edge", dir, p, dir)
			}
		}
	}
}

// randomBoard fills a board with a mix of empty cells and small powers of two.
func randomBoard(rng *rand.Rand, n int) *Board {
	values := []int{0, 0, 0, 2, 2, 4, 4, 8, 16}
	b := NewBoard(n)
	for r := range n {
		for c := range n {
			_ = b.Set(r, c, values[rng.Intn(len(values))])
		}
	}
	return b
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

func TestTiltInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := range 300 {
		n := 2 + trial%4
		for _, dir := range Directions {
			b := randomBoard(rng, n)
			before := b.Clone()

			out, err := Tilt(b, dir)
			if err != nil {
				t.Fatalf("Tilt() failed: %v", err)
			}

			if b.Sum() != before.Sum() {
				t.Fatalf("Tilt(%v) changed the tile total from %d to %d:\n%v", dir, before.Sum(), b.Sum(), before)
			}

			created := 0
			for _, e := range out.Events {
				if m, ok := e.(TileMerged); ok {
					created += m.NewValue
				}
			}
			if out.ScoreDelta != created {
				t.Fatalf("Tilt(%v) score = %d, merges created %d", dir, out.ScoreDelta, created)
			}

			if b.Occupied() != before.Occupied()-out.Merges() {
				t.Fatalf("Tilt(%v) occupied = %d, want %d - %d", dir, b.Occupied(), before.Occupied(), out.Merges())
			}
			if b.Occupied() != countNonZero(b) {
				t.Fatalf("Tilt(%v) occupied = %d, board holds %d tiles", dir, b.Occupied(), countNonZero(b))
			}

			if !out.Changed && !b.Equal(before) {
				t.Fatalf("Tilt(%v) reported no change but the board changed:\n%v\n->\n%v", dir, before, b)
			}

			for _, row := range b.Values() {
				for _, v := range row {
					if v != 0 && !isPowerOfTwo(v) {
						t.Fatalf("Tilt(%v) produced %d:\n%v", dir, v, b)
					}
				}
			}
		}
	}
}

func TestTiltSettles(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for range 200 {
		for _, dir := range Directions {
			b := randomBoard(rng, 4)
			if _, err := Tilt(b, dir); err != nil {
				t.Fatalf("Tilt() failed: %v", err)
			}

			// A settled board only changes again through merges.
			again := b.Clone()
			out, err := Tilt(again, dir)
			if err != nil {
				t.Fatalf("Tilt() failed: %v", err)
			}
			if out.Merges() == 0 && (out.Changed || !again.Equal(b)) {
				t.Fatalf("second Tilt(%v) moved tiles without merging:\n%v\n->\n%v", dir, b, again)
			}

			// Repeated tilts reach a fixed point.
			settled := false
			for range b.Size() * b.Size() {
				out, err := Tilt(b, dir)
				if err != nil {
					t.Fatalf("Tilt() failed: %v", err)
				}
				if !out.Changed {
					settled = true
					break
				}
			}
			if !settled {
				t.Fatalf("Tilt(%v) never settled:\n%v", dir, b)
			}
		}
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name  string
		board [][]int
		win   int
		over  bool
		won   bool
	}{
		{
			name: "locked board",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 4, 2},
				{8, 16, 32, 64},
			},
			win:  2048,
			over: true,
		},
		{
			name: "full board with a merge",
			board: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 4, 2},
				{8, 16, 32, 64},
			},
			win: 2048,
		},
		{
			name: "vertical merge",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 4, 2},
				{8, 16, 32, 2},
			},
			win: 2048,
		},
		{
			name: "empty cell",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 2},
				{8, 16, 32, 64},
			},
			win: 2048,
		},
		{
			name: "win tile on open board",
			board: [][]int{
				{2048, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			win:  2048,
			over: true,
			won:  true,
		},
		{
			name: "win beats open merges",
			board: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 2},
				{8, 16, 32, 64},
			},
			win:  2048,
			over: true,
			won:  true,
		},
		{
			name: "small board small target",
			board: [][]int{
				{8, 0},
				{0, 0},
			},
			win:  8,
			over: true,
			won:  true,
		},
		{
			name: "unset win tile never matches empty cells",
			board: [][]int{
				{2, 0},
				{0, 0},
			},
			win: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustLoad(t, tt.board)
			over, won := Terminal(b, tt.win)
			if over != tt.over || won != tt.won {
				t.Errorf("Terminal() = (%v, %v), want (%v, %v)", over, won, tt.over, tt.won)
			}
		})
	}
}

func TestTerminalMatchesCanMove(t *testing.T) {
	locked := mustLoad(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 4, 2},
		{8, 16, 32, 64},
	})
	if CanMove(locked) {
		t.Error("CanMove() = true on a locked board")
	}
	if over, _ := Terminal(locked, 2048); !over {
		t.Error("Terminal() = false on a locked board")
	}

	rng := rand.New(rand.NewSource(3))
	for range 500 {
		b := randomBoard(rng, 3)
		if b.Occupied() == 0 {
			continue
		}
		over, _ := Terminal(b, 1<<20)
		if over == CanMove(b) {
			t.Fatalf("Terminal() = %v but CanMove() = %v:\n%v", over, CanMove(b), b)
		}
	}
}
