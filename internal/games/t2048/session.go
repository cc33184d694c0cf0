package t2048

// Phase is the step of the game loop a session is in.
type Phase string

const (
	PhaseSpawning      Phase = "spawning"
	PhaseCheckTerminal Phase = "check_terminal"
	PhaseAwaitingMove  Phase = "awaiting_move"
	PhaseApplying      Phase = "applying"
	PhaseTerminal      Phase = "terminal"
	PhaseQuit          Phase = "quit"
)

// Score tracks the running game and the best finished game of the session.
type Score struct {
	Current int
	Max     int // raised only when a game ends
}

// Session is the complete state of one player's session.
// It is owned by a single goroutine; Game methods take it explicitly.
type Session struct {
	Board *Board
	Score Score
	Phase Phase
	Won   bool // the last finished game reached the win tile
	Moves int  // accepted moves in the current game
	Games int  // games started in this session

	pending Direction // accepted move waiting for PhaseApplying
}

// Over returns true once the current game has reached a terminal state.
func (s *Session) Over() bool {
	return s.Phase == PhaseTerminal
}

// Snapshot captures the session state for determinism testing and reporting.
type Snapshot struct {
	Phase    Phase
	Games    int
	Moves    int
	Score    int
	MaxScore int
	Board    [][]int
	MaxTile  int
	Occupied int
	Won      bool
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:    s.Phase,
		Games:    s.Games,
		Moves:    s.Moves,
		Score:    s.Score.Current,
		MaxScore: s.Score.Max,
		Board:    s.Board.Values(),
		MaxTile:  s.Board.MaxTile(),
		Occupied: s.Board.Occupied(),
		Won:      s.Won,
	}
}
