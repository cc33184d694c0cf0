package t2048

// Event is something the presentation layer needs to show.
// The set is closed: TilePlaced, TileMoved, TileMerged, ScoreUpdated, GameOver.
type Event interface {
	gameEvent()
}

// TilePlaced is emitted when a new tile is spawned.
type TilePlaced struct {
	Value int
	At    Pos
}

func (TilePlaced) gameEvent() {}

// TileMoved is emitted for every tile a tilt visits without merging.
// From may equal To when the tile was already in place.
type TileMoved struct {
	Value int
	From  Pos
	To    Pos
}

func (TileMoved) gameEvent() {}

// Distance returns how many cells the tile travelled.
func (e TileMoved) Distance() int {
	return abs(e.To.Row-e.From.Row) + abs(e.To.Col-e.From.Col)
}

// TileMerged is emitted when the tile at From joins the equal tile at To.
type TileMerged struct {
	OldValue int
	NewValue int
	From     Pos
	To       Pos
}

func (TileMerged) gameEvent() {}

// ScoreUpdated carries the current game score and the session best.
type ScoreUpdated struct {
	Current int
	Max     int
}

func (ScoreUpdated) gameEvent() {}

// GameOver is emitted once when a game reaches a terminal state.
type GameOver struct {
	Won bool // the win tile was reached, as opposed to a locked board
}

func (GameOver) gameEvent() {}

// Observer receives events in the order they happen.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
