package t2048

import "math/rand"

// Tile is a spawn proposal: a value and where to put it.
type Tile struct {
	Value int
	Row   int
	Col   int
}

// TileSource proposes tiles to spawn. Proposals may point at occupied cells;
// the game asks again until it gets an empty one.
type TileSource interface {
	NextTile() (Tile, error)
}

// TileSourceFunc adapts a plain function to the TileSource interface.
type TileSourceFunc func() (Tile, error)

// NextTile calls f().
func (f TileSourceFunc) NextTile() (Tile, error) {
	return f()
}

// RandomSource proposes uniformly random cells holding a 2, or a 4 with
// the configured probability.
type RandomSource struct {
	rng        *rand.Rand
	size       int
	spawn4Prob float64
}

// NewRandomSource creates a deterministic source for a size×size board.
func NewRandomSource(seed int64, size int, spawn4Prob float64) *RandomSource {
	return &RandomSource{
		rng:        rand.New(rand.NewSource(seed)),
		size:       size,
		spawn4Prob: spawn4Prob,
	}
}

// NextTile returns the next random proposal.
func (s *RandomSource) NextTile() (Tile, error) {
	value := 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}
	return Tile{
		Value: value,
		Row:   s.rng.Intn(s.size),
		Col:   s.rng.Intn(s.size),
	}, nil
}
