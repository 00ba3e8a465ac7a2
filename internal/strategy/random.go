package strategy

import (
	"math/rand"

	"squink-splash/internal/game"
)

// Random selects uniformly among the legal adjacent moves.
// Out-of-bounds candidates are filtered before sampling, so a single
// remaining candidate is always chosen. The rand source is injected so
// runs are reproducible under a fixed seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) Name() string { return "random" }

func (r *Random) Decide(s *game.Snapshot, playerID string) (game.Coord, error) {
	pos, err := position(s, playerID)
	if err != nil {
		return game.Coord{}, err
	}
	candidates := s.Neighbors(pos)
	if len(candidates) == 0 {
		return game.Coord{}, ErrNoLegalMove
	}
	return candidates[r.rng.Intn(len(candidates))], nil
}
