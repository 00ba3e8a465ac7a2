package strategy

import "squink-splash/internal/game"

// Base is the template strategy and the documented extension point:
// it walks to the first in-bounds neighbor in E, S, W, N order, no
// lookahead, fully deterministic. Embed or copy it to build your own.
type Base struct{}

func (Base) Name() string { return "base" }

func (Base) Decide(s *game.Snapshot, playerID string) (game.Coord, error) {
	pos, err := position(s, playerID)
	if err != nil {
		return game.Coord{}, err
	}
	neighbors := s.Neighbors(pos)
	if len(neighbors) == 0 {
		return game.Coord{}, ErrNoLegalMove
	}
	return neighbors[0], nil
}
