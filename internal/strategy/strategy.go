// Package strategy holds the pluggable decision logic a player uses to
// choose its move each round. A strategy only proposes a target cell
// from a read-only snapshot; the engine validates and applies it.
package strategy

import (
	"errors"
	"fmt"

	"squink-splash/internal/game"
)

// ErrNoLegalMove signals that a player has no legal move left. It is a
// terminal condition for that player, distinct from an engine
// rejection: drivers stop submitting for the player instead of failing
// the whole orchestration.
var ErrNoLegalMove = errors.New("no legal move available")

// Strategy decides the next move for one player. Decide must not
// assume it runs against a live game: it gets a snapshot and returns
// the cell to paint, or ErrNoLegalMove.
type Strategy interface {
	Name() string
	Decide(s *game.Snapshot, playerID string) (game.Coord, error)
}

// New constructs a built-in strategy by name. The seed only affects
// the random strategy.
func New(name string, seed int64) (Strategy, error) {
	switch name {
	case "base":
		return Base{}, nil
	case "random":
		return NewRandom(seed), nil
	case "corner":
		return NewCorner(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// position resolves the player's cursor from the snapshot.
func position(s *game.Snapshot, playerID string) (game.Coord, error) {
	p, ok := s.Player(playerID)
	if !ok {
		return game.Coord{}, fmt.Errorf("player %s not in snapshot", playerID)
	}
	return p.Pos, nil
}
