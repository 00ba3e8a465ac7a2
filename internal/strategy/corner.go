package strategy

import "squink-splash/internal/game"

// Corner sweeps the board from the bottom-right corner toward the
// top-left. Every decision targets the bottom-right-most unclaimed
// cell and walks toward it one step at a time; since every accepted
// move paints its target, the walk itself claims ground. Steps prefer
// unclaimed cells, tie-broken horizontal before vertical, so the
// sequence is reproducible across runs on the same state.
type Corner struct{}

func NewCorner() Corner { return Corner{} }

func (Corner) Name() string { return "corner" }

func (c Corner) Decide(s *game.Snapshot, playerID string) (game.Coord, error) {
	pos, err := position(s, playerID)
	if err != nil {
		return game.Coord{}, err
	}
	neighbors := s.Neighbors(pos)
	if len(neighbors) == 0 {
		return game.Coord{}, ErrNoLegalMove
	}

	target, found := c.sweepTarget(s, pos)
	if !found {
		// Board fully claimed: keep repainting, taking enemy cells first.
		for _, n := range neighbors {
			if owner, _ := s.Owner(n); owner != playerID {
				return n, nil
			}
		}
		return neighbors[0], nil
	}
	if pos.Adjacent(target) {
		return target, nil
	}
	return c.stepToward(s, pos, neighbors, target), nil
}

// sweepTarget is the bottom-right-most unclaimed cell, scanning rows
// bottom-up and right-to-left. The cell under the cursor is skipped:
// a player can never paint the cell it stands on.
func (Corner) sweepTarget(s *game.Snapshot, pos game.Coord) (game.Coord, bool) {
	for y := s.Height - 1; y >= 0; y-- {
		for x := s.Width - 1; x >= 0; x-- {
			c := game.Coord{X: x, Y: y}
			if c == pos {
				continue
			}
			if s.Cells[y][x].Owner == "" {
				return c, true
			}
		}
	}
	return game.Coord{}, false
}

func (Corner) stepToward(s *game.Snapshot, pos game.Coord, neighbors []game.Coord, target game.Coord) game.Coord {
	best := neighbors[0]
	bestRank := rank(s, pos, neighbors[0], target)
	for _, n := range neighbors[1:] {
		if r := rank(s, pos, n, target); r < bestRank {
			best, bestRank = n, r
		}
	}
	return best
}

// rank orders candidate steps: closest to the target first, then
// unclaimed before claimed, then horizontal before vertical.
func rank(s *game.Snapshot, pos, n, target game.Coord) int {
	r := manhattan(n, target) * 4
	if owner, _ := s.Owner(n); owner != "" {
		r += 2
	}
	if n.X == pos.X {
		// vertical step
		r++
	}
	return r
}

func manhattan(a, b game.Coord) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
