package strategy

import (
	"errors"
	"reflect"
	"testing"

	"squink-splash/internal/game"
)

// snap builds an observable state by hand; strategies must work
// without a live engine behind them.
func snap(w, h int, players ...game.Player) *game.Snapshot {
	cells := make([][]game.Cell, h)
	for y := range cells {
		cells[y] = make([]game.Cell, w)
	}
	return &game.Snapshot{
		Phase:   game.Active,
		Width:   w,
		Height:  h,
		Cells:   cells,
		Players: players,
	}
}

func player(id string, x, y int) game.Player {
	return game.Player{ID: id, Name: id, Pos: game.Coord{X: x, Y: y}}
}

func TestFactory(t *testing.T) {
	for _, name := range []string{"base", "random", "corner"} {
		st, err := New(name, 1)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if st.Name() != name {
			t.Fatalf("expected name %q, got %q", name, st.Name())
		}
	}
	if _, err := New("psychic", 1); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestBaseIsDeterministic(t *testing.T) {
	s := snap(3, 3, player("p1", 1, 1))
	for i := 0; i < 5; i++ {
		got, err := Base{}.Decide(s, "p1")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if got != (game.Coord{X: 2, Y: 1}) {
			t.Fatalf("expected east step (2,1), got %v", got)
		}
	}
}

func TestBaseNoLegalMoveOnSingleCell(t *testing.T) {
	s := snap(1, 1, player("p1", 0, 0))
	if _, err := (Base{}).Decide(s, "p1"); !errors.Is(err, ErrNoLegalMove) {
		t.Fatalf("expected ErrNoLegalMove, got %v", err)
	}
}

func TestRandomOnlyProposesInBoundsNeighbors(t *testing.T) {
	s := snap(3, 3, player("p1", 0, 0))
	r := NewRandom(42)
	pos := game.Coord{X: 0, Y: 0}
	for i := 0; i < 200; i++ {
		got, err := r.Decide(s, "p1")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if !s.InBounds(got) {
			t.Fatalf("out-of-bounds proposal %v", got)
		}
		if !pos.Adjacent(got) {
			t.Fatalf("non-adjacent proposal %v", got)
		}
	}
}

func TestRandomDegeneratesToSingleLegalMove(t *testing.T) {
	// On a 1x2 board the only neighbor of (0,0) is (0,1).
	s := snap(1, 2, player("p1", 0, 0))
	r := NewRandom(7)
	for i := 0; i < 50; i++ {
		got, err := r.Decide(s, "p1")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if got != (game.Coord{X: 0, Y: 1}) {
			t.Fatalf("expected forced move (0,1), got %v", got)
		}
	}
}

func TestRandomReproducibleUnderSeed(t *testing.T) {
	s := snap(4, 4, player("p1", 2, 2))
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 100; i++ {
		ma, _ := a.Decide(s, "p1")
		mb, _ := b.Decide(s, "p1")
		if ma != mb {
			t.Fatalf("same seed diverged at step %d: %v vs %v", i, ma, mb)
		}
	}
}

func TestRandomNoLegalMove(t *testing.T) {
	s := snap(1, 1, player("p1", 0, 0))
	if _, err := NewRandom(1).Decide(s, "p1"); !errors.Is(err, ErrNoLegalMove) {
		t.Fatalf("expected ErrNoLegalMove, got %v", err)
	}
}

// runCorner simulates the engine's accept-and-claim loop: each
// decision paints its target and moves the cursor there.
func runCorner(t *testing.T, s *game.Snapshot, id string, steps int) []game.Coord {
	t.Helper()
	c := NewCorner()
	var claims []game.Coord
	for i := 0; i < steps; i++ {
		got, err := c.Decide(s, id)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !s.InBounds(got) {
			t.Fatalf("step %d: out of bounds %v", i, got)
		}
		s.Cells[got.Y][got.X].Owner = id
		for j := range s.Players {
			if s.Players[j].ID == id {
				if !s.Players[j].Pos.Adjacent(got) {
					t.Fatalf("step %d: non-adjacent move %v from %v", i, got, s.Players[j].Pos)
				}
				s.Players[j].Pos = got
			}
		}
		claims = append(claims, got)
	}
	return claims
}

func TestCornerClaimsBottomRightFirstThenSweepsTopLeft(t *testing.T) {
	s := snap(3, 3, player("p1", 2, 1))
	claims := runCorner(t, s, "p1", 8)

	if claims[0] != (game.Coord{X: 2, Y: 2}) {
		t.Fatalf("expected the bottom-right cell first, got %v", claims[0])
	}
	// All eight reachable cells painted, none twice.
	seen := map[game.Coord]bool{}
	for _, c := range claims {
		if seen[c] {
			t.Fatalf("cell %v painted twice within the sweep", c)
		}
		seen[c] = true
	}
	last := claims[len(claims)-1]
	if last.X+last.Y > 1 {
		t.Fatalf("sweep should end near the top-left, ended at %v", last)
	}
}

func TestCornerIsReproducible(t *testing.T) {
	a := runCorner(t, snap(3, 3, player("p1", 2, 1)), "p1", 8)
	b := runCorner(t, snap(3, 3, player("p1", 2, 1)), "p1", 8)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("corner sweep diverged:\n%v\n%v", a, b)
	}
}

func TestCornerPrefersUnclaimedCells(t *testing.T) {
	s := snap(3, 1, player("p1", 0, 0))
	s.Cells[0][1].Owner = "p2"
	// Target is (2,0); the only step is through p2's cell, afterwards
	// the sweep still reaches the unclaimed corner.
	first, err := NewCorner().Decide(s, "p1")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if first != (game.Coord{X: 1, Y: 0}) {
		t.Fatalf("expected forced step (1,0), got %v", first)
	}
}

func TestCornerRepaintsWhenBoardFull(t *testing.T) {
	s := snap(2, 1, player("p1", 0, 0))
	s.Cells[0][0].Owner = "p2"
	s.Cells[0][1].Owner = "p2"
	got, err := NewCorner().Decide(s, "p1")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got != (game.Coord{X: 1, Y: 0}) {
		t.Fatalf("expected enemy cell (1,0), got %v", got)
	}
}
