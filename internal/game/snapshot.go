package game

// Snapshot is a deep copy of the observable game state, safe to read
// concurrently and to hand to player strategies. Cells are indexed
// [y][x].
type Snapshot struct {
	Phase                  Phase    `json:"phase"`
	Width                  int      `json:"width"`
	Height                 int      `json:"height"`
	BuyIn                  int64    `json:"buy_in"`
	Pot                    int64    `json:"pot"`
	FormingRoundsRemaining int      `json:"forming_rounds_remaining"`
	RoundsRemaining        int      `json:"rounds_remaining"`
	RoundsPlayed           int      `json:"rounds_played"`
	Cells                  [][]Cell `json:"cells"`
	Players                []Player `json:"players"`
}

func (s *Snapshot) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Owner returns the owner of c, "" for unclaimed, and whether c is in
// bounds at all.
func (s *Snapshot) Owner(c Coord) (string, bool) {
	if !s.InBounds(c) {
		return "", false
	}
	return s.Cells[c.Y][c.X].Owner, true
}

// Player looks up a player view by ID.
func (s *Snapshot) Player(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Neighbors returns the in-bounds 4-neighbors of c in E, S, W, N order.
func (s *Snapshot) Neighbors(c Coord) []Coord {
	candidates := []Coord{
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
	}
	out := candidates[:0]
	for _, n := range candidates {
		if s.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
