package game

// Coord addresses a single cell on the grid. Also used for grid dimensions.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Adjacent reports whether o is a 4-neighbor of c (no diagonals).
func (c Coord) Adjacent(o Coord) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Phase of the game lifecycle. Transitions are one-way:
// Forming -> Active -> Finished.
type Phase string

const (
	Forming  Phase = "forming"
	Active   Phase = "active"
	Finished Phase = "finished"
)

// Cell holds the current owner of a grid cell. An empty Owner means the
// cell is unclaimed. ClaimedAt is the round in which the cell last
// changed owner (1-based).
type Cell struct {
	Owner     string `json:"owner,omitempty"`
	ClaimedAt int    `json:"claimed_at,omitempty"`
}

// Player is a registered participant. Pos is the player's cursor, Score
// the number of cells the player currently owns, Moved whether the
// player already submitted a turn in the current round.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Pos   Coord  `json:"pos"`
	Score int    `json:"score"`
	Moved bool   `json:"moved"`
}

// Move is one player's request for the current round.
type Move struct {
	PlayerID string `json:"player_id"`
	To       Coord  `json:"to"`
}

// TurnResult describes the observable effect of an accepted turn.
type TurnResult struct {
	PlayerID string `json:"player_id"`
	To       Coord  `json:"to"`
	// PrevOwner is the player the cell was taken from, empty if the
	// cell was unclaimed or already owned by the mover.
	PrevOwner string `json:"prev_owner,omitempty"`
	Captured  bool   `json:"captured"`
	// RoundClosed is set when this turn was the last one of the round.
	RoundClosed bool  `json:"round_closed"`
	Phase       Phase `json:"phase"`
}

// Settings are fixed for the lifetime of a game.
type Settings struct {
	Width         int   `json:"width" yaml:"width"`
	Height        int   `json:"height" yaml:"height"`
	BuyIn         int64 `json:"buy_in" yaml:"buy_in"`
	FormingRounds int   `json:"forming_rounds" yaml:"forming_rounds"`
	Rounds        int   `json:"rounds" yaml:"rounds"`
	MaxPlayers    int   `json:"max_players" yaml:"max_players"`
}

// Standing is one row of the final (or current) score table.
type Standing struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// Results reports standings sorted by score, best first. Winners lists
// every player holding the maximum score; ties are reported, not broken.
type Results struct {
	Standings []Standing `json:"standings"`
	Winners   []string   `json:"winners"`
	Pot       int64      `json:"pot"`
}
