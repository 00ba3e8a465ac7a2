package game

import (
	"sort"
	"sync"
)

const (
	// DefaultPlayerLimit caps the roster when Settings.MaxPlayers is zero.
	DefaultPlayerLimit = 80

	minNameLen = 3
	maxNameLen = 16
)

// Game is the state machine owning the grid, the roster and the round
// counters. All mutating operations are serialized behind a single
// mutex so move legality and score bookkeeping are always validated
// against up-to-date state. Reads go through Snapshot, which returns a
// deep copy.
//
// Lifecycle: a game is created in Forming, where players register by
// paying the buy-in. An external clock calls Tick to run down the
// forming countdown; StartGame then moves the game to Active. In the
// Active phase every registered player may submit one turn per round,
// in any order. When all players have moved (or a Tick forces the round
// boundary) the round closes. After the configured number of rounds the
// game is Finished and only queries succeed.
type Game struct {
	mu       sync.Mutex
	phase    Phase
	settings Settings
	grid     *Grid

	players []*Player // registration order, used as reporting order
	byID    map[string]*Player

	pot          int64
	formingLeft  int
	roundsLeft   int
	roundsPlayed int
}

// New validates the settings and creates a game in the Forming phase.
func New(s Settings) (*Game, error) {
	grid, err := NewGrid(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if s.Rounds < 1 || s.FormingRounds < 0 || s.BuyIn < 0 || s.MaxPlayers < 0 {
		return nil, ErrInvalidConfig
	}
	if s.MaxPlayers == 0 {
		s.MaxPlayers = DefaultPlayerLimit
	}
	// Start positions are assigned by registration order; never let the
	// roster outgrow the board.
	if s.MaxPlayers > s.Width*s.Height {
		s.MaxPlayers = s.Width * s.Height
	}
	return &Game{
		phase:       Forming,
		settings:    s,
		grid:        grid,
		byID:        make(map[string]*Player),
		formingLeft: s.FormingRounds,
		roundsLeft:  s.Rounds,
	}, nil
}

// Settings returns the immutable creation parameters.
func (g *Game) Settings() Settings {
	return g.settings
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// RegisterPlayer adds a player during the Forming phase. The payment
// must cover the buy-in and is added to the pot. The start position is
// deterministic in registration order and collision-free.
func (g *Game) RegisterPlayer(id, name string, payment int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case Forming:
	case Finished:
		return ErrGameFinished
	default:
		return ErrAlreadyStarted
	}
	if len(name) < minNameLen || len(name) > maxNameLen {
		return ErrInvalidName
	}
	if payment < g.settings.BuyIn {
		return ErrInsufficientBuyIn
	}
	if _, ok := g.byID[id]; ok {
		return ErrAlreadyRegistered
	}
	for _, p := range g.players {
		if p.Name == name {
			return ErrNameTaken
		}
	}
	if len(g.players) >= g.settings.MaxPlayers {
		return ErrTooManyPlayers
	}

	p := &Player{
		ID:   id,
		Name: name,
		Pos:  g.startPosition(len(g.players)),
	}
	g.players = append(g.players, p)
	g.byID[id] = p
	g.pot += g.settings.BuyIn
	return nil
}

// startPosition spreads players over distinct cells, row by row.
func (g *Game) startPosition(i int) Coord {
	return Coord{
		X: i % g.settings.Width,
		Y: (i / g.settings.Width) % g.settings.Height,
	}
}

// Tick is the external clock signal. During Forming it runs down the
// start countdown; during Active it forces the round boundary, players
// who have not moved forfeit the round. Returns the phase after the
// tick and whether this tick closed a round, decided under the same
// lock so callers need no before/after phase reads. A finished game
// ignores ticks.
func (g *Game) Tick() (Phase, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case Forming:
		if g.formingLeft > 0 {
			g.formingLeft--
		}
	case Active:
		g.closeRound()
		return g.phase, true
	}
	return g.phase, false
}

// StartGame transitions Forming -> Active once the forming countdown
// has elapsed and at least one player registered.
func (g *Game) StartGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case Forming:
	case Finished:
		return ErrGameFinished
	default:
		return ErrAlreadyStarted
	}
	if g.formingLeft > 0 {
		return ErrNotYetFormed
	}
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	g.phase = Active
	return nil
}

// SubmitTurn validates and applies one player's move for the current
// round. Validation order: phase, registration, once-per-round flag,
// adjacency, bounds. On success the player's position moves to the
// target, the cell is claimed and scores are adjusted: taking a cell
// from another player shifts one point from them to the mover.
func (g *Game) SubmitTurn(playerID string, target Coord) (TurnResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case Active:
	case Finished:
		return TurnResult{}, ErrGameFinished
	default:
		return TurnResult{}, ErrGameNotActive
	}
	p, ok := g.byID[playerID]
	if !ok {
		return TurnResult{}, ErrUnknownPlayer
	}
	if p.Moved {
		return TurnResult{}, ErrTurnAlreadyTaken
	}
	if !p.Pos.Adjacent(target) {
		return TurnResult{}, ErrIllegalMove
	}
	if !g.grid.InBounds(target) {
		return TurnResult{}, ErrOutOfBounds
	}

	prev, err := g.grid.Claim(target, playerID, g.roundsPlayed+1)
	if err != nil {
		return TurnResult{}, err
	}
	if prev != playerID {
		if prev != "" {
			g.byID[prev].Score--
		}
		p.Score++
	}
	p.Pos = target
	p.Moved = true

	res := TurnResult{
		PlayerID: playerID,
		To:       target,
		Captured: prev != "" && prev != playerID,
	}
	if res.Captured {
		res.PrevOwner = prev
	}
	if g.allMoved() {
		g.closeRound()
		res.RoundClosed = true
	}
	res.Phase = g.phase
	return res, nil
}

func (g *Game) allMoved() bool {
	for _, p := range g.players {
		if !p.Moved {
			return false
		}
	}
	return len(g.players) > 0
}

// closeRound ends the current round and, after the last round, the
// game. Callers hold g.mu.
func (g *Game) closeRound() {
	for _, p := range g.players {
		p.Moved = false
	}
	g.roundsPlayed++
	g.roundsLeft--
	if g.roundsLeft <= 0 {
		g.phase = Finished
	}
}

// Snapshot returns a deep copy of the observable game state.
func (g *Game) Snapshot() *Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := make([]Player, len(g.players))
	for i, p := range g.players {
		players[i] = *p
	}
	return &Snapshot{
		Phase:                  g.phase,
		Width:                  g.settings.Width,
		Height:                 g.settings.Height,
		BuyIn:                  g.settings.BuyIn,
		Pot:                    g.pot,
		FormingRoundsRemaining: g.formingLeft,
		RoundsRemaining:        g.roundsLeft,
		RoundsPlayed:           g.roundsPlayed,
		Cells:                  g.grid.Cells(),
		Players:                players,
	}
}

// Results returns the score table, best first. Registration order is
// the stable order among equal scores. Winners holds every player with
// the maximum score; a tie is reported as multiple winners.
func (g *Game) Results() Results {
	g.mu.Lock()
	defer g.mu.Unlock()

	standings := make([]Standing, len(g.players))
	for i, p := range g.players {
		standings[i] = Standing{PlayerID: p.ID, Name: p.Name, Score: p.Score}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	var winners []string
	if len(standings) > 0 {
		best := standings[0].Score
		for _, s := range standings {
			if s.Score == best {
				winners = append(winners, s.PlayerID)
			}
		}
	}
	return Results{Standings: standings, Winners: winners, Pot: g.pot}
}
