package arena

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"squink-splash/internal/config"
	"squink-splash/internal/game"
	"squink-splash/internal/strategy"
)

// Manager orchestrates game instances and publishes their events.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

// SetBroadcaster attaches the event sink. The manager works without
// one; events are then dropped.
func (m *Manager) SetBroadcaster(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

// CreateGame creates an instance from the given settings; zero-valued
// fields fall back to the configured defaults.
func (m *Manager) CreateGame(s game.Settings) (*Instance, error) {
	d := m.cfg.Defaults
	if s.Width == 0 {
		s.Width = d.Width
	}
	if s.Height == 0 {
		s.Height = d.Height
	}
	if s.BuyIn == 0 {
		s.BuyIn = d.BuyIn
	}
	if s.FormingRounds == 0 {
		s.FormingRounds = d.FormingRounds
	}
	if s.Rounds == 0 {
		s.Rounds = d.Rounds
	}
	if s.MaxPlayers == 0 {
		s.MaxPlayers = d.MaxPlayers
	}

	g, err := game.New(s)
	if err != nil {
		return nil, err
	}
	// Never reuse a live code; overwriting would orphan a running game.
	var code string
	for {
		code = randCode(6)
		if _, taken := m.store.GetGame(code); !taken {
			break
		}
	}
	in := &Instance{
		Code:      code,
		CreatedAt: time.Now(),
		Game:      g,
	}
	m.store.SaveGame(in)
	log.Printf("arena: created game %s (%dx%d, %d rounds)", in.Code, s.Width, s.Height, s.Rounds)
	return in, nil
}

func (m *Manager) Get(code string) (*Instance, bool) {
	return m.store.GetGame(code)
}

// RegisterPlayer registers a human player and returns the assigned
// player ID.
func (m *Manager) RegisterPlayer(code, name string, payment int64) (string, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return "", ErrGameNotFound
	}
	id := uuid.NewString()
	if err := in.Game.RegisterPlayer(id, name, payment); err != nil {
		return "", err
	}
	m.broadcast(code, "player_registered", map[string]interface{}{
		"player_id": id,
		"name":      name,
	})
	return id, nil
}

// AddBot seats a built-in strategy as a player. The bot pays the
// buy-in out of the house pocket. Returns the bot's player ID.
func (m *Manager) AddBot(code, strategyName string, seed int64) (string, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return "", ErrGameNotFound
	}
	st, err := strategy.New(strategyName, seed)
	if err != nil {
		return "", err
	}

	id := "bot-" + uuid.NewString()
	snap := in.Game.Snapshot()
	name := fmt.Sprintf("bot-%s-%d", strategyName, len(snap.Players)+1)
	if err := in.Game.RegisterPlayer(id, name, in.Game.Settings().BuyIn); err != nil {
		return "", err
	}
	in.setBot(id, st)
	m.broadcast(code, "player_registered", map[string]interface{}{
		"player_id": id,
		"name":      name,
		"bot":       strategyName,
	})
	return id, nil
}

// Start moves a formed game into the Active phase.
func (m *Manager) Start(code string) error {
	in, ok := m.store.GetGame(code)
	if !ok {
		return ErrGameNotFound
	}
	if err := in.Game.StartGame(); err != nil {
		return err
	}
	m.broadcast(code, "game_started", map[string]interface{}{
		"state": in.Game.Snapshot(),
	})
	return nil
}

// Tick delivers the external clock signal to a game: it runs down the
// forming countdown or forces the round boundary.
func (m *Manager) Tick(code string) (game.Phase, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return "", ErrGameNotFound
	}
	phase, roundClosed := in.Game.Tick()
	if roundClosed {
		snap := in.Game.Snapshot()
		m.broadcast(code, "round_incremented", map[string]interface{}{
			"rounds_played":    snap.RoundsPlayed,
			"rounds_remaining": snap.RoundsRemaining,
		})
		if phase == game.Finished {
			m.broadcast(code, "game_ended", map[string]interface{}{
				"results": in.Game.Results(),
			})
		}
	}
	return phase, nil
}

// SubmitTurn validates and applies one move, then publishes the
// outcome.
func (m *Manager) SubmitTurn(code, playerID string, target game.Coord) (game.TurnResult, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return game.TurnResult{}, ErrGameNotFound
	}
	res, err := in.Game.SubmitTurn(playerID, target)
	if err != nil {
		return game.TurnResult{}, err
	}
	m.broadcast(code, "turn_taken", map[string]interface{}{
		"outcome": res,
	})
	if res.RoundClosed {
		snap := in.Game.Snapshot()
		m.broadcast(code, "round_incremented", map[string]interface{}{
			"rounds_played":    snap.RoundsPlayed,
			"rounds_remaining": snap.RoundsRemaining,
		})
	}
	if res.Phase == game.Finished {
		m.broadcast(code, "game_ended", map[string]interface{}{
			"results": in.Game.Results(),
		})
	}
	return res, nil
}

// MoveBot asks a seated bot strategy for its move and submits it.
func (m *Manager) MoveBot(code, botID string) (game.TurnResult, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return game.TurnResult{}, ErrGameNotFound
	}
	st, ok := in.bot(botID)
	if !ok {
		return game.TurnResult{}, game.ErrUnknownPlayer
	}
	target, err := st.Decide(in.Game.Snapshot(), botID)
	if err != nil {
		return game.TurnResult{}, err
	}
	return m.SubmitTurn(code, botID, target)
}

// Snapshot returns the observable state of a game.
func (m *Manager) Snapshot(code string) (*game.Snapshot, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return nil, ErrGameNotFound
	}
	return in.Game.Snapshot(), nil
}

// Results returns the score table of a game.
func (m *Manager) Results(code string) (game.Results, error) {
	in, ok := m.store.GetGame(code)
	if !ok {
		return game.Results{}, ErrGameNotFound
	}
	return in.Game.Results(), nil
}
