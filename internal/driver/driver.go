// Package driver runs one player's submission loop against a game
// engine. It is the orchestrator sitting outside the engine: it polls
// the observable state, asks the player's strategy for a move and
// submits it, until the game leaves the Active phase or the strategy
// runs out of legal moves.
package driver

import (
	"context"
	"errors"
	"log"
	"time"

	"squink-splash/internal/game"
	"squink-splash/internal/strategy"
)

// Engine is the surface the driver needs. *game.Game implements it;
// so does anything proxying an engine over a transport.
type Engine interface {
	Snapshot() *game.Snapshot
	SubmitTurn(playerID string, target game.Coord) (game.TurnResult, error)
}

// Driver submits turns for a single player.
type Driver struct {
	engine   Engine
	strat    strategy.Strategy
	playerID string

	// PollInterval is the pause between state polls while waiting for
	// the game to accept a move. Tests shrink it.
	PollInterval time.Duration
}

func New(e Engine, st strategy.Strategy, playerID string) *Driver {
	return &Driver{
		engine:       e,
		strat:        st,
		playerID:     playerID,
		PollInterval: 100 * time.Millisecond,
	}
}

// Run loops until the game finishes, the strategy reports no legal
// move, or ctx is cancelled. Engine rejections are fatal to the
// iteration: the move is logged and dropped, never silently replaced
// by a different one. Transient submission failures are retried after
// re-reading the state, so a move that was already accepted is never
// resubmitted blindly.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := d.engine.Snapshot()
		switch snap.Phase {
		case game.Finished:
			return nil
		case game.Forming:
			d.wait(ctx)
			continue
		}

		me, ok := snap.Player(d.playerID)
		if !ok {
			return game.ErrUnknownPlayer
		}
		if me.Moved {
			// Round not over yet; wait for the others.
			d.wait(ctx)
			continue
		}

		target, err := d.strat.Decide(snap, d.playerID)
		if errors.Is(err, strategy.ErrNoLegalMove) {
			log.Printf("driver: player %s has no legal move, stopping", d.playerID)
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := d.engine.SubmitTurn(d.playerID, target); err != nil {
			if game.IsRejection(err) {
				// A rejection on a move we chose from fresh state is a
				// logic bug or a lost race; do not resubmit it.
				log.Printf("driver: player %s move to %v rejected: %v", d.playerID, target, err)
				if errors.Is(err, game.ErrGameFinished) || errors.Is(err, game.ErrUnknownPlayer) {
					return nil
				}
				d.wait(ctx)
				continue
			}
			// Transport-level failure: loop re-reads the snapshot, which
			// tells us whether the move actually landed.
			log.Printf("driver: player %s transient submit failure: %v", d.playerID, err)
			d.wait(ctx)
			continue
		}
	}
}

func (d *Driver) wait(ctx context.Context) {
	t := time.NewTimer(d.PollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
