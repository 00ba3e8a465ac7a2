// Package arena owns the lifecycle of game instances: creation,
// registration, the external round clock, turn submission and bot
// seats. It is the layer between the pure engine and the transports.
package arena

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"squink-splash/internal/game"
	"squink-splash/internal/strategy"
)

// ErrGameNotFound is returned for an unknown game code.
var ErrGameNotFound = errors.New("game not found")

// Instance is one hosted game, addressed by a short join code.
type Instance struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	Game      *game.Game `json:"-"`

	mu   sync.Mutex
	bots map[string]strategy.Strategy // playerID -> seated strategy
}

func (in *Instance) setBot(id string, st strategy.Strategy) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.bots == nil {
		in.bots = make(map[string]strategy.Strategy)
	}
	in.bots[id] = st
}

func (in *Instance) bot(id string) (strategy.Strategy, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	st, ok := in.bots[id]
	return st, ok
}

// Store persists instances by code.
type Store interface {
	GetGame(code string) (*Instance, bool)
	SaveGame(in *Instance)
}

// Broadcaster pushes game events to observers; the websocket hub
// implements it.
type Broadcaster interface {
	Broadcast(code string, action string, data interface{})
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codeSrc is shared so codes drawn in the same instant stay distinct;
// a per-call time seed would repeat within one nanosecond.
var codeSrc = struct {
	mu sync.Mutex
	r  *rand.Rand
}{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

func randCode(n int) string {
	codeSrc.mu.Lock()
	defer codeSrc.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[codeSrc.r.Intn(len(letters))]
	}
	return string(b)
}
