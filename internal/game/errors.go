package game

import "errors"

// Errors returned by grid and engine operations. Every rejected call
// returns one of these explicitly; a violation is never coerced into a
// silent no-op.
var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidConfig     = errors.New("invalid game configuration")
	ErrAlreadyStarted    = errors.New("game already started")
	ErrInsufficientBuyIn = errors.New("payment below buy-in")
	ErrAlreadyRegistered = errors.New("player already registered")
	ErrInvalidName       = errors.New("invalid player name")
	ErrNameTaken         = errors.New("name already taken")
	ErrTooManyPlayers    = errors.New("maximum player count reached")
	ErrNotYetFormed      = errors.New("forming rounds not over yet")
	ErrNoPlayers         = errors.New("no players registered")
	ErrGameNotActive     = errors.New("game not active")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrIllegalMove       = errors.New("target not adjacent to position")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrGameFinished      = errors.New("game finished")
	ErrTurnAlreadyTaken  = errors.New("turn already taken this round")
)

var rejections = []error{
	ErrInvalidDimensions,
	ErrInvalidConfig,
	ErrAlreadyStarted,
	ErrInsufficientBuyIn,
	ErrAlreadyRegistered,
	ErrInvalidName,
	ErrNameTaken,
	ErrTooManyPlayers,
	ErrNotYetFormed,
	ErrNoPlayers,
	ErrGameNotActive,
	ErrUnknownPlayer,
	ErrIllegalMove,
	ErrOutOfBounds,
	ErrGameFinished,
	ErrTurnAlreadyTaken,
}

// IsRejection reports whether err is an engine-level rejection, as
// opposed to a transport failure. Callers retry transport failures but
// must never retry a rejection with the same move.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
