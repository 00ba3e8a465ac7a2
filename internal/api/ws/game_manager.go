package ws

import "squink-splash/internal/game"

type GameManager interface {
	SubmitTurn(gameCode, playerID string, target game.Coord) (game.TurnResult, error)
	MoveBot(gameCode, botID string) (game.TurnResult, error)
}
