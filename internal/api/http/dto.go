package http

import "squink-splash/internal/game"

// CreateGameRequest represents the payload for /create-game. Zero
// fields fall back to the server defaults.
type CreateGameRequest struct {
	Settings game.Settings `json:"settings"`
}

// RegisterRequest represents the payload for /register.
type RegisterRequest struct {
	GameCode string `json:"gameCode"`
	Name     string `json:"name"`
	Payment  int64  `json:"payment"`
}

// AddBotRequest represents the payload for /add-bot.
type AddBotRequest struct {
	GameCode string `json:"gameCode"`
	Strategy string `json:"strategy"`
	Seed     int64  `json:"seed"`
}

// StartRequest represents the payload for /start and /tick.
type StartRequest struct {
	GameCode string `json:"gameCode"`
}

// MoveRequest represents a turn submission.
type MoveRequest struct {
	GameCode string `json:"gameCode"`
	PlayerID string `json:"playerId"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// MoveBotRequest asks a seated bot to take its turn.
type MoveBotRequest struct {
	GameCode string `json:"gameCode"`
	BotID    string `json:"botId"`
}
