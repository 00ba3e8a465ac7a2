package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"squink-splash/internal/arena"
	"squink-splash/internal/game"
)

func errStatus(err error) int {
	switch {
	case errors.Is(err, arena.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrTurnAlreadyTaken),
		errors.Is(err, game.ErrAlreadyRegistered),
		errors.Is(err, game.ErrNameTaken):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// @Summary Create new game
// @Description Create a game instance; omitted settings use the server defaults
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.CreateGameRequest true "Game settings"
// @Success 200 {object} map[string]interface{}
// @Router /create-game [post]
func CreateGameHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		in, err := m.CreateGame(req.Settings)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"gameCode": in.Code,
			"settings": in.Game.Settings(),
		})
	}
}

// @Summary Register a player
// @Description Join a forming game with a display name and buy-in payment
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.RegisterRequest true "Registration"
// @Success 200 {object} map[string]interface{}
// @Router /register [post]
func RegisterHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode required"})
			return
		}
		id, err := m.RegisterPlayer(req.GameCode, req.Name, req.Payment)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": id})
	}
}

// @Summary Add a bot player
// @Description Seat a built-in strategy (base, random or corner) in a forming game
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.AddBotRequest true "Bot info"
// @Success 200 {object} map[string]interface{}
// @Router /add-bot [post]
func AddBotHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddBotRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" || req.Strategy == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode and strategy required"})
			return
		}
		id, err := m.AddBot(req.GameCode, req.Strategy, req.Seed)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"botId": id})
	}
}

// @Summary Start the game
// @Description Move a fully formed game into the active phase
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.StartRequest true "Game code"
// @Success 200 {object} map[string]interface{}
// @Router /start [post]
func StartHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode required"})
			return
		}
		if err := m.Start(req.GameCode); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		snap, err := m.Snapshot(req.GameCode)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": snap})
	}
}

// @Summary Advance the game clock
// @Description Run down the forming countdown or force the current round shut
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.StartRequest true "Game code"
// @Success 200 {object} map[string]interface{}
// @Router /tick [post]
func TickHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode required"})
			return
		}
		phase, err := m.Tick(req.GameCode)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"phase": phase})
	}
}

// @Summary Player takes a turn
// @Description Submit the target cell for a player's move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		res, err := m.SubmitTurn(req.GameCode, req.PlayerID, game.Coord{X: req.X, Y: req.Y})
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"outcome": res})
	}
}

// @Summary Let a bot take its turn
// @Description The seated strategy decides and submits the bot's move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveBotRequest true "Bot move"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.BindJSON(&req); err != nil || req.GameCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode and botId required"})
			return
		}
		res, err := m.MoveBot(req.GameCode, req.BotID)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"outcome": res})
	}
}

// @Summary Get game state
// @Description Full observable state of a game
// @Tags Game
// @Produce json
// @Param gameCode query string true "Game Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("gameCode")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode required"})
			return
		}
		snap, err := m.Snapshot(code)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": snap})
	}
}

// @Summary Get legal moves for a player
// @Description Returns the cells the player may paint this round
// @Tags Game
// @Produce json
// @Param gameCode query string true "Game Code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /legal-moves [get]
func LegalMovesHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("gameCode")
		playerID := c.Query("playerId")
		if code == "" || playerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode and playerId required"})
			return
		}
		snap, err := m.Snapshot(code)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		p, ok := snap.Player(playerID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player not found"})
			return
		}
		moves := []game.Coord{}
		if snap.Phase == game.Active && !p.Moved {
			moves = snap.Neighbors(p.Pos)
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Get game results
// @Description Score table, winners and pot
// @Tags Game
// @Produce json
// @Param gameCode query string true "Game Code"
// @Success 200 {object} map[string]interface{}
// @Router /results [get]
func ResultsHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("gameCode")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameCode required"})
			return
		}
		res, err := m.Results(code)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": res})
	}
}
