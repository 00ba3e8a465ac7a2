package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"squink-splash/internal/game"
)

// Hub fans game events out to the websocket clients watching each
// game, and feeds inbound turn submissions into the manager.
type Hub struct {
	mu      sync.RWMutex
	games   map[string]map[*websocket.Conn]struct{}
	manager GameManager
}

func NewHub(manager GameManager) *Hub {
	return &Hub{
		games:   make(map[string]map[*websocket.Conn]struct{}),
		manager: manager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	gameCode := c.Query("game_code")
	if gameCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing game_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.games[gameCode]; !ok {
		h.games[gameCode] = make(map[*websocket.Conn]struct{})
	}
	h.games[gameCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.games[gameCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string      `json:"action"`
			Data   interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		switch msg.Action {
		case "submit_turn":
			h.handleSubmitTurn(gameCode, msg.Data)
		case "bot_move":
			h.handleBotMove(gameCode, msg.Data)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

// Broadcast sends one event to every client watching the game. It
// satisfies the manager's Broadcaster. The write lock serializes
// broadcasts: a gorilla connection supports at most one concurrent
// writer, and failed connections are evicted from the shared map.
func (h *Hub) Broadcast(gameCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[gameCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleSubmitTurn(gameCode string, data interface{}) {
	var move struct {
		PlayerID string `json:"player_id"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal move data: %v", err)
		return
	}
	if err := json.Unmarshal(raw, &move); err != nil {
		log.Printf("Invalid move data: %v", err)
		return
	}

	// The manager broadcasts turn_taken and any follow-up events
	// itself; rejections are only logged here.
	if _, err := h.manager.SubmitTurn(gameCode, move.PlayerID, game.Coord{X: move.X, Y: move.Y}); err != nil {
		log.Printf("Failed to apply turn for %s: %v", move.PlayerID, err)
	}
}

func (h *Hub) handleBotMove(gameCode string, data interface{}) {
	var req struct {
		BotID string `json:"bot_id"`
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal bot request: %v", err)
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("Invalid bot request: %v", err)
		return
	}

	if _, err := h.manager.MoveBot(gameCode, req.BotID); err != nil {
		log.Printf("Failed to process bot move: %v", err)
	}
}
