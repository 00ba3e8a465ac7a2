package http

import (
	"github.com/gin-gonic/gin"

	"squink-splash/internal/api/ws"
	"squink-splash/internal/arena"
	"squink-splash/internal/config"
)

func NewRouter(m *arena.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- LOBBY ENDPOINTS ---
	r.POST("/create-game", CreateGameHandler(m))
	r.POST("/register", RegisterHandler(m))
	r.POST("/add-bot", AddBotHandler(m))
	r.POST("/start", StartHandler(m))

	// --- GAME ENDPOINTS ---
	r.POST("/tick", TickHandler(m))
	r.POST("/move", MoveHandler(m))
	r.POST("/move-bot", MoveBotHandler(m))
	r.GET("/state", StateHandler(m))
	r.GET("/legal-moves", LegalMovesHandler(m))
	r.GET("/results", ResultsHandler(m))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/defaults", GetDefaultsHandler(cfg))

	return r
}
