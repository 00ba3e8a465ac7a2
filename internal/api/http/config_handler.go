package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"squink-splash/internal/config"
)

// @Summary Get default game settings
// @Description Returns the settings applied to games created without explicit values
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/defaults [get]
func GetDefaultsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"defaults": cfg.Defaults})
	}
}
