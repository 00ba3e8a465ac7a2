package main

import (
	"log"

	httpapi "squink-splash/internal/api/http"
	"squink-splash/internal/api/ws"
	"squink-splash/internal/arena"
	"squink-splash/internal/config"
	"squink-splash/internal/store"
)

// @title Squink-Splash API
// @version 1.0
// @description REST API for the grid painting game (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	m := arena.NewManager(mem, cfg)
	hub := ws.NewHub(m)
	m.SetBroadcaster(hub)
	r := httpapi.NewRouter(m, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
