package main

import (
	"log"

	"github.com/gorilla/mux"

	"bookreviews/internal/config"
	"bookreviews/internal/logger"
	"bookreviews/internal/routing"
	"bookreviews/internal/seed"
	"bookreviews/pkg/middleware"
	"bookreviews/pkg/session"
)

func main() {
	cfg := config.Load() // load env var from .env

	catalog, err := seed.LoadCatalog(cfg.CatalogSeed)
	if err != nil {
		log.Fatal("Cannot load catalog:", err)
	}

	logger := logger.Load()

	sessions := session.NewMemoryManager(cfg.SessionTTL)

	r := mux.NewRouter()
	r.Use(middleware.Panic)

	routing.InitRoutes(r, cfg.JWTSecret, catalog, sessions, logger)
	routing.StartServer(r, cfg.Addr)
}
