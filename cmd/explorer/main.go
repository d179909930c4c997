package main

import (
	"go-stat-explorer/internal/api"
	"go-stat-explorer/internal/api/handler"
	"go-stat-explorer/internal/config"
	"go-stat-explorer/internal/explore"
	"go-stat-explorer/internal/genesis"
	"go-stat-explorer/internal/model"
	"go-stat-explorer/internal/store"
	"go-stat-explorer/internal/view"
	"go-stat-explorer/pkg/utils"
)

// @title Regional Statistics Explorer API
// @version 1.0
// @description Explore region-level yearly statistics and export reusable query snippets.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	// Init submission-history DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	client := genesis.NewClient(cfg.GraphQLEndpoint, cfg.RequestTimeout)

	app := &handler.App{
		Orchestrator:   explore.NewOrchestrator(client, model.DefaultRegions),
		View:           view.NewStore(),
		Tracker:        explore.NewTracker(),
		Output:         utils.NewOutputManager(cfg.OutputDir),
		HistoryEnabled: true,
	}

	r := api.NewRouter(app)

	// Start server
	r.Start(cfg.Addr)
}
