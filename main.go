package main

import (
	"time"

	"auction-marketplace/internal/config"
	"auction-marketplace/internal/demo"
	market "auction-marketplace/internal/marketService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping info", map[string]any{"level": cfg.LogLevel})
	}

	source, err := newSource(cfg)
	if err != nil {
		utils.Fatal("failed to prepare auction source", map[string]any{"error": err.Error()})
	}

	marketSvc := market.NewMarketService(source)

	router := server.SetupRouter(marketSvc)

	utils.Info("starting auction gateway", map[string]any{
		"addr":     cfg.Addr(),
		"upstream": cfg.URL,
		"demo":     cfg.Demo(),
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// newSource returns the configured backend client, or a seeded in-memory market
func newSource(cfg *config.Config) (repository.AuctionSource, error) {
	if !cfg.Demo() {
		return repository.NewHTTPSource(cfg.URL, cfg.Timeout), nil
	}

	repo := repository.NewMemoryRepo()
	if err := demo.Seed(repo, cfg.Seed, cfg.Auctions, time.Now()); err != nil {
		return nil, err
	}
	return repo, nil
}
