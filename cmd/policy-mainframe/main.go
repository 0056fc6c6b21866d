// Command policy-mainframe serves the legacy policy ledger from a seed file.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/akerstrom/insurance-platform-showcase/internal/legacy/mainframe"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/config"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpserver"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	httptransport "github.com/akerstrom/insurance-platform-showcase/internal/transport/http"
)

func main() {
	if err := config.Load(); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}
	cfg := config.PolicyMainframeFromEnv()
	log := logger.ForService(logger.New(cfg.LogFormat, cfg.LogLevel), cfg.Name, cfg.Version)
	for _, w := range cfg.Warnings {
		log.Warn("config value ignored", "detail", w)
	}

	store, err := mainframe.Load(cfg.SeedFile)
	if err != nil {
		log.Error("failed to load policy seed", "error", err)
		os.Exit(1)
	}
	log.Info("policy ledger loaded", "policies", store.Len())

	reg := metrics.NewRegistry()
	router := httptransport.NewRouter(httptransport.Deps{
		Service:  cfg.Name,
		Version:  cfg.Version,
		Logger:   log,
		Metrics:  metrics.New(reg, cfg.Name),
		Gatherer: reg,
	}, mainframe.NewHandler(store, log))

	if err := httpserver.Run(context.Background(), httpserver.New(cfg.Addr, router), log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
