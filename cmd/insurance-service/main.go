// Command insurance-service translates the legacy policy ledger into the
// insurance contract.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/akerstrom/insurance-platform-showcase/internal/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/insurance/adapters"
	insurancehandler "github.com/akerstrom/insurance-platform-showcase/internal/insurance/handler"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/config"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
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
	cfg := config.InsuranceServiceFromEnv()
	log := logger.ForService(logger.New(cfg.LogFormat, cfg.LogLevel), cfg.Name, cfg.Version)
	for _, w := range cfg.Warnings {
		log.Warn("config value ignored", "detail", w)
	}

	reg := metrics.NewRegistry()
	m := metrics.New(reg, cfg.Name)

	hc, err := httpclient.New("policy-mainframe", cfg.UpstreamURL, cfg.ClientTimeout, httpclient.WithMetrics(m))
	if err != nil {
		log.Error("invalid upstream configuration", "error", err)
		os.Exit(1)
	}
	service := insurance.NewService(adapters.NewMainframeClient(hc, log), log)

	router := httptransport.NewRouter(httptransport.Deps{
		Service:        cfg.Name,
		Version:        cfg.Version,
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		RequestTimeout: cfg.ClientTimeout,
	}, insurancehandler.New(service, log))

	log.Info("insurance translation configured", "upstream", cfg.UpstreamURL, "client_timeout", cfg.ClientTimeout)
	if err := httpserver.Run(context.Background(), httpserver.New(cfg.Addr, router), log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
