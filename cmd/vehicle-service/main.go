// Command vehicle-service is the vehicle lookup facade in front of the legacy
// vehicle register.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/config"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpserver"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	httptransport "github.com/akerstrom/insurance-platform-showcase/internal/transport/http"
	"github.com/akerstrom/insurance-platform-showcase/internal/vehicle"
	vehicleclient "github.com/akerstrom/insurance-platform-showcase/internal/vehicle/client"
	vehiclehandler "github.com/akerstrom/insurance-platform-showcase/internal/vehicle/handler"
)

func main() {
	if err := config.Load(); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}
	cfg := config.VehicleServiceFromEnv()
	log := logger.ForService(logger.New(cfg.LogFormat, cfg.LogLevel), cfg.Name, cfg.Version)
	for _, w := range cfg.Warnings {
		log.Warn("config value ignored", "detail", w)
	}

	reg := metrics.NewRegistry()
	m := metrics.New(reg, cfg.Name)

	hc, err := httpclient.New("vehicle-db", cfg.UpstreamURL, cfg.ClientTimeout, httpclient.WithMetrics(m))
	if err != nil {
		log.Error("invalid upstream configuration", "error", err)
		os.Exit(1)
	}
	service := vehicle.NewService(vehicleclient.New(hc, log), log)

	router := httptransport.NewRouter(httptransport.Deps{
		Service:        cfg.Name,
		Version:        cfg.Version,
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		RequestTimeout: cfg.ClientTimeout,
	}, vehiclehandler.New(service, log))

	log.Info("vehicle facade configured", "upstream", cfg.UpstreamURL, "client_timeout", cfg.ClientTimeout)
	if err := httpserver.Run(context.Background(), httpserver.New(cfg.Addr, router), log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
