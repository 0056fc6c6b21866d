// Command customer-service aggregates a customer's insurances and enriches car
// policies with vehicle details.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/akerstrom/insurance-platform-showcase/internal/customer"
	customerhandler "github.com/akerstrom/insurance-platform-showcase/internal/customer/handler"
	customermetrics "github.com/akerstrom/insurance-platform-showcase/internal/customer/metrics"
	insuranceclient "github.com/akerstrom/insurance-platform-showcase/internal/insurance/client"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/config"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpserver"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	httptransport "github.com/akerstrom/insurance-platform-showcase/internal/transport/http"
	vehicleclient "github.com/akerstrom/insurance-platform-showcase/internal/vehicle/client"
)

func main() {
	if err := config.Load(); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}
	cfg := config.CustomerServiceFromEnv()
	log := logger.ForService(logger.New(cfg.LogFormat, cfg.LogLevel), cfg.Name, cfg.Version)
	for _, w := range cfg.Warnings {
		log.Warn("config value ignored", "detail", w)
	}

	reg := metrics.NewRegistry()
	m := metrics.New(reg, cfg.Name)

	insuranceHTTP, err := httpclient.New("insurance-service", cfg.InsuranceServiceURL, cfg.UpstreamTimeout, httpclient.WithMetrics(m))
	if err != nil {
		log.Error("invalid insurance service configuration", "error", err)
		os.Exit(1)
	}
	vehicleHTTP, err := httpclient.New("vehicle-service", cfg.VehicleServiceURL, cfg.UpstreamTimeout, httpclient.WithMetrics(m))
	if err != nil {
		log.Error("invalid vehicle service configuration", "error", err)
		os.Exit(1)
	}

	service := customer.NewService(
		insuranceclient.New(insuranceHTTP, log),
		vehicleclient.New(vehicleHTTP, log),
		log,
		customer.WithLookupTimeout(cfg.VehicleLookupTimeout),
		customer.WithConcurrency(cfg.VehicleLookupConcurrency),
		customer.WithMetrics(customermetrics.New(reg)),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Service:        cfg.Name,
		Version:        cfg.Version,
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		RequestTimeout: cfg.UpstreamTimeout + cfg.VehicleLookupTimeout,
		RateLimiter:    middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log, m),
	}, customerhandler.New(service, log))

	log.Info("customer aggregation configured",
		"insurance_service", cfg.InsuranceServiceURL,
		"vehicle_service", cfg.VehicleServiceURL,
		"upstream_timeout", cfg.UpstreamTimeout,
		"vehicle_lookup_timeout", cfg.VehicleLookupTimeout,
		"vehicle_lookup_concurrency", cfg.VehicleLookupConcurrency,
	)
	if err := httpserver.Run(context.Background(), httpserver.New(cfg.Addr, router), log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
