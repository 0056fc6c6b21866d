// Package config loads per-binary settings from the environment. A .env file in
// the working directory is read first when present; real environment variables
// win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults shared by the binaries.
const (
	DefaultClientTimeout        = 30 * time.Second
	DefaultUpstreamTimeout      = 10 * time.Second
	DefaultVehicleLookupTimeout = 10 * time.Second
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnv                  = "development"
)

// Version is stamped at build time with -ldflags "-X ...config.Version=...".
var Version = "dev"

// Server captures HTTP server level configuration common to every service.
type Server struct {
	Name      string
	Addr      string
	Env       string
	LogLevel  string
	LogFormat string
	Version   string

	// Warnings lists values that could not be parsed and fell back to
	// defaults. main logs them once the logger exists.
	Warnings []string
}

// Store configures a legacy seed-backed store.
type Store struct {
	Server
	SeedFile string
}

// Facade configures a service that proxies a single upstream.
type Facade struct {
	Server
	UpstreamURL   string
	ClientTimeout time.Duration
}

// Customer configures the aggregation service.
type Customer struct {
	Server
	InsuranceServiceURL      string
	VehicleServiceURL        string
	UpstreamTimeout          time.Duration
	VehicleLookupTimeout     time.Duration
	VehicleLookupConcurrency int
	RateLimitRPS             float64
	RateLimitBurst           int
}

// Client configures the terminal lookup client.
type Client struct {
	BaseURL  string
	Timeout  time.Duration
	Warnings []string
}

// Load reads an optional .env file. A missing file is not an error.
func Load(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// VehicleDBFromEnv builds the legacy vehicle store config.
func VehicleDBFromEnv() Store {
	r := &reader{}
	return Store{
		Server:   r.server("vehicle-db", "VEHICLE_DB_ADDR", ":5101"),
		SeedFile: r.str("VEHICLE_SEED_FILE", ""),
	}.withWarnings(r)
}

// PolicyMainframeFromEnv builds the legacy policy store config.
func PolicyMainframeFromEnv() Store {
	r := &reader{}
	return Store{
		Server:   r.server("policy-mainframe", "POLICY_MAINFRAME_ADDR", ":5102"),
		SeedFile: r.str("POLICY_SEED_FILE", ""),
	}.withWarnings(r)
}

// VehicleServiceFromEnv builds the vehicle lookup facade config.
func VehicleServiceFromEnv() Facade {
	r := &reader{}
	return Facade{
		Server:        r.server("vehicle-service", "VEHICLE_SERVICE_ADDR", ":5001"),
		UpstreamURL:   r.str("VEHICLE_DB_URL", "http://localhost:5101"),
		ClientTimeout: r.duration("HTTP_CLIENT_TIMEOUT", DefaultClientTimeout),
	}.withWarnings(r)
}

// InsuranceServiceFromEnv builds the policy translation service config.
func InsuranceServiceFromEnv() Facade {
	r := &reader{}
	return Facade{
		Server:        r.server("insurance-service", "INSURANCE_SERVICE_ADDR", ":5002"),
		UpstreamURL:   r.str("POLICY_MAINFRAME_URL", "http://localhost:5102"),
		ClientTimeout: r.duration("HTTP_CLIENT_TIMEOUT", DefaultClientTimeout),
	}.withWarnings(r)
}

// CustomerServiceFromEnv builds the aggregation service config.
func CustomerServiceFromEnv() Customer {
	r := &reader{}
	return Customer{
		Server:                   r.server("customer-service", "CUSTOMER_SERVICE_ADDR", ":5000"),
		InsuranceServiceURL:      r.str("INSURANCE_SERVICE_URL", "http://localhost:5002"),
		VehicleServiceURL:        r.str("VEHICLE_SERVICE_URL", "http://localhost:5001"),
		UpstreamTimeout:          r.duration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout),
		VehicleLookupTimeout:     r.duration("VEHICLE_LOOKUP_TIMEOUT", DefaultVehicleLookupTimeout),
		VehicleLookupConcurrency: r.nonNegativeInt("VEHICLE_LOOKUP_CONCURRENCY", 0),
		RateLimitRPS:             r.nonNegativeFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:           r.nonNegativeInt("RATE_LIMIT_BURST", 0),
	}.withWarnings(r)
}

// ClientFromEnv builds the terminal client config.
func ClientFromEnv() Client {
	r := &reader{}
	c := Client{
		BaseURL: r.str("CUSTOMER_SERVICE_URL", "http://localhost:5000"),
		Timeout: r.duration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout),
	}
	c.Warnings = r.warnings
	return c
}

func (s Store) withWarnings(r *reader) Store {
	s.Warnings = r.warnings
	return s
}

func (f Facade) withWarnings(r *reader) Facade {
	f.Warnings = r.warnings
	return f
}

func (c Customer) withWarnings(r *reader) Customer {
	c.Warnings = r.warnings
	return c
}

// reader collects fallbacks so a bad value never aborts startup.
type reader struct {
	warnings []string
}

func (r *reader) server(name, addrKey, addrDefault string) Server {
	return Server{
		Name:      name,
		Addr:      r.str(addrKey, addrDefault),
		Env:       r.str("APP_ENV", DefaultEnv),
		LogLevel:  strings.ToLower(r.str("LOG_LEVEL", DefaultLogLevel)),
		LogFormat: strings.ToLower(r.str("LOG_FORMAT", DefaultLogFormat)),
		Version:   Version,
	}
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// duration accepts Go durations ("15s") and bare seconds ("15").
func (r *reader) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		r.warn(key, raw, def)
		return def
	}
	return d
}

func (r *reader) nonNegativeInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		r.warn(key, raw, def)
		return def
	}
	return n
}

func (r *reader) nonNegativeFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		r.warn(key, raw, def)
		return def
	}
	return f
}

func (r *reader) warn(key, raw string, def any) {
	r.warnings = append(r.warnings, fmt.Sprintf("invalid %s=%q, using default %v", key, raw, def))
}
