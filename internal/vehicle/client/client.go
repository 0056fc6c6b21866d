// Package client calls any service exposing GET /vehicles/{regnr}: the legacy
// register from the vehicle facade, and the facade from the aggregation
// service.
package client

import (
	"context"
	"log/slog"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/validator"
)

// Client is the vehicle lookup adapter.
type Client struct {
	http      *httpclient.Client
	logger    *slog.Logger
	validator *validator.Validator
}

// New wraps a configured httpclient.
func New(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: hc, logger: logger, validator: validator.New()}
}

// Vehicle returns the vehicle registered as regnr. A 404 is not an error: it
// yields (nil, nil). Every other failure is an *upstream.Error.
func (c *Client) Vehicle(ctx context.Context, regnr string) (*insurance.Vehicle, error) {
	var vehicle insurance.Vehicle
	err := c.http.GetJSON(ctx, "/vehicles/"+httpclient.PathSegment(regnr), &vehicle)
	if upstream.IsCategory(err, upstream.ErrorNotFound) {
		c.logger.DebugContext(ctx, "vehicle not found", "upstream", c.http.Name, "regnr", regnr)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := c.validator.Struct(vehicle); err != nil {
		return nil, upstream.NewError(upstream.ErrorBadData, c.http.Name, "invalid vehicle record", err)
	}
	return &vehicle, nil
}
