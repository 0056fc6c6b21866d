// Package client calls the policy translation service's GET /insurances/{pid}.
package client

import (
	"context"
	"log/slog"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/validator"
)

// Client is the translation service adapter.
type Client struct {
	http      *httpclient.Client
	logger    *slog.Logger
	validator *validator.Validator
}

// New wraps a configured httpclient.
func New(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: hc, logger: logger, validator: validator.New()}
}

// Insurances returns the customer's policies. A 404 yields an empty slice. An
// unknown insurance type in the body fails decoding and surfaces as bad_data.
func (c *Client) Insurances(ctx context.Context, pid string) ([]contract.Insurance, error) {
	var insurances []contract.Insurance
	err := c.http.GetJSON(ctx, "/insurances/"+httpclient.PathSegment(pid), &insurances)
	if upstream.IsCategory(err, upstream.ErrorNotFound) {
		return []contract.Insurance{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range insurances {
		if err := c.validator.Struct(insurances[i]); err != nil {
			return nil, upstream.NewError(upstream.ErrorBadData, c.http.Name, "invalid insurance record", err)
		}
	}
	if insurances == nil {
		insurances = []contract.Insurance{}
	}
	return insurances, nil
}
