// Package adapters holds the outbound adapters of the translation service.
package adapters

import (
	"context"
	"log/slog"

	"github.com/akerstrom/insurance-platform-showcase/internal/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
)

// MainframeClient reads policies from the legacy ledger over HTTP.
type MainframeClient struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewMainframeClient wraps a configured httpclient.
func NewMainframeClient(hc *httpclient.Client, logger *slog.Logger) *MainframeClient {
	return &MainframeClient{http: hc, logger: logger}
}

// Policies implements insurance.PolicySource. The ledger answers 404 for a pid
// without policies; that is reported as an empty slice.
func (c *MainframeClient) Policies(ctx context.Context, pid string) ([]insurance.PolicyRecord, error) {
	var records []insurance.PolicyRecord
	err := c.http.GetJSON(ctx, "/policies/"+httpclient.PathSegment(pid), &records)
	if upstream.IsCategory(err, upstream.ErrorNotFound) {
		c.logger.DebugContext(ctx, "ledger has no policies for pid")
		return []insurance.PolicyRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []insurance.PolicyRecord{}
	}
	return records, nil
}
