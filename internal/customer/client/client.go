// Package client is the terminal lookup client for the customer service. It
// validates the personal number, calls GET /customers/{pid}/insurances and
// turns failures into messages fit for an end user.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/validator"
)

// User-facing messages.
const (
	MsgInvalidPid     = "Invalid personal number format. Use 12 digits (YYYYMMDDXXXX)"
	MsgNotFound       = "No insurances found for this customer"
	MsgUnavailable    = "Service temporarily unavailable. Please try again in a moment."
	MsgInvalidRequest = "Invalid request"
	MsgUnreachable    = "Unable to connect to the service. Please check your connection."
	MsgUnexpected     = "Unexpected error occurred"
)

const pidRule = "required,len=12,number"

// Client looks up a customer's insurances.
type Client struct {
	http      *httpclient.Client
	validator *validator.Validator
}

// New wraps a configured httpclient pointed at the customer service.
func New(hc *httpclient.Client) *Client {
	return &Client{http: hc, validator: validator.New()}
}

// CustomerInsurances returns the aggregated view for pid. Every error is a
// *dErrors.Error whose Message can be shown as is.
func (c *Client) CustomerInsurances(ctx context.Context, pid string) ([]insurance.CustomerInsurance, error) {
	if err := c.validator.Var(pid, pidRule); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, MsgInvalidPid)
	}

	var result []insurance.CustomerInsurance
	err := c.http.GetJSON(ctx, "/customers/"+httpclient.PathSegment(pid)+"/insurances", &result)
	if err != nil {
		return nil, userError(err)
	}
	return result, nil
}

func userError(err error) error {
	var ue *upstream.Error
	if !errors.As(err, &ue) {
		return dErrors.Wrap(err, dErrors.CodeInternal, MsgUnexpected)
	}

	switch ue.StatusCode {
	case http.StatusNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, MsgNotFound)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return dErrors.Wrap(err, dErrors.CodeServiceUnavailable, MsgUnavailable)
	case http.StatusBadRequest:
		msg := MsgInvalidRequest
		if body := decodeMessage(ue.Body); body != "" {
			msg = body
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, msg)
	case 0:
		switch ue.Category {
		case upstream.ErrorTimeout:
			return dErrors.Wrap(err, dErrors.CodeGatewayTimeout, MsgUnavailable)
		case upstream.ErrorUnavailable:
			return dErrors.Wrap(err, dErrors.CodeServiceUnavailable, MsgUnreachable)
		}
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, MsgUnexpected)
}

// Message extracts the user-facing text from an error returned by Client.
func Message(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return MsgUnexpected
}

func decodeMessage(body string) string {
	var resp insurance.ErrorResponse
	if json.Unmarshal([]byte(body), &resp) != nil {
		return ""
	}
	return resp.Message
}
