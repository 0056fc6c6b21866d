package upstream

import (
	"fmt"

	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
)

// ToDomain converts an upstream failure into the domain error a handler
// renders. what names the dependency in client-facing messages. Categories
// that mean the upstream spoke nonsense become internal errors so their
// detail never reaches the caller.
func ToDomain(err error, what string) error {
	if err == nil {
		return nil
	}
	switch GetCategory(err) {
	case ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeGatewayTimeout, fmt.Sprintf("%s did not respond in time", what))
	case ErrorUnavailable:
		return dErrors.Wrap(err, dErrors.CodeServiceUnavailable, fmt.Sprintf("%s is unavailable", what))
	case ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("%s has no matching record", what))
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("%s returned an invalid response", what))
	}
}
