package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the endpoints under test and the last response seen.
type TestContext struct {
	CustomerURL string
	VehicleURL  string
	http        *http.Client

	lastStatus int
	lastBody   []byte
}

// NewTestContext builds a context for one scenario.
func NewTestContext(customerURL, vehicleURL string) *TestContext {
	return &TestContext{
		CustomerURL: strings.TrimRight(customerURL, "/"),
		VehicleURL:  strings.TrimRight(vehicleURL, "/"),
		http:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Reset clears response state between scenarios.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastBody = nil
}

// GET calls baseURL+path and records the response.
func (tc *TestContext) GET(baseURL, path string) error {
	resp, err := tc.http.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	tc.lastStatus = resp.StatusCode
	tc.lastBody = body
	return nil
}

// GetCustomerURL returns the aggregation service base URL.
func (tc *TestContext) GetCustomerURL() string { return tc.CustomerURL }

// GetVehicleURL returns the vehicle facade base URL.
func (tc *TestContext) GetVehicleURL() string { return tc.VehicleURL }

// GetLastResponseStatus returns the status of the last response.
func (tc *TestContext) GetLastResponseStatus() int { return tc.lastStatus }

// GetLastResponseBody returns the body of the last response.
func (tc *TestContext) GetLastResponseBody() []byte { return tc.lastBody }

// GetResponseField reads a top-level field from a JSON object response.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(tc.lastBody, &obj); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	v, ok := obj[field]
	if !ok {
		return nil, fmt.Errorf("field %q not in response", field)
	}
	return v, nil
}
