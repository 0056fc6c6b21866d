// Package insurance hosts the stable DTOs exchanged between the insurance
// services and their clients. Keep these free of service-internal concerns and
// map richer internal records into these shapes at the boundary.
package insurance

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below.
const ContractVersion = "v1.0.0"

// InsuranceType is the canonical, closed set of insurance kinds.
type InsuranceType string

const (
	InsuranceTypeCar    InsuranceType = "Car"
	InsuranceTypePet    InsuranceType = "Pet"
	InsuranceTypeHealth InsuranceType = "Health"
)

// InsuranceTypes lists every known type in display order.
var InsuranceTypes = []InsuranceType{InsuranceTypeCar, InsuranceTypePet, InsuranceTypeHealth}

// ParseInsuranceType accepts the canonical names case-insensitively. Unknown
// values are an error; there is no fallback type.
func ParseInsuranceType(s string) (InsuranceType, error) {
	for _, t := range InsuranceTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown insurance type %q", s)
}

func (t InsuranceType) String() string {
	return string(t)
}

// UnmarshalJSON rejects values outside the closed set.
func (t *InsuranceType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("insurance type must be a string: %w", err)
	}
	parsed, err := ParseInsuranceType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Insurance is the canonical policy shape produced by the translation service.
// Regnr is only populated for car policies.
type Insurance struct {
	ID      uuid.UUID     `json:"id"`
	Pid     string        `json:"pid" validate:"required"`
	Type    InsuranceType `json:"type" validate:"required,oneof=Car Pet Health"`
	Status  string        `json:"status"`
	Premium Money         `json:"premium" validate:"gte=0"`
	Regnr   string        `json:"regnr,omitempty"`
}

// IsCar reports whether the policy insures a vehicle.
func (i Insurance) IsCar() bool {
	return i.Type == InsuranceTypeCar
}

// HasRegistration reports whether the policy can be enriched with vehicle details.
func (i Insurance) HasRegistration() bool {
	return i.IsCar() && strings.TrimSpace(i.Regnr) != ""
}

// Vehicle is a registered vehicle as exposed by the vehicle lookup service.
type Vehicle struct {
	Vin   string `json:"vin"`
	Regnr string `json:"regnr" validate:"required"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year" validate:"gt=0"`
}

// CustomerInsurance is an insurance enriched with vehicle details. Vehicle is
// nil for non-car policies and for car policies whose vehicle could not be
// resolved.
type CustomerInsurance struct {
	Insurance
	Vehicle *Vehicle `json:"vehicle"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health on every service.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
