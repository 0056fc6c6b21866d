// Package mainframe is the legacy policy ledger: a read-only list of policies
// keyed by personal identification number, served over HTTP in the ledger's
// own vocabulary.
package mainframe

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

// PolicyType is the ledger's product code. Values are ordinal; the JSON form
// is the upper-case product name.
type PolicyType int

const (
	PolicyTypeCar PolicyType = iota
	PolicyTypePet
	PolicyTypeHealth
)

var policyTypeNames = map[PolicyType]string{
	PolicyTypeCar:    "CAR",
	PolicyTypePet:    "PET",
	PolicyTypeHealth: "HEALTH",
}

func (t PolicyType) String() string {
	if name, ok := policyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PolicyType(%d)", int(t))
}

// ParsePolicyType accepts a product name, case-insensitively.
func ParsePolicyType(s string) (PolicyType, error) {
	for t, name := range policyTypeNames {
		if equalFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown policy type %q", s)
}

// MarshalJSON writes the product name.
func (t PolicyType) MarshalJSON() ([]byte, error) {
	name, ok := policyTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown policy type %d", int(t))
	}
	return json.Marshal(name)
}

// Policy is a ledger row.
type Policy struct {
	ID      uuid.UUID       `json:"id"`
	Pid     string          `json:"pid"`
	Type    PolicyType      `json:"type"`
	Status  string          `json:"status"`
	Premium insurance.Money `json:"premium"`
	Regnr   string          `json:"regnr,omitempty"`
}
