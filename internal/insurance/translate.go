package insurance

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

// PolicyRecord is a ledger row as it arrives on the wire. Type stays raw
// because the ledger sends a product name or a bare ordinal.
type PolicyRecord struct {
	ID      uuid.UUID       `json:"id"`
	Pid     string          `json:"pid"`
	Type    json.RawMessage `json:"type"`
	Status  string          `json:"status"`
	Premium contract.Money  `json:"premium"`
	Regnr   string          `json:"regnr"`
}

// legacyTypeNames maps lower-cased ledger product names.
var legacyTypeNames = map[string]contract.InsuranceType{
	"car":    contract.InsuranceTypeCar,
	"pet":    contract.InsuranceTypePet,
	"health": contract.InsuranceTypeHealth,
}

// legacyTypeOrdinals maps the ledger's numeric product codes.
var legacyTypeOrdinals = map[int64]contract.InsuranceType{
	0: contract.InsuranceTypeCar,
	1: contract.InsuranceTypePet,
	2: contract.InsuranceTypeHealth,
}

// TranslateType maps a raw ledger type to the canonical enum. Anything not in
// the tables is an error; there is no default.
func TranslateType(raw json.RawMessage) (contract.InsuranceType, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		if t, ok := legacyTypeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			return t, nil
		}
		return "", fmt.Errorf("unrecognized policy type %q", name)
	}

	var ordinal int64
	if err := json.Unmarshal(raw, &ordinal); err == nil {
		if t, ok := legacyTypeOrdinals[ordinal]; ok {
			return t, nil
		}
		return "", fmt.Errorf("unrecognized policy type ordinal %d", ordinal)
	}

	return "", fmt.Errorf("unrecognized policy type %s", string(raw))
}

// Translate converts one ledger row. Regnr is carried only for car policies.
func Translate(rec PolicyRecord) (contract.Insurance, error) {
	typ, err := TranslateType(rec.Type)
	if err != nil {
		return contract.Insurance{}, fmt.Errorf("policy %s: %w", rec.ID, err)
	}
	ins := contract.Insurance{
		ID:      rec.ID,
		Pid:     rec.Pid,
		Type:    typ,
		Status:  rec.Status,
		Premium: rec.Premium,
	}
	if typ == contract.InsuranceTypeCar {
		ins.Regnr = strings.TrimSpace(rec.Regnr)
	}
	return ins, nil
}
