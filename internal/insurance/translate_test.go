package insurance

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

func TestTranslateType(t *testing.T) {
	tests := []struct {
		raw  string
		want contract.InsuranceType
	}{
		{`"CAR"`, contract.InsuranceTypeCar},
		{`"Car"`, contract.InsuranceTypeCar},
		{`"pet"`, contract.InsuranceTypePet},
		{`" Health "`, contract.InsuranceTypeHealth},
		{`0`, contract.InsuranceTypeCar},
		{`1`, contract.InsuranceTypePet},
		{`2`, contract.InsuranceTypeHealth},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := TranslateType(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateTypeRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{`"Boat"`, `""`, `3`, `-1`, `1.5`, `null`, `true`, `{}`} {
		t.Run(raw, func(t *testing.T) {
			_, err := TranslateType(json.RawMessage(raw))
			assert.Error(t, err)
		})
	}
}

func TestTranslateDropsRegnrForNonCar(t *testing.T) {
	rec := PolicyRecord{
		ID:      uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Pid:     "199001011234",
		Type:    json.RawMessage(`"PET"`),
		Status:  "Active",
		Premium: contract.MustMoney("10"),
		Regnr:   "ABC123",
	}

	ins, err := Translate(rec)

	require.NoError(t, err)
	assert.Equal(t, contract.InsuranceTypePet, ins.Type)
	assert.Empty(t, ins.Regnr)
}

func TestTranslateKeepsCarFields(t *testing.T) {
	rec := PolicyRecord{
		ID:      uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Pid:     "199001011234",
		Type:    json.RawMessage(`"CAR"`),
		Status:  "Active",
		Premium: contract.MustMoney("30"),
		Regnr:   "ABC123",
	}

	ins, err := Translate(rec)

	require.NoError(t, err)
	assert.Equal(t, contract.Insurance{
		ID:      rec.ID,
		Pid:     "199001011234",
		Type:    contract.InsuranceTypeCar,
		Status:  "Active",
		Premium: contract.MustMoney("30"),
		Regnr:   "ABC123",
	}, ins)
}
