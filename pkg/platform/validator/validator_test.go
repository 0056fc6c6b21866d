package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

func validInsurance() insurance.Insurance {
	return insurance.Insurance{
		ID:      uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Pid:     "199001011234",
		Type:    insurance.InsuranceTypeCar,
		Status:  "Active",
		Premium: insurance.MustMoney("30"),
		Regnr:   "ABC123",
	}
}

func TestStruct(t *testing.T) {
	v := New()

	t.Run("valid insurance", func(t *testing.T) {
		assert.NoError(t, v.Struct(validInsurance()))
	})

	t.Run("zero premium is allowed", func(t *testing.T) {
		ins := validInsurance()
		ins.Premium = insurance.MustMoney("0")
		assert.NoError(t, v.Struct(ins))
	})

	t.Run("negative premium rejected", func(t *testing.T) {
		ins := validInsurance()
		ins.Premium = insurance.MustMoney("-0.01")
		assert.Error(t, v.Struct(ins))
	})

	t.Run("missing pid rejected", func(t *testing.T) {
		ins := validInsurance()
		ins.Pid = ""
		assert.Error(t, v.Struct(ins))
	})

	t.Run("vehicle year must be positive", func(t *testing.T) {
		assert.Error(t, v.Struct(insurance.Vehicle{Regnr: "ABC123", Year: 0}))
		assert.NoError(t, v.Struct(insurance.Vehicle{Regnr: "ABC123", Year: 2019}))
	})
}

func TestVarPid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("199001011234", "len=12,number"))
	assert.Error(t, v.Var("19900101123", "len=12,number"))
	assert.Error(t, v.Var("19900101123X", "len=12,number"))
}
