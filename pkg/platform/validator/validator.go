// Package validator wraps go-playground/validator with the custom types used by
// the insurance contracts.
package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that understands insurance.Money, so numeric tags
// such as gte=0 apply to premiums.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(moneyValue, insurance.Money{})
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

func moneyValue(field reflect.Value) any {
	if m, ok := field.Interface().(insurance.Money); ok {
		f, _ := m.Float64()
		return f
	}
	return nil
}
