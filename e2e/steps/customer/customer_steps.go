package customer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(baseURL, path string) error
	GetCustomerURL() string
	GetVehicleURL() string
	GetLastResponseBody() []byte
}

// RegisterSteps registers customer lookup step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &customerSteps{tc: tc}

	ctx.Step(`^I look up insurances for customer "([^"]*)"$`, steps.lookUpCustomer)
	ctx.Step(`^I look up vehicle "([^"]*)"$`, steps.lookUpVehicle)
	ctx.Step(`^the response should contain (\d+) insurances?$`, steps.responseShouldContainInsurances)
	ctx.Step(`^exactly (\d+) insurances? should have a vehicle$`, steps.insurancesWithVehicle)
	ctx.Step(`^the vehicle on the "([^"]*)" insurance should be a "([^"]*)"$`, steps.vehicleMakeShouldBe)
	ctx.Step(`^the "([^"]*)" insurance should have no vehicle$`, steps.insuranceShouldHaveNoVehicle)
}

type customerSteps struct {
	tc TestContext
}

type vehicle struct {
	Regnr string `json:"regnr"`
	Make  string `json:"make"`
}

type customerInsurance struct {
	Type    string   `json:"type"`
	Regnr   string   `json:"regnr"`
	Vehicle *vehicle `json:"vehicle"`
}

func (s *customerSteps) lookUpCustomer(ctx context.Context, pid string) error {
	return s.tc.GET(s.tc.GetCustomerURL(), "/customers/"+pid+"/insurances")
}

func (s *customerSteps) lookUpVehicle(ctx context.Context, regnr string) error {
	return s.tc.GET(s.tc.GetVehicleURL(), "/vehicles/"+regnr)
}

func (s *customerSteps) insurances() ([]customerInsurance, error) {
	var out []customerInsurance
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &out); err != nil {
		return nil, fmt.Errorf("response is not an insurance list: %w", err)
	}
	return out, nil
}

func (s *customerSteps) byType(typ string) (*customerInsurance, error) {
	all, err := s.insurances()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Type == typ {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("no %s insurance in response", typ)
}

func (s *customerSteps) responseShouldContainInsurances(ctx context.Context, want int) error {
	all, err := s.insurances()
	if err != nil {
		return err
	}
	if len(all) != want {
		return fmt.Errorf("expected %d insurances, got %d", want, len(all))
	}
	return nil
}

func (s *customerSteps) insurancesWithVehicle(ctx context.Context, want int) error {
	all, err := s.insurances()
	if err != nil {
		return err
	}
	got := 0
	for _, ci := range all {
		if ci.Vehicle != nil {
			got++
		}
	}
	if got != want {
		return fmt.Errorf("expected %d insurances with a vehicle, got %d", want, got)
	}
	return nil
}

func (s *customerSteps) vehicleMakeShouldBe(ctx context.Context, typ, make string) error {
	ci, err := s.byType(typ)
	if err != nil {
		return err
	}
	if ci.Vehicle == nil {
		return fmt.Errorf("%s insurance has no vehicle", typ)
	}
	if ci.Vehicle.Make != make {
		return fmt.Errorf("expected make %q, got %q", make, ci.Vehicle.Make)
	}
	return nil
}

func (s *customerSteps) insuranceShouldHaveNoVehicle(ctx context.Context, typ string) error {
	ci, err := s.byType(typ)
	if err != nil {
		return err
	}
	if ci.Vehicle != nil {
		return fmt.Errorf("expected no vehicle on %s insurance, got %s", typ, ci.Vehicle.Regnr)
	}
	return nil
}
