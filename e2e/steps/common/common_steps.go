package common

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GetLastResponseStatus() int
	GetResponseField(field string) (interface{}, error)
}

// RegisterSteps registers generic response assertions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^the response status should be (\d+)$`, steps.responseStatusShouldBe)
	ctx.Step(`^the response error should be "([^"]*)"$`, steps.responseErrorShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) responseStatusShouldBe(ctx context.Context, want int) error {
	if got := s.tc.GetLastResponseStatus(); got != want {
		return fmt.Errorf("expected status %d, got %d", want, got)
	}
	return nil
}

func (s *commonSteps) responseErrorShouldBe(ctx context.Context, want string) error {
	got, err := s.tc.GetResponseField("error")
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected error %q, got %v", want, got)
	}
	return nil
}
