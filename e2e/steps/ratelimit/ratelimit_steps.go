package ratelimit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(baseURL, path string) error
	GetCustomerURL() string
	GetLastResponseStatus() int
}

// RegisterSteps registers rate-limiting step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &ratelimitSteps{tc: tc}

	ctx.Step(`^I look up customer "([^"]*)" (\d+) times in quick succession$`, steps.lookUpRepeatedly)
	ctx.Step(`^at least one lookup should be rate limited$`, steps.atLeastOneRateLimited)
}

type ratelimitSteps struct {
	tc       TestContext
	statuses []int
}

func (s *ratelimitSteps) lookUpRepeatedly(ctx context.Context, pid string, times int) error {
	s.statuses = s.statuses[:0]
	for i := 0; i < times; i++ {
		if err := s.tc.GET(s.tc.GetCustomerURL(), "/customers/"+pid+"/insurances"); err != nil {
			return err
		}
		s.statuses = append(s.statuses, s.tc.GetLastResponseStatus())
	}
	return nil
}

func (s *ratelimitSteps) atLeastOneRateLimited(ctx context.Context) error {
	for _, st := range s.statuses {
		if st == http.StatusTooManyRequests {
			return nil
		}
	}
	return fmt.Errorf("expected a 429 among %v", s.statuses)
}
