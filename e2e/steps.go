package e2e

import (
	"github.com/cucumber/godog"

	"github.com/akerstrom/insurance-platform-showcase/e2e/steps/common"
	"github.com/akerstrom/insurance-platform-showcase/e2e/steps/customer"
	"github.com/akerstrom/insurance-platform-showcase/e2e/steps/ratelimit"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic assertions)
	common.RegisterSteps(ctx, tc)

	// Register customer lookup steps
	customer.RegisterSteps(ctx, tc)

	// Register rate limiting steps
	ratelimit.RegisterSteps(ctx, tc)
}
