// Command insurance-lookup searches a customer's insurances from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akerstrom/insurance-platform-showcase/internal/customer/client"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/config"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/httpclient"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	_ = config.Load()
	cfg := config.ClientFromEnv()

	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:           "insurance-lookup <personal-number>",
		Short:         "Show a customer's insurances and insured vehicles",
		Example:       "  insurance-lookup 199001011234",
		Args:          cobra.ExactArgs(1),
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range cfg.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			hc, err := httpclient.New("customer-service", baseURL, timeout)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			insurances, err := client.New(hc).CustomerInsurances(ctx, args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), client.Message(err))
				return err
			}
			return client.Render(cmd.OutOrStdout(), insurances)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", cfg.BaseURL, "customer service base URL (env CUSTOMER_SERVICE_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.Timeout, "request timeout (env UPSTREAM_TIMEOUT)")
	return cmd
}
