package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bahjat/fashionhub-e2e/internal/report"
)

func (a *app) consoleCmd() *cobra.Command {
	var failOnErrors bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Log in, open About and report console errors and uncaught exceptions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			site, session, err := a.openSite()
			if err != nil {
				return err
			}
			defer a.closeSession(session)

			summary, err := site.CheckConsole()
			if err != nil {
				return err
			}
			if err := report.WriteErrorSummary(a.out, summary); err != nil {
				return err
			}
			if failOnErrors && summary.Total > 0 {
				return fmt.Errorf("found %d console error(s)", summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnErrors, "fail-on-errors", false, "exit non-zero when any error was recorded")
	return cmd
}
