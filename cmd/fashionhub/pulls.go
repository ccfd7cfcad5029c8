package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bahjat/fashionhub-e2e/internal/pullrequests"
	"github.com/Bahjat/fashionhub-e2e/internal/report"
)

func (a *app) pullsCmd() *cobra.Command {
	var csvPath, xlsxPath string

	cmd := &cobra.Command{
		Use:   "pulls",
		Short: "Count open pull requests of a GitHub repository and export the recent ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gh := a.cfg.GitHub
			client, err := pullrequests.NewClient(pullrequests.Options{
				Token:       gh.Token,
				BaseURL:     gh.BaseURL,
				RecentLimit: gh.RecentLimit,
				MaxPages:    gh.MaxPages,
			}, a.logger)
			if err != nil {
				return err
			}

			stats, err := client.Stats(cmd.Context(), gh.Owner, gh.Repo)
			if err != nil {
				return err
			}
			if err := report.WritePullRequests(a.out, stats); err != nil {
				return err
			}

			if csvPath != "" {
				path, err := report.WritePullRequestCSV(csvPath, stats)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "CSV file generated: %s\n   Contains %d pull requests\n", path, len(stats.Recent))
			}
			if xlsxPath != "" {
				path, err := report.WritePullRequestXLSX(xlsxPath, stats)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "XLSX file generated: %s\n", path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("owner", "", "repository owner (GITHUB_OWNER, default appwrite)")
	flags.String("repo", "", "repository name (GITHUB_REPO, default appwrite)")
	flags.StringVar(&csvPath, "csv", report.DefaultCSVFile, "CSV export path; empty disables it")
	flags.StringVar(&xlsxPath, "xlsx", "", "XLSX export path; empty disables it")
	_ = a.v.BindPFlag("github.owner", flags.Lookup("owner"))
	_ = a.v.BindPFlag("github.repo", flags.Lookup("repo"))
	return cmd
}
