package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
	"github.com/Bahjat/fashionhub-e2e/internal/report"
)

const (
	modeBrowser = "browser"
	modeHTTP    = "http"
)

func (a *app) linksCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "links [url]",
		Short: "Check every link on a page; exits non-zero if any is broken",
		Long: `Check every link on a page, the environment's home page by default.

In browser mode the page is rendered by Chromium and links are probed from the
browser context. In http mode the raw HTML is fetched and parsed, which is
faster but misses links added by scripts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := a.cfg.Environment.HomeURL
			if len(args) == 1 {
				url = args[0]
			}

			var check func(context.Context, string) (model.LinkReport, error)
			switch mode {
			case modeBrowser:
				check = a.checkLinksInBrowser
			case modeHTTP:
				check = a.checkLinksOverHTTP
			default:
				return fmt.Errorf("unknown --mode %q (want %s or %s)", mode, modeBrowser, modeHTTP)
			}

			r, err := check(cmd.Context(), url)
			if err != nil && !errors.Is(err, &errs.AppError{Kind: errs.BrokenLinks}) {
				return err
			}
			if werr := report.WriteLinkReport(a.out, r); werr != nil {
				return werr
			}
			if r.HasBroken() {
				return &errs.AppError{
					Kind:    errs.BrokenLinks,
					Message: fmt.Sprintf("Found %d broken link(s)", len(r.Broken)),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", modeBrowser, "how to load the page: browser or http")
	return cmd
}

func (a *app) checkLinksInBrowser(ctx context.Context, url string) (model.LinkReport, error) {
	site, session, err := a.openSite()
	if err != nil {
		return model.LinkReport{}, err
	}
	defer a.closeSession(session)

	return site.CheckLinks(ctx, url)
}

func (a *app) checkLinksOverHTTP(ctx context.Context, url string) (model.LinkReport, error) {
	r, err := a.httpEngine().CheckPage(ctx, url)
	if err != nil {
		return model.LinkReport{}, err
	}
	return *r, nil
}
