// Package pullrequests reads open pull requests from the GitHub REST API.
package pullrequests

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/runid"
)

const (
	userAgent          = "FashionHub-Test-Automation/1.0.0"
	perPage            = 100
	defaultRecentLimit = 5
	requestTimeout     = 30 * time.Second
)

// Options configures NewClient.
type Options struct {
	// Token is optional; unauthenticated clients get a lower rate limit.
	Token string
	// BaseURL overrides https://api.github.com/, mainly for tests.
	BaseURL string
	// RecentLimit is how many pull requests Stats returns in Recent.
	RecentLimit int
	// MaxPages bounds pagination; 0 or less reads every page.
	MaxPages int
	// HTTPClient is the base transport. The token, when set, is layered on top.
	HTTPClient *http.Client
}

// Client lists pull requests of a repository.
type Client struct {
	gh          *github.Client
	recentLimit int
	maxPages    int
	logger      *slog.Logger
}

// NewClient returns a GitHub client. The API is asked for
// application/vnd.github.v3+json, which go-github sends by default.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RecentLimit < 1 {
		opts.RecentLimit = defaultRecentLimit
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	if opts.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}))
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("pullrequests: invalid base URL %q: %w", opts.BaseURL, err)
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:          gh,
		recentLimit: opts.RecentLimit,
		maxPages:    opts.MaxPages,
		logger:      logger,
	}, nil
}

// OpenPullRequests lists the open pull requests of owner/repo, newest first,
// 100 per page.
func (c *Client) OpenPullRequests(ctx context.Context, owner, repo string) ([]model.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var out []model.PullRequest
	for page := 1; ; page++ {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, apiError(err)
		}
		for _, pr := range prs {
			out = append(out, convert(pr))
		}

		c.logger.Debug("fetched pull requests",
			"repo", owner+"/"+repo,
			"page", page,
			"count", len(prs),
			"run_id", runid.FromContext(ctx),
		)

		if resp.NextPage == 0 || (c.maxPages > 0 && page >= c.maxPages) {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}

// Stats counts the open pull requests of owner/repo and keeps the first few.
func (c *Client) Stats(ctx context.Context, owner, repo string) (model.PullRequestStats, error) {
	prs, err := c.OpenPullRequests(ctx, owner, repo)
	if err != nil {
		return model.PullRequestStats{}, err
	}

	stats := model.PullRequestStats{
		Owner:     owner,
		Repo:      repo,
		TotalOpen: len(prs),
		Recent:    prs[:min(len(prs), c.recentLimit)],
	}
	if stats.Recent == nil {
		stats.Recent = []model.PullRequest{}
	}
	c.logger.Info("pull request stats",
		"repo", owner+"/"+repo,
		"total_open", stats.TotalOpen,
		"recent", len(stats.Recent),
		"run_id", runid.FromContext(ctx),
	)
	return stats, nil
}

func convert(pr *github.PullRequest) model.PullRequest {
	return model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		State:     pr.GetState(),
		CreatedAt: pr.GetCreatedAt().Time,
		HTMLURL:   pr.GetHTMLURL(),
	}
}

// apiError maps go-github errors onto the application's error kinds.
func apiError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return upstream(rateErr.Response.StatusCode, rateErr.Message, err)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return upstream(ghErr.Response.StatusCode, ghErr.Message, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &errs.AppError{Kind: errs.Timeout, Message: "GitHub API request timed out.", Cause: err}
	}
	return &errs.AppError{Kind: errs.Unreachable, Message: "GitHub API could not be reached.", Cause: err}
}

func upstream(status int, message string, cause error) error {
	return &errs.AppError{
		Kind:           errs.Upstream,
		UpstreamStatus: status,
		Message:        fmt.Sprintf("API Error: %d - %s", status, message),
		Cause:          cause,
	}
}
