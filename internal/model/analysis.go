package model

import "time"

// LinkReport is the outcome of one link validation pass over a page.
// Valid + Redirect + len(Broken) always equals Checked.
type LinkReport struct {
	URL      string   `json:"url,omitempty"`
	Checked  int      `json:"checked"`
	Valid    int      `json:"valid"`
	Redirect int      `json:"redirect"`
	Broken   []string `json:"broken"`
}

// HasBroken reports whether at least one link failed.
func (r LinkReport) HasBroken() bool {
	return len(r.Broken) > 0
}

// ErrorSummary is what the console monitor saw on one page session.
type ErrorSummary struct {
	Total         int      `json:"total"`
	ConsoleErrors []string `json:"console_errors"`
	PageErrors    []string `json:"page_errors"`
}

// PullRequest is the subset of a GitHub pull request the harness reports on.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	HTMLURL   string    `json:"html_url"`
}

// PullRequestStats summarizes the open pull requests of a repository.
type PullRequestStats struct {
	Owner     string        `json:"owner"`
	Repo      string        `json:"repo"`
	TotalOpen int           `json:"total_open"`
	Recent    []PullRequest `json:"recent"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
