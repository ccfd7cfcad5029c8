// Package report renders check results for people: styled text for the
// terminal and CSV/XLSX files for pull-request exports.
package report

import (
	"fmt"
	"io"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// WriteLinkReport prints the totals of a link check and lists each broken
// entry.
func WriteLinkReport(w io.Writer, r model.LinkReport) error {
	st := newStyles(w)
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", st.title.Render("Link Check"))
	ew.printf("%s\n", st.rule)
	if r.URL != "" {
		ew.printf("%s %s\n", st.label.Render("Page:"), r.URL)
	}
	ew.printf("%s %d\n", st.label.Render("Total links checked:"), r.Checked)
	ew.printf("%s %s\n", st.label.Render("Valid (2xx):"), st.ok.Render(fmt.Sprint(r.Valid)))
	ew.printf("%s %s\n", st.label.Render("Redirect (3xx):"), st.warn.Render(fmt.Sprint(r.Redirect)))

	broken := st.ok.Render("0")
	if r.HasBroken() {
		broken = st.bad.Render(fmt.Sprint(len(r.Broken)))
	}
	ew.printf("%s %s\n", st.label.Render("Broken:"), broken)

	if r.HasBroken() {
		ew.printf("\n%s\n", st.bad.Render("Broken links:"))
		for i, entry := range r.Broken {
			ew.printf("   %d. %s\n", i+1, entry)
		}
	}
	ew.printf("%s\n", st.rule)
	return ew.err
}

// WriteErrorSummary prints what the console monitor recorded.
func WriteErrorSummary(w io.Writer, s model.ErrorSummary) error {
	st := newStyles(w)
	ew := &errWriter{w: w}

	total := st.ok.Render("0")
	if s.Total > 0 {
		total = st.bad.Render(fmt.Sprint(s.Total))
	}

	ew.printf("\n%s\n", st.title.Render("Console Error Summary"))
	ew.printf("%s\n", st.rule)
	ew.printf("%s %s\n", st.label.Render("Total errors:"), total)
	ew.printf("%s %d\n", st.label.Render("Console errors:"), len(s.ConsoleErrors))
	ew.printf("%s %d\n", st.label.Render("Page errors:"), len(s.PageErrors))

	if len(s.ConsoleErrors) > 0 {
		ew.printf("\n%s\n", st.warn.Render("Console errors:"))
		for i, text := range s.ConsoleErrors {
			ew.printf("   %d. %s\n", i+1, text)
		}
	}
	if len(s.PageErrors) > 0 {
		ew.printf("\n%s\n", st.warn.Render("Uncaught exceptions:"))
		for i, desc := range s.PageErrors {
			ew.printf("   %d. %s\n", i+1, desc)
		}
	}
	ew.printf("%s\n", st.rule)
	return ew.err
}

// WritePullRequests prints the open pull-request count and the recent ones.
func WritePullRequests(w io.Writer, stats model.PullRequestStats) error {
	st := newStyles(w)
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", st.title.Render("Pull Request Analysis"))
	ew.printf("%s\n", st.rule)
	ew.printf("%s %s/%s\n", st.label.Render("Repository:"), stats.Owner, stats.Repo)
	ew.printf("%s %d\n", st.label.Render("Total Open PRs:"), stats.TotalOpen)

	if len(stats.Recent) > 0 {
		ew.printf("\n%s\n", st.title.Render("Recent Pull Requests:"))
		for i, pr := range stats.Recent {
			ew.printf("   %d. #%d - %s\n", i+1, pr.Number, pr.Title)
			ew.printf("      %s %s\n", st.label.Render("Author:"), pr.Author)
		}
	}
	ew.printf("%s\n", st.rule)
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
