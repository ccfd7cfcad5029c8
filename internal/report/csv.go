package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// DefaultCSVFile is where the pulls command writes its CSV export.
const DefaultCSVFile = "pull-request.csv"

const dateLayout = "2006-01-02"

var pullRequestHeader = []string{"PR Number", "Title", "Author", "State", "Created Date", "URL"}

func pullRequestRow(pr model.PullRequest) []string {
	return []string{
		strconv.Itoa(pr.Number),
		pr.Title,
		pr.Author,
		pr.State,
		pr.CreatedAt.UTC().Format(dateLayout),
		pr.HTMLURL,
	}
}

// WritePullRequestCSV writes the recent pull requests of stats to path and
// returns its absolute path. Titles with commas, quotes or newlines are
// quoted as RFC 4180 requires.
func WritePullRequestCSV(path string, stats model.PullRequestStats) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("report: resolve %s: %w", path, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("report: create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(pullRequestHeader); err != nil {
		return "", fmt.Errorf("report: write csv: %w", err)
	}
	for _, pr := range stats.Recent {
		if err := w.Write(pullRequestRow(pr)); err != nil {
			return "", fmt.Errorf("report: write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report: close csv: %w", err)
	}
	return abs, nil
}
