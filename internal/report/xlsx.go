package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// PullRequestSheet is the worksheet WritePullRequestXLSX fills.
const PullRequestSheet = "Pull Requests"

// WritePullRequestXLSX writes the same columns as the CSV export to a
// workbook at path and returns its absolute path. PR numbers are stored as
// numbers, everything else as text.
func WritePullRequestXLSX(path string, stats model.PullRequestStats) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("report: resolve %s: %w", path, err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", PullRequestSheet); err != nil {
		return "", fmt.Errorf("report: name sheet: %w", err)
	}

	header := make([]any, len(pullRequestHeader))
	for i, h := range pullRequestHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(PullRequestSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("report: write header: %w", err)
	}

	for i, pr := range stats.Recent {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []any{
			pr.Number,
			pr.Title,
			pr.Author,
			pr.State,
			pr.CreatedAt.UTC().Format(dateLayout),
			pr.HTMLURL,
		}
		if err := f.SetSheetRow(PullRequestSheet, cell, &row); err != nil {
			return "", fmt.Errorf("report: write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(abs); err != nil {
		return "", fmt.Errorf("report: save xlsx: %w", err)
	}
	return abs, nil
}
