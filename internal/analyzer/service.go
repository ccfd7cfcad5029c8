package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/runid"
)

// Service orchestrates a LinkReporter and logs results.
type Service struct {
	reporter LinkReporter
	logger   *slog.Logger
}

// NewService creates a Service backed by the given reporter.
func NewService(reporter LinkReporter, logger *slog.Logger) *Service {
	return &Service{reporter: reporter, logger: logger}
}

// CheckLinks delegates to the reporter and logs the outcome. A page with
// broken links is a successful check; errors mean the page itself could not
// be checked.
func (s *Service) CheckLinks(ctx context.Context, targetURL string) (*model.LinkReport, error) {
	logger := s.logger.With("url", targetURL, "run_id", runid.FromContext(ctx))

	report, err := s.reporter.CheckPage(ctx, targetURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "Link check timed out. The target URL may be slow to respond.",
				Cause:   err,
			}
		}

		attrs := []any{"error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		logger.Error("link check failed", attrs...)
		return nil, err
	}

	logger.Info("link check served",
		"checked", report.Checked,
		"valid", report.Valid,
		"redirect", report.Redirect,
		"broken", len(report.Broken),
	)
	return report, nil
}
