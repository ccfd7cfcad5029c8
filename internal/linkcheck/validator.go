package linkcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/runid"
)

const (
	defaultConcurrency = 10
	defaultTimeout     = 10 * time.Second
)

// LinkSource enumerates the hyperlink targets of a loaded page.
type LinkSource interface {
	Links(ctx context.Context) ([]string, error)
}

// Prober issues a lightweight request for a link and returns its HTTP status.
type Prober interface {
	Probe(ctx context.Context, link string) (status int, err error)
}

// pageAddress is implemented by sources that know which page they read.
type pageAddress interface {
	URL() string
}

// Options tunes a Validator.
type Options struct {
	// Concurrency bounds the number of in-flight probes.
	Concurrency int
	// Timeout bounds each probe; a probe that runs out of time is broken.
	Timeout time.Duration
	// RequestsPerSecond throttles probes against the target; 0 disables it.
	RequestsPerSecond float64
}

// Validator checks links through a Prober.
type Validator struct {
	prober  Prober
	opts    Options
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewValidator returns a Validator. Zero option values fall back to a
// concurrency of 10 and a 10s probe timeout.
func NewValidator(prober Prober, opts Options, logger *slog.Logger) *Validator {
	if opts.Concurrency < 1 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), max(1, int(opts.RequestsPerSecond)))
	}

	return &Validator{
		prober:  prober,
		opts:    opts,
		limiter: limiter,
		logger:  logger,
	}
}

type outcome struct {
	status int
	err    error
}

// Check probes every unique navigable link and tallies the results. Broken
// entries are listed in discovery order as "[status] url", or "[Error] url"
// when the request itself failed.
func (v *Validator) Check(ctx context.Context, links []string) model.LinkReport {
	unique := Unique(Navigable(links))

	// Each probe owns one slot; slots are merged after Wait.
	outcomes := make([]outcome, len(unique))

	var g errgroup.Group
	g.SetLimit(v.opts.Concurrency)
	for i, link := range unique {
		g.Go(func() error {
			outcomes[i] = v.probe(ctx, link)
			return nil
		})
	}
	_ = g.Wait()

	report := model.LinkReport{Checked: len(unique), Broken: []string{}}
	for i, o := range outcomes {
		if o.err != nil {
			report.Broken = append(report.Broken, fmt.Sprintf("[Error] %s", unique[i]))
			continue
		}
		switch Classify(o.status) {
		case Valid:
			report.Valid++
		case Redirect:
			report.Redirect++
		case Broken:
			report.Broken = append(report.Broken, fmt.Sprintf("[%d] %s", o.status, unique[i]))
		}
	}
	return report
}

func (v *Validator) probe(ctx context.Context, link string) outcome {
	if err := v.limiter.Wait(ctx); err != nil {
		return outcome{err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, v.opts.Timeout)
	defer cancel()

	status, err := v.prober.Probe(ctx, link)
	if err != nil {
		v.logger.Debug("link probe failed", "link", link, "error", err, "run_id", runid.FromContext(ctx))
		return outcome{err: err}
	}
	v.logger.Debug("link probed", "link", link, "status", status, "run_id", runid.FromContext(ctx))
	return outcome{status: status}
}

// VerifyNoBrokenLinks reads the links of src, checks them and logs a
// summary. It returns an *errs.AppError of kind BrokenLinks, with the message
// "Found N broken link(s)", iff at least one link is broken. An error from src
// is returned unmodified.
func (v *Validator) VerifyNoBrokenLinks(ctx context.Context, src LinkSource) (model.LinkReport, error) {
	links, err := src.Links(ctx)
	if err != nil {
		return model.LinkReport{}, err
	}

	report := v.Check(ctx, links)
	if p, ok := src.(pageAddress); ok {
		report.URL = p.URL()
	}
	v.logReport(ctx, report)

	if report.HasBroken() {
		return report, &errs.AppError{
			Kind:    errs.BrokenLinks,
			Message: fmt.Sprintf("Found %d broken link(s)", len(report.Broken)),
		}
	}
	return report, nil
}

func (v *Validator) logReport(ctx context.Context, report model.LinkReport) {
	logger := v.logger.With("url", report.URL, "run_id", runid.FromContext(ctx))

	logger.Info("link check complete",
		"checked", report.Checked,
		"valid", report.Valid,
		"redirect", report.Redirect,
		"broken", len(report.Broken),
	)
	for i, entry := range report.Broken {
		logger.Warn("broken link", "n", i+1, "entry", entry)
	}
}
