package linkcheck

import (
	"context"
	"errors"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
)

// Engine runs link checks on pages fetched over plain HTTP.
type Engine struct {
	fetcher   Fetcher
	validator *Validator
}

// NewEngine returns an Engine backed by the given Fetcher and Validator.
func NewEngine(fetcher Fetcher, validator *Validator) *Engine {
	return &Engine{fetcher: fetcher, validator: validator}
}

// CheckPage fetches targetURL, extracts its links and validates them.
// Broken links are part of the report, not an error; errors describe a page
// that could not be checked at all.
func (e *Engine) CheckPage(ctx context.Context, targetURL string) (*model.LinkReport, error) {
	report, err := e.validator.VerifyNoBrokenLinks(ctx, NewHTTPPage(e.fetcher, targetURL))
	if err != nil && !errors.Is(err, &errs.AppError{Kind: errs.BrokenLinks}) {
		return nil, err
	}
	return &report, nil
}
