package analyzer

import (
	"context"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// LinkReporter checks the links of a single page. linkcheck.Engine is the
// production implementation.
type LinkReporter interface {
	CheckPage(ctx context.Context, targetURL string) (*model.LinkReport, error)
}
