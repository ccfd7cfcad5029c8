package linkcheck

import (
	"context"
	"net/url"

	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
)

const invalidURLMessage = "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com)."

// HTTPPage is a LinkSource that fetches a page over HTTP and reads its
// anchors from the static HTML. It does not run scripts; use a browser
// session for pages that render links client-side.
type HTTPPage struct {
	fetcher Fetcher
	url     string
}

// NewHTTPPage returns a LinkSource for targetURL.
func NewHTTPPage(fetcher Fetcher, targetURL string) *HTTPPage {
	return &HTTPPage{fetcher: fetcher, url: targetURL}
}

// URL returns the page address.
func (p *HTTPPage) URL() string { return p.url }

// Links fetches the page and extracts its anchors.
func (p *HTTPPage) Links(ctx context.Context) ([]string, error) {
	base, err := ParseTarget(p.url)
	if err != nil {
		return nil, err
	}

	body, statusCode, err := p.fetcher.Fetch(ctx, p.url)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The provided URL could not be reached. Check the address.",
			Cause:   err,
		}
	}
	defer func() { _ = body.Close() }()

	if statusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: statusCode,
			Message:        "The provided URL returned an error status.",
		}
	}

	links, err := ExtractLinks(body, base)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		}
	}
	return links, nil
}

// ParseTarget validates a page address: it must be an absolute http(s) URL.
func ParseTarget(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &errs.AppError{Kind: errs.InvalidInput, Message: invalidURLMessage, Cause: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &errs.AppError{Kind: errs.InvalidInput, Message: invalidURLMessage}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errs.AppError{Kind: errs.InvalidInput, Message: "Only http and https URLs are supported."}
	}
	return parsed, nil
}
