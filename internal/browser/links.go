package browser

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/playwright-community/playwright-go"
)

// anchorsScript reads the resolved href of every anchor in the rendered DOM.
const anchorsScript = `els => els.map(e => e.href)`

// Links returns the absolute href of every anchor on the current page, in
// document order. Anchors without an href yield an empty string.
func (s *Session) Links(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.page.Locator("a").EvaluateAll(anchorsScript)
	if err != nil {
		return nil, fmt.Errorf("browser: read anchors: %w", err)
	}
	return toStrings(res), nil
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		out = append(out, s)
	}
	return out
}

// Probe requests link through the page's API request context, which shares
// the browser context's cookies. Redirects are reported, not followed. A
// HEAD refused with 403 or 405 is retried as GET.
func (s *Session) Probe(ctx context.Context, link string) (int, error) {
	timeout, err := requestTimeout(ctx, s.timeout)
	if err != nil {
		return 0, err
	}

	status, err := fetchStatus(s.page.Request().Head(link, playwright.APIRequestContextHeadOptions{
		Timeout:      playwright.Float(timeout),
		MaxRedirects: playwright.Int(0),
	}))
	if err != nil {
		return 0, err
	}
	if status != http.StatusForbidden && status != http.StatusMethodNotAllowed {
		return status, nil
	}

	if timeout, err = requestTimeout(ctx, s.timeout); err != nil {
		return 0, err
	}
	return fetchStatus(s.page.Request().Get(link, playwright.APIRequestContextGetOptions{
		Timeout:      playwright.Float(timeout),
		MaxRedirects: playwright.Int(0),
	}))
}

func fetchStatus(resp playwright.APIResponse, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Dispose() }()
	return resp.Status(), nil
}

// requestTimeout converts the time left on ctx into Playwright milliseconds,
// capped at fallback.
func requestTimeout(ctx context.Context, fallback time.Duration) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	d := fallback
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = left
		}
	}
	if d <= 0 {
		return 0, context.DeadlineExceeded
	}
	// 0 means no timeout to Playwright.
	return max(1, float64(d.Milliseconds())), nil
}
