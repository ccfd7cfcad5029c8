package linkcheck

import (
	"context"
	"io"
	"net/http"
	"time"
)

// HTTPProber checks links with plain HTTP requests. Redirects are not
// followed so a 301 is reported as a redirect rather than as its target.
type HTTPProber struct {
	client *http.Client
}

// ProberOptions configures an HTTPProber.
type ProberOptions struct {
	Concurrency  int
	Timeout      time.Duration
	BlockPrivate bool
}

// NewHTTPProber returns an HTTPProber whose transport is sized for the
// validator's concurrency.
func NewHTTPProber(opts ProberOptions) *HTTPProber {
	if opts.Concurrency < 1 {
		opts.Concurrency = defaultConcurrency
	}
	return newHTTPProber(opts.Timeout, &http.Transport{
		DialContext:         newDialer(opts.BlockPrivate).DialContext,
		MaxConnsPerHost:     opts.Concurrency,
		MaxIdleConnsPerHost: opts.Concurrency,
		IdleConnTimeout:     90 * time.Second,
	})
}

func newHTTPProber(timeout time.Duration, transport http.RoundTripper) *HTTPProber {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProber{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Probe sends a HEAD request. Servers that refuse HEAD with 403 or 405 get
// a second chance with GET, whose status then decides.
func (p *HTTPProber) Probe(ctx context.Context, link string) (int, error) {
	status, err := p.do(ctx, http.MethodHead, link)
	if err != nil {
		return 0, err
	}
	if status == http.StatusForbidden || status == http.StatusMethodNotAllowed {
		return p.do(ctx, http.MethodGet, link)
	}
	return status, nil
}

func (p *HTTPProber) do(ctx context.Context, method, link string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, link, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if method == http.MethodGet {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 64<<10)
	}
	return resp.StatusCode, nil
}
