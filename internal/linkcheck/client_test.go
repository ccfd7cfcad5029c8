package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(true)
	if c == nil {
		t.Fatal("NewHTTPClient returned nil")
	}
	if c.client == nil {
		t.Fatal("internal http.Client is nil")
	}
}

func TestHTTPClient_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), UserAgent)
		}
		if r.Header.Get("Accept") != "text/html" {
			t.Errorf("Accept = %q, want %q", r.Header.Get("Accept"), "text/html")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "<html><body>FashionHub</body></html>")
	}))
	defer ts.Close()

	c := &HTTPClient{client: ts.Client()}
	body, status, err := c.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = body.Close() }()

	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(data) != "<html><body>FashionHub</body></html>" {
		t.Errorf("body = %q", string(data))
	}
}

func TestHTTPClient_Fetch_BodyIsCapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.Copy(w, io.LimitReader(neverEnding('a'), maxResponseBody+1024))
	}))
	defer ts.Close()

	c := &HTTPClient{client: ts.Client()}
	body, _, err := c.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = body.Close() }()

	n, err := io.Copy(io.Discard, body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != maxResponseBody {
		t.Errorf("read %d bytes, want %d", n, maxResponseBody)
	}
}

func TestHTTPClient_Fetch_InvalidURL(t *testing.T) {
	c := NewHTTPClient(false)
	_, _, err := c.Fetch(context.Background(), "://bad-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestHTTPClient_Fetch_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := &HTTPClient{client: ts.Client()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.Fetch(ctx, ts.URL)
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}

func TestHTTPClient_Fetch_PrivateAddressBlocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	_, _, err := NewHTTPClient(true).Fetch(context.Background(), ts.URL)
	if !errors.Is(err, errBlockedAddress) {
		t.Fatalf("err = %v, want errBlockedAddress", err)
	}
}

func TestRedirectPolicy(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		via     int
		wantErr error
	}{
		{name: "https within limit", scheme: "https", via: 3},
		{name: "http first hop", scheme: "http", via: 0},
		{name: "too many redirects", scheme: "https", via: 5, wantErr: errTooManyRedirects},
		{name: "blocked ftp scheme", scheme: "ftp", via: 0, wantErr: errBlockedRedirect},
		{name: "blocked file scheme", scheme: "file", via: 0, wantErr: errBlockedRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{URL: &url.URL{Scheme: tt.scheme, Host: "pocketaces2.github.io"}} //nolint:exhaustruct
			via := make([]*http.Request, tt.via)

			err := redirectPolicy(req, via)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("redirectPolicy() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type neverEnding byte

func (b neverEnding) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b)
	}
	return len(p), nil
}
