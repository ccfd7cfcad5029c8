package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bahjat/fashionhub-e2e/internal/linkcheck"
	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
)

// mockReporter implements LinkReporter for testing.
type mockReporter struct {
	report *model.LinkReport
	err    error
	gotURL string
}

func (m *mockReporter) CheckPage(_ context.Context, targetURL string) (*model.LinkReport, error) {
	m.gotURL = targetURL
	return m.report, m.err
}

func newTestMux(reporter LinkReporter) *http.ServeMux {
	logger := slog.Default()
	svc := NewService(reporter, logger)
	transport := NewTransport(svc, logger)
	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)
	return mux
}

func postCheck(mux http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/links/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleCheckLinks_Success(t *testing.T) {
	reporter := &mockReporter{
		report: &model.LinkReport{
			URL:      "https://pocketaces2.github.io/fashionhub/",
			Checked:  4,
			Valid:    2,
			Redirect: 1,
			Broken:   []string{"[404] https://pocketaces2.github.io/fashionhub/missing.html"},
		},
	}
	rec := postCheck(newTestMux(reporter), `{"url": "https://pocketaces2.github.io/fashionhub/"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if reporter.gotURL != "https://pocketaces2.github.io/fashionhub/" {
		t.Errorf("reporter got URL %q", reporter.gotURL)
	}

	var report model.LinkReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Checked != 4 || report.Valid != 2 || report.Redirect != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Broken) != 1 {
		t.Errorf("broken = %v, want 1 entry", report.Broken)
	}
}

func TestHandleCheckLinks_FailOnBroken(t *testing.T) {
	reporter := &mockReporter{
		report: &model.LinkReport{Checked: 2, Valid: 1, Broken: []string{"[500] https://shop.test/x"}},
	}
	rec := postCheck(newTestMux(reporter), `{"url": "https://shop.test/", "fail_on_broken": true}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var body brokenLinksResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "Found 1 broken link(s)" {
		t.Errorf("Message = %q", body.Message)
	}
	if body.Report == nil || body.Report.Checked != 2 {
		t.Errorf("Report = %+v", body.Report)
	}
}

func TestHandleCheckLinks_FailOnBrokenHealthyPage(t *testing.T) {
	reporter := &mockReporter{report: &model.LinkReport{Checked: 1, Valid: 1, Broken: []string{}}}
	rec := postCheck(newTestMux(reporter), `{"url": "https://shop.test/", "fail_on_broken": true}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleCheckLinks_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty url", body: `{"url": ""}`},
		{name: "missing body", body: ""},
		{name: "malformed json", body: `{invalid json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &mockReporter{}
			rec := postCheck(newTestMux(reporter), tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if reporter.gotURL != "" {
				t.Errorf("reporter should not be called, got %q", reporter.gotURL)
			}
		})
	}
}

func TestHandleCheckLinks_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: &errs.AppError{Kind: errs.InvalidInput, Message: "bad url"}, want: http.StatusBadRequest},
		{name: "unreachable", err: &errs.AppError{Kind: errs.Unreachable, Message: "cannot reach", UpstreamStatus: 404}, want: http.StatusBadGateway},
		{name: "timeout", err: &errs.AppError{Kind: errs.Timeout, Message: "slow", Cause: context.DeadlineExceeded}, want: http.StatusGatewayTimeout},
		{name: "parsing failed", err: &errs.AppError{Kind: errs.ParsingFailed, Message: "bad html"}, want: http.StatusInternalServerError},
		{name: "plain error", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCheck(newTestMux(&mockReporter{err: tt.err}), `{"url": "https://shop.test/"}`)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}

			var body model.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.StatusCode != tt.want {
				t.Errorf("StatusCode = %d, want %d", body.StatusCode, tt.want)
			}
			if body.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestHandleCheckLinks_WrongMethod(t *testing.T) {
	mux := newTestMux(&mockReporter{})

	req := httptest.NewRequest(http.MethodGet, "/links/check", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	// ServeMux returns 405 for method mismatch.
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleHealth(t *testing.T) {
	mux := newTestMux(&mockReporter{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestService_DeadlineBecomesTimeout(t *testing.T) {
	svc := NewService(&mockReporter{err: context.DeadlineExceeded}, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := svc.CheckLinks(ctx, "https://slow.shop.test/")
	var appErr *errs.AppError
	if !errors.As(err, &appErr) || appErr.Kind != errs.Timeout {
		t.Fatalf("err = %v, want Timeout AppError", err)
	}
}

// TestHandleCheckLinks_RealEngine runs the endpoint against a local shop
// through the plain HTTP fetcher and prober.
func TestHandleCheckLinks_RealEngine(t *testing.T) {
	shop := http.NewServeMux()
	shop.HandleFunc("/fashionhub/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fashionhub/":
			w.Header().Set("Content-Type", "text/html")
			_, _ = fmt.Fprint(w, `<html><body>
				<a href="about.html">About</a>
				<a href="sale.html">Sale</a>
				<a href="about.html">About</a>
				<a href="javascript:void(0)">Bag</a>
			</body></html>`)
		case "/fashionhub/about.html":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	})
	ts := httptest.NewServer(shop)
	defer ts.Close()

	prober := linkcheck.NewHTTPProber(linkcheck.ProberOptions{Concurrency: 2, Timeout: 2 * time.Second})
	validator := linkcheck.NewValidator(prober, linkcheck.Options{Concurrency: 2, Timeout: 2 * time.Second}, slog.Default())
	engine := linkcheck.NewEngine(linkcheck.NewHTTPClient(false), validator)

	rec := postCheck(newTestMux(engine), fmt.Sprintf(`{"url": %q}`, ts.URL+"/fashionhub/"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var report model.LinkReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Checked != 2 || report.Valid != 1 {
		t.Errorf("report = %+v", report)
	}
	want := "[404] " + ts.URL + "/fashionhub/sale.html"
	if len(report.Broken) != 1 || report.Broken[0] != want {
		t.Errorf("broken = %v, want [%s]", report.Broken, want)
	}
}
