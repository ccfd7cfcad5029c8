//go:build e2e

package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bahjat/fashionhub-e2e/internal/linkcheck"
)

const scenarioPage = `<!DOCTYPE html><html><body>
<a href="/ok">A</a>
<a href="/missing">B</a>
<a href="/missing">B again</a>
<a href="/moved">C</a>
<a href="http://127.0.0.1:1/unreachable">D</a>
<a href="javascript:void(0)">Cart</a>
<script>
console.error("x");
console.error("x");
throw new TypeError("checkout is not defined");
</script>
</body></html>`

func newScenarioServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, scenarioPage)
	})
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func launchForTest(t *testing.T) *Session {
	t.Helper()
	s, err := Launch(Options{
		Headless:     true,
		Timeout:      15 * time.Second,
		Preinstalled: os.Getenv("PLAYWRIGHT_PREINSTALLED") != "",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_MonitorAndLinks(t *testing.T) {
	ts := newScenarioServer(t)
	s := launchForTest(t)

	s.Monitor().Start()
	s.Monitor().Start()
	require.NoError(t, s.Goto(ts.URL))

	require.Eventually(t, func() bool {
		return s.Monitor().Verify().Total == 3
	}, 5*time.Second, 50*time.Millisecond)

	summary := s.Monitor().Verify()
	assert.Equal(t, []string{"x", "x"}, summary.ConsoleErrors)
	assert.Equal(t, []string{"TypeError: checkout is not defined"}, summary.PageErrors)

	v := linkcheck.NewValidator(s, linkcheck.Options{Concurrency: 4, Timeout: 5 * time.Second}, nil)
	report, err := v.VerifyNoBrokenLinks(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found 2 broken link(s)")

	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Redirect)
	assert.Equal(t, []string{
		"[404] " + ts.URL + "/missing",
		"[Error] http://127.0.0.1:1/unreachable",
	}, report.Broken)
}

func TestSession_Screenshot(t *testing.T) {
	ts := newScenarioServer(t)
	s := launchForTest(t)
	require.NoError(t, s.Goto(ts.URL+"/ok"))

	path := filepath.Join(t.TempDir(), "shots", "ok.png")
	require.NoError(t, s.Screenshot(path))
	assert.FileExists(t, path)
}

func TestSession_CloseTwice(t *testing.T) {
	s := launchForTest(t)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
