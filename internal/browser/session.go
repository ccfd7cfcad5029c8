// Package browser drives a Chromium page through Playwright and exposes it
// to the link validator and the console monitor.
package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Bahjat/fashionhub-e2e/internal/consolemon"
)

const defaultTimeout = 30 * time.Second

// Options configures Launch.
type Options struct {
	Headless bool
	SlowMo   time.Duration
	// Timeout is the default for page actions and link probes.
	Timeout time.Duration
	// Preinstalled skips the driver and browser download.
	Preinstalled bool
	Viewport     *playwright.Size
}

// Session is one browser page together with the resources that own it. The
// page's console and page errors are recorded by Monitor.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	monitor *consolemon.Monitor
	timeout time.Duration
	logger  *slog.Logger
}

// Launch starts Chromium and opens a single page.
func Launch(opts Options, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Viewport == nil {
		opts.Viewport = &playwright.Size{Width: 1280, Height: 720}
	}

	if !opts.Preinstalled {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("browser: install playwright: %w", err)
		}
	}

	s := &Session{timeout: opts.Timeout, logger: logger}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("browser: start playwright driver: %w", err)
	}
	s.pw = pw

	s.browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		return nil, s.abort(fmt.Errorf("browser: launch chromium: %w", err))
	}

	s.context, err = s.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: opts.Viewport,
	})
	if err != nil {
		return nil, s.abort(fmt.Errorf("browser: new context: %w", err))
	}

	s.page, err = s.context.NewPage()
	if err != nil {
		return nil, s.abort(fmt.Errorf("browser: new page: %w", err))
	}
	s.page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))
	s.monitor = consolemon.New(pageEvents{page: s.page}, logger)

	logger.Debug("browser session started", "headless", opts.Headless, "version", s.browser.Version())
	return s, nil
}

func (s *Session) abort(err error) error {
	if cerr := s.Close(); cerr != nil {
		return errors.Join(err, cerr)
	}
	return err
}

// Page returns the underlying Playwright page.
func (s *Session) Page() playwright.Page { return s.page }

// Monitor returns the console monitor bound to the page. Every caller gets
// the same monitor, so starting it twice installs one set of handlers.
func (s *Session) Monitor() *consolemon.Monitor { return s.monitor }

// Timeout is the default wait for page actions.
func (s *Session) Timeout() time.Duration { return s.timeout }

// URL returns the address of the current document.
func (s *Session) URL() string { return s.page.URL() }

// Goto navigates the page and waits for the load event.
func (s *Session) Goto(url string) error {
	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("browser: goto %s: %w", url, err)
	}
	return nil
}

// WaitForLoad blocks until the page reaches state, for example
// playwright.LoadStateNetworkidle.
func (s *Session) WaitForLoad(state *playwright.LoadState) error {
	if state == nil {
		state = playwright.LoadStateLoad
	}
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{State: state}); err != nil {
		return fmt.Errorf("browser: wait for %s: %w", *state, err)
	}
	return nil
}

// Screenshot writes a full-page PNG to path, creating its directory.
func (s *Session) Screenshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("browser: screenshot dir: %w", err)
	}
	if _, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("browser: screenshot: %w", err)
	}
	return nil
}

// Close releases the page, context, browser and driver, in that order.
// It is safe to call on a partially launched session.
func (s *Session) Close() error {
	var errs []error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close page: %w", err))
		}
	}
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop driver: %w", err))
		}
	}
	s.page, s.context, s.browser, s.pw = nil, nil, nil, nil
	return errors.Join(errs...)
}
