package fashionhub

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// flow carries the first failure of a page-object chain.
type flow struct {
	site *Site
	err  error
}

// do runs fn unless an earlier step failed.
func (f *flow) do(step string, fn func() error) {
	if f.err != nil {
		return
	}
	if err := fn(); err != nil {
		f.err = fmt.Errorf("%s: %w", step, err)
		f.site.Logger.Error("page step failed", "step", step, "error", err)
		f.capture(step)
	}
}

func (f *flow) capture(step string) {
	if f.site.ScreenshotDir == "" || f.site.Session == nil {
		return
	}
	path := filepath.Join(f.site.ScreenshotDir, screenshotName(step, time.Now()))
	if err := f.site.Session.Screenshot(path); err != nil {
		f.site.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	f.site.Logger.Info("screenshot saved", "path", path)
}

// Err returns the first error of the chain, or nil.
func (f *flow) Err() error { return f.err }

var unsafeName = regexp.MustCompile(`[^a-z0-9]+`)

func screenshotName(step string, at time.Time) string {
	name := unsafeName.ReplaceAllString(strings.ToLower(step), "-")
	return fmt.Sprintf("%s-%s.png", at.UTC().Format("20060102T150405"), strings.Trim(name, "-"))
}
