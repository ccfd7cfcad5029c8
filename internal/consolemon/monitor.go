// Package consolemon records the console errors and uncaught exceptions a
// browser page emits during one session.
package consolemon

import (
	"log/slog"
	"sync"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// ConsoleMessage is a message the page logged to its console.
type ConsoleMessage struct {
	Type string
	Text string
}

// PageError is an exception the page script did not catch.
type PageError struct {
	Name    string
	Message string
}

func (e PageError) String() string {
	name := e.Name
	if name == "" {
		name = "Error"
	}
	return name + ": " + e.Message
}

// EventSource delivers page events. Handlers may be called from any
// goroutine.
type EventSource interface {
	OnConsoleMessage(func(ConsoleMessage))
	OnPageError(func(PageError))
}

// PageErrorLog is the per-session record of what went wrong on a page.
type PageErrorLog struct {
	mu            sync.Mutex
	installed     bool
	consoleErrors []string
	pageErrors    []string
}

// ConsoleErrors returns a copy of the console errors in arrival order.
func (l *PageErrorLog) ConsoleErrors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.consoleErrors...)
}

// PageErrors returns a copy of the exception descriptors in arrival order.
func (l *PageErrorLog) PageErrors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.pageErrors...)
}

func (l *PageErrorLog) install() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.installed {
		return false
	}
	l.installed = true
	return true
}

func (l *PageErrorLog) addConsoleError(text string) {
	l.mu.Lock()
	l.consoleErrors = append(l.consoleErrors, text)
	l.mu.Unlock()
}

func (l *PageErrorLog) addPageError(desc string) {
	l.mu.Lock()
	l.pageErrors = append(l.pageErrors, desc)
	l.mu.Unlock()
}

// Monitor subscribes to an EventSource and aggregates its errors. It never
// fails; deciding whether errors are acceptable is up to the caller.
type Monitor struct {
	src    EventSource
	log    *PageErrorLog
	logger *slog.Logger
}

// New returns a Monitor for src. Nothing is recorded until Start.
func New(src EventSource, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{src: src, log: &PageErrorLog{}, logger: logger}
}

// Start subscribes to the source. Only the first call installs handlers.
func (m *Monitor) Start() {
	if !m.log.install() {
		return
	}
	m.src.OnConsoleMessage(func(msg ConsoleMessage) {
		if msg.Type == "error" {
			m.log.addConsoleError(msg.Text)
		}
	})
	m.src.OnPageError(func(e PageError) {
		m.log.addPageError(e.String())
	})
	m.logger.Debug("console monitoring started")
}

// Started reports whether Start has installed the handlers.
func (m *Monitor) Started() bool {
	m.log.mu.Lock()
	defer m.log.mu.Unlock()
	return m.log.installed
}

// Log returns the monitor's error log.
func (m *Monitor) Log() *PageErrorLog { return m.log }

// Verify logs a summary of the errors seen so far and returns it.
func (m *Monitor) Verify() model.ErrorSummary {
	summary := model.ErrorSummary{
		ConsoleErrors: m.log.ConsoleErrors(),
		PageErrors:    m.log.PageErrors(),
	}
	summary.Total = len(summary.ConsoleErrors) + len(summary.PageErrors)

	m.logger.Info("console error summary",
		"total", summary.Total,
		"console_errors", len(summary.ConsoleErrors),
		"page_errors", len(summary.PageErrors),
	)
	for i, text := range summary.ConsoleErrors {
		m.logger.Warn("console error", "n", i+1, "text", text)
	}
	for i, desc := range summary.PageErrors {
		m.logger.Warn("page error", "n", i+1, "error", desc)
	}
	return summary
}
