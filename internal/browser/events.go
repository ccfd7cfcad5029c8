package browser

import (
	"errors"

	"github.com/playwright-community/playwright-go"

	"github.com/Bahjat/fashionhub-e2e/internal/consolemon"
)

// pageEvents adapts a Playwright page to consolemon.EventSource.
type pageEvents struct {
	page playwright.Page
}

func (e pageEvents) OnConsoleMessage(h func(consolemon.ConsoleMessage)) {
	e.page.OnConsole(func(msg playwright.ConsoleMessage) {
		h(consolemon.ConsoleMessage{Type: msg.Type(), Text: msg.Text()})
	})
}

func (e pageEvents) OnPageError(h func(consolemon.PageError)) {
	e.page.OnPageError(func(err error) {
		h(toPageError(err))
	})
}

func toPageError(err error) consolemon.PageError {
	var pwErr *playwright.Error
	if errors.As(err, &pwErr) {
		return consolemon.PageError{Name: pwErr.Name, Message: pwErr.Message}
	}
	return consolemon.PageError{Message: err.Error()}
}
