package fashionhub

import (
	"context"

	"github.com/playwright-community/playwright-go"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
)

// BasePage holds the operations every page object shares.
type BasePage struct {
	flow
	page playwright.Page
}

func newBasePage(site *Site, err error) BasePage {
	return BasePage{flow: flow{site: site, err: err}, page: site.Session.Page()}
}

// Goto navigates to url.
func (p *BasePage) Goto(url string) {
	p.do("goto "+url, func() error { return p.site.Session.Goto(url) })
}

// WaitForPageLoad waits for DOMContentLoaded.
func (p *BasePage) WaitForPageLoad() {
	p.do("wait for page load", func() error {
		return p.site.Session.WaitForLoad(playwright.LoadStateDomcontentloaded)
	})
}

// WaitForPageReady waits until the network has been idle for 500ms.
func (p *BasePage) WaitForPageReady() {
	p.do("wait for page ready", func() error {
		return p.site.Session.WaitForLoad(playwright.LoadStateNetworkidle)
	})
}

// StartConsoleMonitoring begins recording console errors and uncaught
// exceptions for the session. Calling it again, from this or any other page
// object of the session, has no effect.
func (p *BasePage) StartConsoleMonitoring() {
	p.site.Session.Monitor().Start()
}

// VerifyConsoleLogs logs and returns the errors recorded so far. It reports
// and never fails.
func (p *BasePage) VerifyConsoleLogs() model.ErrorSummary {
	return p.site.Session.Monitor().Verify()
}

// VerifyBrokenLinks validates every link on the current page. The error is
// the chain's earlier failure if there was one, otherwise the validator's
// "Found N broken link(s)" error when any link is broken.
func (p *BasePage) VerifyBrokenLinks(ctx context.Context) (model.LinkReport, error) {
	if p.err != nil {
		return model.LinkReport{}, p.err
	}
	return p.site.validator.VerifyNoBrokenLinks(ctx, p.site.Session)
}

func (p *BasePage) expectVisible(what string, l playwright.Locator) {
	p.do("expect "+what+" visible", func() error {
		return p.site.expect.Locator(l).ToBeVisible()
	})
}

func (p *BasePage) click(what string, l playwright.Locator) {
	p.do("click "+what, func() error { return l.Click() })
}

func (p *BasePage) fill(what string, l playwright.Locator, value string) {
	p.do("fill "+what, func() error { return l.Fill(value) })
}
