// Package fashionhub models the FashionHub demo shop as page objects.
//
// Page objects chain: each step returns the page the browser is on after
// it, so a login reads
//
//	account := site.LoginPage().Navigate().EnterUsername(u).EnterPassword(p).Submit()
//	if err := account.VerifyWelcomeMessage(name).Err(); err != nil { ... }
//
// The first failing step is kept and every later step is skipped, so a chain
// is checked once, at its end, with Err.
package fashionhub

import (
	"context"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/Bahjat/fashionhub-e2e/internal/browser"
	"github.com/Bahjat/fashionhub-e2e/internal/linkcheck"
	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/config"
)

// Site binds page objects to a browser session and a deployment.
type Site struct {
	Session   *browser.Session
	Env       config.Environment
	LinkCheck linkcheck.Options
	Logger    *slog.Logger
	// ScreenshotDir receives a screenshot of the page when a step fails.
	// Empty disables it.
	ScreenshotDir string

	expect    playwright.PlaywrightAssertions
	validator *linkcheck.Validator
}

// NewSite returns a Site whose assertions wait up to the session timeout.
func NewSite(session *browser.Session, env config.Environment, opts linkcheck.Options, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	return &Site{
		Session:   session,
		Env:       env,
		LinkCheck: opts,
		Logger:    logger,
		expect:    playwright.NewPlaywrightAssertions(float64(session.Timeout().Milliseconds())),
		validator: linkcheck.NewValidator(session, opts, logger),
	}
}

// LoginPage returns the login page object. It does not navigate.
func (s *Site) LoginPage() *LoginPage { return newLoginPage(s, nil) }

// HomePage returns the home page object. It does not navigate.
func (s *Site) HomePage() *HomePage { return newHomePage(s, nil) }

// AccountPage returns the account page object for a session that is
// already logged in.
func (s *Site) AccountPage() *AccountPage { return newAccountPage(s, nil) }

// Header returns the navigation header shared by every page.
func (s *Site) Header() *HeaderPanel {
	return newHeaderPanel(&flow{site: s}, s.Session.Page())
}

// CheckConsole logs in with the environment credentials, opens About and
// returns what the console monitor recorded along the way. Monitoring starts
// before the first navigation.
func (s *Site) CheckConsole() (model.ErrorSummary, error) {
	creds := s.Env.Credentials

	login := s.LoginPage()
	login.StartConsoleMonitoring()

	account := login.Navigate().
		EnterUsername(creds.Username).
		EnterPassword(creds.Password).
		Submit().
		NavigateToAbout()
	if err := account.Err(); err != nil {
		return model.ErrorSummary{}, err
	}
	return account.VerifyConsoleLogs(), nil
}

// CheckLinks opens url, or the environment home page when url is empty, and
// validates every link on it once the network is idle.
func (s *Site) CheckLinks(ctx context.Context, url string) (model.LinkReport, error) {
	if url == "" {
		url = s.Env.HomeURL
	}
	home := s.HomePage()
	home.Goto(url)
	home.WaitForPageReady()
	return home.VerifyBrokenLinks(ctx)
}
