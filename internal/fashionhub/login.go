package fashionhub

import (
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/Bahjat/fashionhub-e2e/internal/platform/config"
)

var loginURL = regexp.MustCompile(`.*fashionhub/login\.html`)

// LoginPage is the FashionHub login form.
type LoginPage struct {
	BasePage
	username     playwright.Locator
	password     playwright.Locator
	loginButton  playwright.Locator
	errorMessage playwright.Locator
	heading      playwright.Locator
}

func newLoginPage(site *Site, err error) *LoginPage {
	base := newBasePage(site, err)
	pg := base.page
	return &LoginPage{
		BasePage:     base,
		username:     pg.Locator("input#username"),
		password:     pg.Locator("input#password"),
		loginButton:  pg.GetByRole("button", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(`(?i)login`)}),
		errorMessage: pg.Locator(".error-message"),
		heading:      pg.GetByRole("heading", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(`(?i)login to fashionhub`)}),
	}
}

// Navigate opens the environment's login URL.
func (p *LoginPage) Navigate() *LoginPage {
	p.Goto(p.site.Env.BaseURL)
	return p
}

func (p *LoginPage) EnterUsername(username string) *LoginPage {
	p.fill("username", p.username, username)
	return p
}

func (p *LoginPage) EnterPassword(password string) *LoginPage {
	p.fill("password", p.password, password)
	return p
}

// Submit clicks login and waits for the network to settle on the account
// page.
func (p *LoginPage) Submit() *AccountPage {
	p.click("login", p.loginButton)
	p.WaitForPageReady()
	return newAccountPage(p.site, p.err)
}

// SubmitExpectingError clicks login for credentials that should be
// rejected; the browser stays on the login page.
func (p *LoginPage) SubmitExpectingError() *LoginPage {
	p.click("login", p.loginButton)
	p.WaitForPageReady()
	return p
}

// Login runs the whole form with creds.
func (p *LoginPage) Login(creds config.Credentials) *AccountPage {
	return p.Navigate().
		EnterUsername(creds.Username).
		EnterPassword(creds.Password).
		Submit()
}

func (p *LoginPage) VerifyOnLoginPage() *LoginPage {
	p.do("expect login URL", func() error {
		return p.site.expect.Page(p.page).ToHaveURL(loginURL)
	})
	return p
}

func (p *LoginPage) VerifyHeading() *LoginPage {
	p.expectVisible("login heading", p.heading)
	return p
}

// VerifyErrorMessage checks the form's error banner reads exactly text.
func (p *LoginPage) VerifyErrorMessage(text string) *LoginPage {
	p.expectVisible("error message", p.errorMessage)
	p.do("expect error message text", func() error {
		return p.site.expect.Locator(p.errorMessage).ToHaveText(text)
	})
	return p
}

// VerifyState checks URL, heading and the form controls.
func (p *LoginPage) VerifyState() *LoginPage {
	p.VerifyOnLoginPage().VerifyHeading()
	p.expectVisible("username input", p.username)
	p.expectVisible("password input", p.password)
	p.expectVisible("login button", p.loginButton)
	return p
}
