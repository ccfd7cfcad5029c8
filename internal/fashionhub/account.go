package fashionhub

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// AccountPage is shown after a successful login.
type AccountPage struct {
	BasePage
	Header *HeaderPanel

	heading      playwright.Locator
	logoutButton playwright.Locator
}

func newAccountPage(site *Site, err error) *AccountPage {
	p := &AccountPage{BasePage: newBasePage(site, err)}
	p.Header = newHeaderPanel(&p.flow, p.page)
	p.heading = p.page.GetByRole("heading", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(`(?i)welcome`)})
	p.logoutButton = p.page.Locator("logout-button").Locator("button")
	return p
}

// VerifyWelcomeMessage checks the welcome heading is shown and contains
// text, usually the account name.
func (p *AccountPage) VerifyWelcomeMessage(text string) *AccountPage {
	p.expectVisible("welcome heading", p.heading)
	p.do("expect welcome text", func() error {
		return p.site.expect.Locator(p.heading).ToContainText(text)
	})
	return p
}

func (p *AccountPage) VerifyLogoutButton() *AccountPage {
	p.expectVisible("logout button", p.logoutButton)
	return p
}

// Logout signs out and lands on the login page.
func (p *AccountPage) Logout() *LoginPage {
	p.click("logout", p.logoutButton)
	return newLoginPage(p.site, p.err)
}

func (p *AccountPage) NavigateToHome() *HomePage {
	p.Header.ClickHome()
	return newHomePage(p.site, p.err)
}

func (p *AccountPage) NavigateToClothing() *AccountPage {
	p.Header.ClickClothing()
	return p
}

func (p *AccountPage) NavigateToShoppingBag() *AccountPage {
	p.Header.ClickShoppingBag()
	return p
}

func (p *AccountPage) NavigateToAbout() *AccountPage {
	p.Header.ClickAbout()
	return p
}
