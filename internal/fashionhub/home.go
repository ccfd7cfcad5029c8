package fashionhub

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// HomePage is the shop's landing page.
type HomePage struct {
	BasePage
	Header *HeaderPanel

	heroHeading playwright.Locator
	shopNow     playwright.Locator
}

func newHomePage(site *Site, err error) *HomePage {
	p := &HomePage{BasePage: newBasePage(site, err)}
	p.Header = newHeaderPanel(&p.flow, p.page)
	p.heroHeading = p.page.GetByRole("heading", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(`(?i)welcome to fashionhub`)})
	p.shopNow = p.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(`(?i)shop now`)})
	return p
}

// Open navigates to the environment's home URL.
func (p *HomePage) Open() *HomePage {
	p.Goto(p.site.Env.HomeURL)
	return p
}

func (p *HomePage) VerifyHeroHeading() *HomePage {
	p.expectVisible("hero heading", p.heroHeading)
	return p
}

func (p *HomePage) VerifyShopNowButton() *HomePage {
	p.expectVisible("shop now", p.shopNow)
	return p
}

func (p *HomePage) ClickShopNow() *HomePage {
	p.click("shop now", p.shopNow)
	return p
}

// VerifyState checks the hero heading and the call to action.
func (p *HomePage) VerifyState() *HomePage {
	return p.VerifyHeroHeading().VerifyShopNowButton()
}

func (p *HomePage) NavigateToAccount() *AccountPage {
	p.Header.ClickAccount()
	return newAccountPage(p.site, p.err)
}

func (p *HomePage) NavigateToClothing() *HomePage {
	p.Header.ClickClothing()
	return p
}

func (p *HomePage) NavigateToShoppingBag() *HomePage {
	p.Header.ClickShoppingBag()
	return p
}

func (p *HomePage) NavigateToAbout() *HomePage {
	p.Header.ClickAbout()
	return p
}
