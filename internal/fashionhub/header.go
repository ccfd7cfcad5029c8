package fashionhub

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// HeaderPanel is the navigation bar. It shares the flow of the page that
// owns it, so a failed click stops that page's chain too.
type HeaderPanel struct {
	*flow
	home        playwright.Locator
	account     playwright.Locator
	clothing    playwright.Locator
	shoppingBag playwright.Locator
	about       playwright.Locator
}

func newHeaderPanel(f *flow, pg playwright.Page) *HeaderPanel {
	link := func(pattern string) playwright.Locator {
		return pg.GetByRole("link", playwright.PageGetByRoleOptions{Name: regexp.MustCompile(pattern)})
	}
	return &HeaderPanel{
		flow:        f,
		home:        link(`(?i)^home$`),
		account:     link(`(?i)^account$`),
		clothing:    link(`(?i)^clothing$`),
		shoppingBag: link(`(?i)^shopping bag$`),
		about:       link(`(?i)^about$`),
	}
}

func (h *HeaderPanel) clickLink(name string, l playwright.Locator) *HeaderPanel {
	h.do("click "+name, func() error { return l.Click() })
	return h
}

func (h *HeaderPanel) ClickHome() *HeaderPanel     { return h.clickLink("Home", h.home) }
func (h *HeaderPanel) ClickAccount() *HeaderPanel  { return h.clickLink("Account", h.account) }
func (h *HeaderPanel) ClickClothing() *HeaderPanel { return h.clickLink("Clothing", h.clothing) }
func (h *HeaderPanel) ClickAbout() *HeaderPanel    { return h.clickLink("About", h.about) }

func (h *HeaderPanel) ClickShoppingBag() *HeaderPanel {
	return h.clickLink("Shopping Bag", h.shoppingBag)
}
