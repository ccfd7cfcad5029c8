package linkcheck

import (
	"errors"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks tokenizes an HTML document and returns the href of every
// anchor, resolved against base, in document order. A <base href> element
// changes the resolution base for the anchors after it. Hrefs that do not
// parse are returned verbatim.
func ExtractLinks(body io.Reader, base *url.URL) ([]string, error) {
	var links []string
	z := html.NewTokenizer(body)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return links, nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, hasAttr := z.TagName()
			if !hasAttr {
				continue
			}
			switch string(tn) {
			case "a":
				if href, ok := attr(z, "href"); ok {
					links = append(links, resolve(strings.TrimSpace(href), base))
				}
			case "base":
				if href, ok := attr(z, "href"); ok {
					if u, err := url.Parse(href); err == nil {
						base = base.ResolveReference(u)
					}
				}
			}
		}
	}
}

func attr(z *html.Tokenizer, name string) (string, bool) {
	for {
		key, val, more := z.TagAttr()
		if string(key) == name {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

func resolve(href string, base *url.URL) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	// Scheme-only targets (javascript:, mailto:) are left for Navigable.
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return href
	}
	return base.ResolveReference(u).String()
}
