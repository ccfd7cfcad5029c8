package linkcheck

import (
	"net/url"
	"strings"
)

// Category is the bucket a probed link falls into.
type Category int

const (
	Valid Category = iota
	Redirect
	Broken
)

func (c Category) String() string {
	switch c {
	case Valid:
		return "valid"
	case Redirect:
		return "redirect"
	default:
		return "broken"
	}
}

// Classify bands an HTTP status: [0,300) valid, [300,400) redirect,
// everything else broken.
func Classify(status int) Category {
	switch {
	case status >= 0 && status < 300:
		return Valid
	case status >= 300 && status < 400:
		return Redirect
	default:
		return Broken
	}
}

// Navigable keeps the link targets an HTTP request can follow. Empty targets,
// javascript: pseudo-links and other non-http(s) schemes (mailto:, tel:, data:)
// are dropped. Targets that do not parse are kept so the probe reports them.
func Navigable(links []string) []string {
	out := make([]string, 0, len(links))
	for _, link := range links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(link), "javascript:") {
			continue
		}
		if u, err := url.Parse(link); err == nil && u.Scheme != "" {
			if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
				continue
			}
		}
		out = append(out, link)
	}
	return out
}

// Unique removes exact duplicates, keeping the order of first occurrence.
func Unique(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	out := make([]string, 0, len(links))
	for _, link := range links {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	return out
}
