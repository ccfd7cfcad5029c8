// Package linkcheck validates the hyperlinks of a page.
//
// A LinkSource enumerates the anchor targets of a loaded page (a live
// browser page or an HTML document fetched over HTTP). The Validator drops
// non-navigable targets such as javascript: pseudo-links, deduplicates the
// rest, probes each unique URL through a Prober and sorts the results into
// valid (status below 300), redirect (3xx) and broken (4xx, 5xx or a failed
// request) buckets. A failure on one link never stops the others from being
// checked.
package linkcheck
