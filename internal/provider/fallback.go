package provider

import (
	"context"
	"fmt"
	"net/url"
)

// Fallback is the guaranteed last resort: an apology plus a constructed
// search-engine link for the literal query. It never fails.
type Fallback struct{}

func (Fallback) Name() string { return "fallback" }

func (Fallback) Query(ctx context.Context, q string) (string, bool, error) {
	return SearchLink(q), true, nil
}

// SearchLink builds the apology-plus-link answer used whenever every real
// source came up empty.
func SearchLink(q string) string {
	return fmt.Sprintf(
		"Sorry, I couldn't find an answer. Try searching on <a href='https://www.google.com/search?q=%s' target='_blank'>Google</a>.",
		url.QueryEscape(q),
	)
}
