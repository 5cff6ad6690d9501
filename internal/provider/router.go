package provider

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Router composes providers as an ordered list tried in sequence. Single
// questions walk DuckDuckGo, Wikipedia, then the fallback; comparison
// items walk Wikipedia then DuckDuckGo with no per-item fallback.
type Router struct {
	chain   []Provider
	compare []Provider
	logger  *slog.Logger
}

func NewRouter(ddg *DuckDuckGo, wiki *Wikipedia, logger *slog.Logger) *Router {
	return &Router{
		chain:   []Provider{ddg, wiki, Fallback{}},
		compare: []Provider{wiki, ddg},
		logger:  logger,
	}
}

// newRouterWith lets tests swap in stub providers.
func newRouterWith(chain, compare []Provider, logger *slog.Logger) *Router {
	return &Router{chain: chain, compare: compare, logger: logger}
}

// Route answers a single question. Provider failures are logged and
// treated as "no answer"; the chain ends in the fallback so a composed
// answer always comes back.
func (r *Router) Route(ctx context.Context, q string) (string, string) {
	for _, p := range r.chain {
		answer, ok, err := p.Query(ctx, q)
		if err != nil {
			r.logger.Warn("provider failed", "provider", p.Name(), "error", err)
			continue
		}
		if ok {
			return answer, p.Name()
		}
	}
	return SearchLink(q), "fallback"
}

// Compare resolves both items independently. If either item misses, the
// whole comparison degrades to the search link on the joined query and
// the item that did resolve is discarded.
func (r *Router) Compare(ctx context.Context, item1, item2 string) (string, string) {
	summary1, ok1 := r.resolveItem(ctx, item1)
	summary2, ok2 := r.resolveItem(ctx, item2)

	if !ok1 || !ok2 {
		return SearchLink(item1 + " vs " + item2), "fallback"
	}

	// cases.Caser carries state, so build one per call.
	title := cases.Title(language.English)
	return fmt.Sprintf("<b>%s:</b> %s<br><br><b>%s:</b> %s",
		title.String(item1), summary1, title.String(item2), summary2), "comparison"
}

func (r *Router) resolveItem(ctx context.Context, item string) (string, bool) {
	for _, p := range r.compare {
		answer, ok, err := p.Query(ctx, item)
		if err != nil {
			r.logger.Warn("provider failed", "provider", p.Name(), "item", item, "error", err)
			continue
		}
		if ok {
			return answer, true
		}
	}
	return "", false
}
