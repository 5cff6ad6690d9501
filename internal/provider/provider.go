// Package provider holds the external knowledge sources and the router
// that tries them in a fixed priority order.
package provider

import "context"

// Provider is one external knowledge source. ok=false means the source
// had nothing for this query; an error means transport or parse failure.
// The router treats both the same way: move on to the next source.
type Provider interface {
	Name() string
	Query(ctx context.Context, q string) (answer string, ok bool, err error)
}
