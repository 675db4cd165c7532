package analysis

import (
	"strconv"
	"strings"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

// RouteSignature builds the structural identity of a route: chains, token
// endpoints and the ordered tool sequence. Routes with equal signatures are
// interchangeable for comparison purposes regardless of their API ids.
func RouteSignature(r *domain.Route) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(r.FromChainID, 10))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(r.ToChainID, 10))
	b.WriteByte('|')
	if r.FromToken != nil {
		b.WriteString(strings.ToLower(r.FromToken.Address))
	}
	b.WriteByte('|')
	if r.ToToken != nil {
		b.WriteString(strings.ToLower(r.ToToken.Address))
	}
	for i := range r.Steps {
		b.WriteByte('|')
		b.WriteString(r.Steps[i].Tool)
	}
	return b.String()
}

// DedupeRoutes collapses structurally identical routes. The first occurrence
// wins and first-appearance order is preserved. Idempotent.
func DedupeRoutes(routes []*domain.Route) []*domain.Route {
	seen := make(map[string]struct{}, len(routes))
	out := make([]*domain.Route, 0, len(routes))
	for _, r := range routes {
		if r == nil {
			continue
		}
		sig := RouteSignature(r)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, r)
	}
	return out
}
