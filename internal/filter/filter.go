// Package filter implements the generic filter engine used by every list
// view: a store snapshot plus a set of active filter dimensions produces the
// ordered subsequence of entities satisfying all of them. The five domain
// packages share these combinators instead of reimplementing search and enum
// matching per entity kind.
package filter

import "strings"

// All is the sentinel value that disables an enum or bucket dimension.
const All = "all"

// Predicate is one independent filter dimension.
type Predicate[E any] func(E) bool

// Search matches when any of the designated text fields contains the query,
// case-insensitive. An empty query always matches.
func Search[E any](query string, fields ...func(E) string) Predicate[E] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(e E) bool {
		if q == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(e)), q) {
				return true
			}
		}
		return false
	}
}

// Enum matches on exact equality against the selected value. The empty string
// and the All sentinel disable the dimension.
func Enum[E any](value string, field func(E) string) Predicate[E] {
	return func(e E) bool {
		if value == "" || value == All {
			return true
		}
		return field(e) == value
	}
}

// Bucket classifies an entity's numeric field to a bucket label before
// comparing it with the wanted bucket. The empty string and the All sentinel
// disable the dimension.
func Bucket[E any](want string, classify func(E) string) Predicate[E] {
	return func(e E) bool {
		if want == "" || want == All {
			return true
		}
		return classify(e) == want
	}
}

// Apply returns the subsequence of items satisfying all predicates, in the
// original relative order. Predicates combine by logical AND.
func Apply[E any](items []E, preds ...Predicate[E]) []E {
	out := make([]E, 0, len(items))
	for _, e := range items {
		keep := true
		for _, p := range preds {
			if !p(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
