// Package search provides the text normalization and predicate composition
// used for filtering cached collections and preparing server-side search
// terms.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents strips combining marks so "García" and "garcia" compare equal.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims, and accent-folds a search term. It is applied
// both to terms before transmission and to haystacks before matching.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldAccents, lowered)
	if err != nil {
		return lowered
	}
	return folded
}

// Predicate reports whether a record matches an active filter.
type Predicate[T any] func(T) bool

// MatchAll accepts every record.
func MatchAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And combines predicates with logical AND. No predicates matches all.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// TextMatch builds a predicate from a free-text term over a haystack
// function. The empty term matches every record.
func TextMatch[T any](term string, haystack func(T) string) Predicate[T] {
	needle := Normalize(term)
	if needle == "" {
		return MatchAll[T]()
	}
	return func(v T) bool {
		return strings.Contains(Normalize(haystack(v)), needle)
	}
}

// StatusFilter narrows a collection by its active flag.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusActive
	StatusInactive
)

// ParseStatusFilter maps a filter label to a StatusFilter. Unrecognized
// values match all records.
func ParseStatusFilter(s string) StatusFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "activo", "activos":
		return StatusActive
	case "inactive", "inactivo", "inactivos":
		return StatusInactive
	default:
		return StatusAll
	}
}

// Next cycles all → active → inactive → all.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case StatusAll:
		return StatusActive
	case StatusActive:
		return StatusInactive
	default:
		return StatusAll
	}
}

// Label returns the display label for the filter.
func (f StatusFilter) Label() string {
	switch f {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	default:
		return "All"
	}
}

// Match builds a predicate over a record's active flag.
func Match[T any](f StatusFilter, active func(T) bool) Predicate[T] {
	switch f {
	case StatusActive:
		return func(v T) bool { return active(v) }
	case StatusInactive:
		return func(v T) bool { return !active(v) }
	default:
		return MatchAll[T]()
	}
}
