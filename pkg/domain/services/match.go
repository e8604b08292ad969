package services

import "strings"

// MatchKind represents how strongly a name matched, from strongest to
// weakest. Substring containment is inherently ambiguous for short or
// overlapping names; it is an accepted approximation for tolerating
// inconsistent naming between orders, stock and catalog.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchSubstring
	MatchAlias
	MatchExact
)

// String method for MatchKind enum
func (m MatchKind) String() string {
	switch m {
	case MatchNone:
		return "None"
	case MatchSubstring:
		return "Substring"
	case MatchAlias:
		return "Alias"
	case MatchExact:
		return "Exact"
	default:
		return "Unknown"
	}
}

// MatchName ranks how well query matches a candidate name and its
// aliases: exact equality first, then exact alias equality, then
// bidirectional substring containment against the name or any alias.
// All comparisons are case-insensitive.
func MatchName(query, candidate string, aliases []string) MatchKind {
	q := fold(query)
	c := fold(candidate)
	if q == "" || c == "" {
		return MatchNone
	}

	if q == c {
		return MatchExact
	}
	for _, alias := range aliases {
		if fold(alias) == q {
			return MatchAlias
		}
	}
	if contains(q, c) {
		return MatchSubstring
	}
	for _, alias := range aliases {
		if a := fold(alias); a != "" && contains(q, a) {
			return MatchSubstring
		}
	}
	return MatchNone
}

// ColorsMatch reports whether two color names refer to the same
// filament, tolerating prefixed or suffixed naming ("Matte Black"
// matches "Black").
func ColorsMatch(a, b string) bool {
	fa, fb := fold(a), fold(b)
	if fa == "" || fb == "" {
		return false
	}
	return fa == fb || contains(fa, fb)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// contains is the bidirectional substring check used by all fuzzy
// matching in the engine.
func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
