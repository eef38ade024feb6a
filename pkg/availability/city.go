package availability

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes, drops Unicode combining marks (category M), and
// recomposes what is left.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.M)), norm.NFC)
}

// NormalizeCity folds a free-text city name for policy comparison:
// lowercase, NFD with combining marks removed, trimmed, and internal
// whitespace collapsed to single spaces. "São  Paulo " becomes "sao paulo".
func NormalizeCity(city string) string {
	if city == "" {
		return ""
	}

	folded, _, err := transform.String(foldMarks(), city)
	if err != nil {
		folded = city
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// CitiesMatch reports whether two city names are equal after normalization.
// There is no partial or substring matching.
func CitiesMatch(a, b string) bool {
	return NormalizeCity(a) == NormalizeCity(b)
}

// MatchesAny reports whether city matches any entry of list. Blank list
// entries never match.
func MatchesAny(city string, list []string) bool {
	want := NormalizeCity(city)
	if want == "" {
		return false
	}
	for _, entry := range list {
		if NormalizeCity(entry) == want {
			return true
		}
	}
	return false
}

// nonBlank reports whether list has at least one entry that is not blank
// after normalization. Lists like [""] count as empty.
func nonBlank(list []string) bool {
	for _, entry := range list {
		if NormalizeCity(entry) != "" {
			return true
		}
	}
	return false
}
