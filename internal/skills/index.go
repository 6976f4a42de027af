// Package skills offers autocomplete suggestions from a fixed skill list.
package skills

import (
	"strings"

	"golang.org/x/text/cases"
)

// MaxSuggestions caps the number of entries Suggest returns.
const MaxSuggestions = 5

// folded holds the case-folded form of every dictionary entry, computed once.
var folded = func() []string {
	f := cases.Fold()
	out := make([]string, len(dictionary))
	for i, s := range dictionary {
		out[i] = f.String(s)
	}
	return out
}()

// Dictionary returns a copy of the reference list in its original order.
func Dictionary() []string {
	return append([]string(nil), dictionary...)
}

// Suggest returns up to MaxSuggestions dictionary entries containing query,
// ignoring case, in dictionary order. An empty query has no suggestions.
func Suggest(query string) []string {
	if query == "" {
		return []string{}
	}
	q := cases.Fold().String(query)

	out := make([]string, 0, MaxSuggestions)
	for i, s := range folded {
		if !strings.Contains(s, q) {
			continue
		}
		out = append(out, dictionary[i])
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
