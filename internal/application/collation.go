package application

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agnivade/levenshtein"

	"github.com/ahrav/go-compass/internal/domain"
)

// maxSuggestionDistance bounds how far a suggested group name may be from
// the requested one.
const maxSuggestionDistance = 3

// collatedSet returns the distinct non-empty values of field across
// candidates, sorted for the given locale.
func collatedSet(candidates []domain.Candidate, field func(domain.Candidate) string, locale string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range candidates {
		v := field(c)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if out == nil {
		return []string{}
	}

	// A collator is stateful, so each call gets its own.
	collate.New(language.Make(locale)).SortStrings(out)
	return out
}

// resolveName finds name among names: exact match first, then a Unicode
// case-folded match. On failure the returned error suggests the closest
// name within maxSuggestionDistance edits.
func resolveName(name string, names []string) (string, error) {
	if slices.Contains(names, name) {
		return name, nil
	}
	if name == "" {
		return "", &domain.UnknownGroupError{Name: name}
	}

	folder := cases.Fold()
	folded := folder.String(name)
	for _, n := range names {
		if folder.String(n) == folded {
			return n, nil
		}
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, n := range names {
		d := levenshtein.ComputeDistance(folded, folder.String(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return "", &domain.UnknownGroupError{Name: name, Suggestion: best}
}
