package match

import "sort"

// DefaultSuggestScore is the minimum normalized similarity for a name to
// be offered as a suggestion.
const DefaultSuggestScore = 0.5

// DefaultMaxSuggestions caps how many candidates a diagnostic carries.
const DefaultMaxSuggestions = 3

// Suggest returns up to max known names ranked by similarity to ref,
// filtered to scores of at least minScore. Ties are broken alphabetically
// so diagnostics are deterministic.
func Suggest(ref string, known []string, minScore float64, max int) []string {
	type scored struct {
		name  string
		score float64
	}

	normRef := NormalizeIdent(ref)

	var candidates []scored

	for _, name := range known {
		score := LevenshteinNormalized(normRef, NormalizeIdent(name))
		if score >= minScore {
			candidates = append(candidates, scored{name: name, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}

	return out
}
