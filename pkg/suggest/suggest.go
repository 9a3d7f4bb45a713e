// Package suggest finds known command-line names close to a mistyped one.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

// FindSimilar returns up to maxResults candidates similar to target, best first. Leading option
// prefixes ("-", "--", "/") are ignored when comparing, so "-verbos" finds "--verbose".
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	type scored struct {
		name  string
		score float64
	}
	seen := make(map[string]bool, len(candidates))
	suggestions := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true
		if score := calculateSimilarity(target, name); score > threshold {
			suggestions = append(suggestions, scored{name, score})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].score == suggestions[j].score {
			return suggestions[i].name < suggestions[j].name
		}
		return suggestions[i].score > suggestions[j].score
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(suggestions) && i < maxResults; i++ {
		result = append(result, suggestions[i].name)
	}
	return result
}

// trimPrefix strips the characters that introduce options.
func trimPrefix(s string) string {
	return strings.TrimLeft(s, "-/")
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(trimPrefix(a))
	b = strings.ToLower(trimPrefix(b))

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshteinDistance(a, b)
	maxLen := float64(max(len(a), len(b)))
	return 1.0 - float64(distance)/maxLen
}

// levenshteinDistance keeps only two rows of the edit matrix.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
