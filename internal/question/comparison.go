package question

import (
	"regexp"
	"strings"
)

// Pair holds the two sides of a comparison question. Transient: it only
// lives while one comparison is being answered.
type Pair struct {
	Item1 string
	Item2 string
}

var comparisonKeywords = []string{
	"compare", "difference between", "vs", "versus",
	"better than", "faster than", "more than", "less than",
}

// Non-greedy on the first item so "compare a and b and c" splits at the
// first "and".
var pairPattern = regexp.MustCompile(`(?:compare|difference between)\s+(.*?)\s+(?:and|vs)\s+(.*)`)

// IsComparison reports whether a question asks to contrast two items.
// Case-insensitive substring test, so it can flag questions the extractor
// later fails on; callers must treat that as an ordinary question.
func IsComparison(q string) bool {
	lower := strings.ToLower(q)
	for _, kw := range comparisonKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractPair decomposes a comparison question into its two items.
// Best-effort: a comparative-sounding question with no extractable pair
// returns ok=false, never an error.
func ExtractPair(q string) (Pair, bool) {
	lower := strings.ToLower(q)

	if i := strings.Index(lower, " vs "); i >= 0 {
		return Pair{
			Item1: strings.TrimSpace(lower[:i]),
			Item2: strings.TrimSpace(lower[i+len(" vs "):]),
		}, true
	}

	if m := pairPattern.FindStringSubmatch(lower); m != nil {
		return Pair{
			Item1: strings.TrimSpace(m[1]),
			Item2: strings.TrimSpace(m[2]),
		}, true
	}

	return Pair{}, false
}
