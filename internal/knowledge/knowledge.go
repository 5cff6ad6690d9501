// Package knowledge is the accumulating store of previously answered
// questions, queried by lexical fuzzy similarity before any external
// provider is consulted.
package knowledge

import (
	"context"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Record is one previously answered, already-composed Q&A pair. Entries
// are append-only: no updates, no deduplication.
type Record struct {
	Question string
	Answer   string
}

// Match is the best-scoring record found by a lookup. Score is a
// token-set ratio in 0-100; zero means nothing usable was found.
type Match struct {
	Answer string
	Score  int
}

// Repository is the capability the pipeline needs from a knowledge store.
// Implementations must serialize appends and give lookups a consistent
// snapshot; concurrent turns from different sessions share one repository.
type Repository interface {
	// Exists reports whether the store has been bootstrapped. An absent
	// store is a valid initial state meaning "route everything externally".
	Exists(ctx context.Context) (bool, error)

	// Lookup scans every record and returns the single highest-scoring
	// match for the normalized question. First-seen wins on ties.
	Lookup(ctx context.Context, normalized string) (Match, error)

	// Append stores the original un-normalized question with its fully
	// composed answer, creating the store on first write.
	Append(ctx context.Context, question, answer string) error
}

// BestMatch scores the normalized question against each record and keeps
// the strictly-greater winner, so the earliest of tied records survives.
func BestMatch(normalized string, records []Record) Match {
	var best Match
	q := strings.ToLower(normalized)
	for _, rec := range records {
		score := fuzzy.TokenSetRatio(q, strings.ToLower(rec.Question))
		if score > best.Score {
			best = Match{Answer: rec.Answer, Score: score}
		}
	}
	return best
}

// Accepted reports whether a match score is high enough to reuse the
// stored answer verbatim instead of re-querying external sources.
func Accepted(score, threshold int) bool {
	return score > threshold
}
