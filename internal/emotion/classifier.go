package emotion

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Category is the detected sentiment of a piece of text.
type Category string

const (
	Positive Category = "positive"
	Negative Category = "negative"
	Neutral  Category = "neutral"
	Mixed    Category = "mixed"
)

// Polarity scores text in [-1, 1], negative to positive.
func Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// Classify maps text to a sentiment category.
func Classify(text string) Category {
	return Categorize(Polarity(text))
}

// Categorize applies the polarity thresholds, evaluated in order:
// >0.5 positive, <-0.3 negative, otherwise neutral.
//
// Mixed cannot be returned from here: the neutral range check is already
// implied by the branches above it, so the final arm never fires. The
// category is kept because the composer carries a lead-in for it and the
// historical behaviour is pinned by a regression test.
func Categorize(polarity float64) Category {
	switch {
	case polarity > 0.5:
		return Positive
	case polarity < -0.3:
		return Negative
	case polarity >= -0.3 && polarity <= 0.5:
		return Neutral
	default:
		return Mixed
	}
}
