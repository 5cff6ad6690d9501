package coref

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// FirstEntity runs named-entity recognition over a composed answer and
// returns the first entity span's text, or "" when nothing is found. Only
// the first entity is kept — no salience or frequency ranking.
func FirstEntity(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return "", fmt.Errorf("ner parse: %w", err)
	}

	ents := doc.Entities()
	if len(ents) == 0 {
		return "", nil
	}
	return ents[0].Text, nil
}
