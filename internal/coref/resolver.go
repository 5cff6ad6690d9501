// Package coref carries conversational context between turns: it rewrites
// pronouns in an incoming question using the session's last-known entity,
// and pulls the next entity out of a composed answer.
package coref

import "strings"

// pronouns is the fixed set of tokens replaced by the last-known entity.
var pronouns = map[string]bool{
	"he": true, "she": true, "they": true, "it": true,
	"this": true, "that": true, "him": true, "her": true,
}

// Resolve substitutes the last-known entity for pronoun tokens. Purely
// lexical: whitespace tokenization, no case or number agreement. With no
// known entity the question passes through unchanged.
func Resolve(questionText, entity string) string {
	if entity == "" {
		return questionText
	}

	tokens := strings.Fields(questionText)
	for i, tok := range tokens {
		if pronouns[strings.ToLower(tok)] {
			tokens[i] = entity
		}
	}
	return strings.Join(tokens, " ")
}
