package question

import "strings"

// fillerPhrases are emotional lead-ins stripped before routing. Ordered
// rule table, matched as plain substrings — no word boundaries.
var fillerPhrases = []string{
	"i'm frustrated with", "i hate", "i love", "i'm confused about",
	"i'm tired of", "i'm annoyed with", "i'm struggling with", "i like",
	"i'm so happy about", "i feel like", "i can't figure out",
}

const edgeCutset = "?!. "

// Normalize lowercases a question, strips the first occurrence of each
// emotional filler phrase and trims edge punctuation. The caller keeps the
// original text around: emotion detection and persistence both want the
// un-normalized question.
func Normalize(raw string) string {
	cleaned := strings.ToLower(raw)
	for _, phrase := range fillerPhrases {
		cleaned = strings.Replace(cleaned, phrase, "", 1)
	}
	return strings.Trim(cleaned, edgeCutset)
}
