package emotion

// leadIns maps each category to its empathetic prefix. Neutral is absent
// on purpose: neutral answers pass through untouched.
var leadIns = map[Category]string{
	Positive: "I'm glad to hear that! 😊<br><br>",
	Negative: "I'm sorry you're feeling that way. Let me try to help: 🤗<br><br>",
	Mixed:    "That’s an interesting perspective. Here's what I found: 🤔<br><br>",
}

// Compose wraps a raw factual answer with an empathetic lead-in chosen by
// the emotion of the original question. The question here must be the
// user's original text, not the normalized form — normalization strips the
// very phrases the classifier needs.
func Compose(question, answer string) string {
	if prefix, ok := leadIns[Classify(question)]; ok {
		return prefix + answer
	}
	return answer
}
