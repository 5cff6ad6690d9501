package question

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips filler and punctuation", "I hate databases?!", "databases"},
		{"strips love", "I love the Eiffel Tower!", "the eiffel tower"},
		{"strips frustrated prefix", "I'm frustrated with my compiler.", "my compiler"},
		{"plain question untouched", "What is the capital of France?", "what is the capital of france"},
		{"lowercases", "WHAT IS GO", "what is go"},
		{"trims edges only", "  why?  ", "why"},
		{"substring match inside sentence", "honestly i hate mondays", "honestly  mondays"},
		{"empty input", "", ""},
		{"only punctuation", "?!.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_FirstMatchOnly(t *testing.T) {
	// Each phrase is removed once; a second occurrence survives.
	got := Normalize("i like cats and i like dogs")
	want := "cats and i like dogs"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
