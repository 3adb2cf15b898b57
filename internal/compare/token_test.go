package compare

import "testing"

func TestTokenizeSplitsOnWhitespaceRuns(t *testing.T) {
	tokens := Tokenize("  Hello,\tworld \n again ")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Text != "Hello," || tokens[0].Normalized != "hello" {
		t.Fatalf("unexpected first token: %+v", tokens[0])
	}
	if tokens[2].Position != 2 {
		t.Fatalf("expected ordinal position 2, got %v", tokens[2].Position)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		if tokens := Tokenize(raw); len(tokens) != 0 {
			t.Fatalf("expected no tokens for %q, got %d", raw, len(tokens))
		}
	}
}

func TestTokenizeTimedAttachesTimestamps(t *testing.T) {
	tokens := TokenizeTimed("a b c", []float64{0.5, 1.25})
	if tokens[0].Position != 0.5 || tokens[1].Position != 1.25 {
		t.Fatalf("unexpected positions: %+v", tokens)
	}
	if tokens[2].Position != 0 {
		t.Fatalf("expected zero position past times, got %v", tokens[2].Position)
	}
}

func TestNormalizeStripsPunctuationAndCase(t *testing.T) {
	cases := map[string]string{
		"Hello,":   "hello",
		"it's":     "its",
		"Don't!":   "dont",
		"...":      "",
		"Größe":    "größe",
		"42nd":     "42nd",
		"(quoted)": "quoted",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Hello,", "it's", "ZZZ", "déjà-vu", ""} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", s, once, twice)
		}
	}
}
