package compare

import (
	"math"
	"strings"
	"testing"
)

func newTestComparer(t *testing.T) *Comparer {
	t.Helper()
	c, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("new comparer: %v", err)
	}
	return c
}

func kindCounts(res Result) map[Kind]int {
	counts := map[Kind]int{}
	for _, w := range res.Words {
		counts[w.Kind]++
	}
	return counts
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{MistakeThreshold: 0, WindowSize: 20, MaxSearch: 200},
		{MistakeThreshold: 1.5, WindowSize: 20, MaxSearch: 200},
		{MistakeThreshold: 0.75, WindowSize: 0, MaxSearch: 200},
		{MistakeThreshold: 0.75, WindowSize: 20, MaxSearch: -1},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
		if _, err := New(cfg, nil); err == nil {
			t.Fatalf("expected New to reject %+v", cfg)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestCompareIdenticalTexts(t *testing.T) {
	c := newTestComparer(t)
	text := "the quick brown fox jumps over the lazy dog"
	res := c.Compare(text, text)
	for _, w := range res.Words {
		if w.Kind != Correct {
			t.Fatalf("expected all correct, got %v for %q", w.Kind, w.Text)
		}
	}
	if res.Stats.Total != 9 || res.Stats.Correct != 9 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
	if res.Stats.Accuracy() != 1.0 {
		t.Fatalf("expected accuracy 1.0, got %v", res.Stats.Accuracy())
	}
}

func TestCompareTotalMismatch(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("qqq www eee", "xxxxxx yyyyyy zzzzzz")
	counts := kindCounts(res)
	if counts[Wrong] != 3 || counts[Missing] != 3 || counts[Correct] != 0 || counts[Mistake] != 0 {
		t.Fatalf("unexpected classification: %v", counts)
	}
	if res.Stats.Accuracy() != 0 {
		t.Fatalf("expected accuracy 0, got %v", res.Stats.Accuracy())
	}
}

func TestCompareEmptyReference(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("some typed words", "")
	counts := kindCounts(res)
	if counts[Wrong] != 3 {
		t.Fatalf("expected 3 wrong words, got %v", counts)
	}
	if res.Stats.Total != 0 {
		t.Fatalf("expected total 0, got %d", res.Stats.Total)
	}
	if acc := res.Stats.Accuracy(); acc != 0 || math.IsNaN(acc) {
		t.Fatalf("expected defined accuracy 0, got %v", acc)
	}
}

func TestCompareEmptyAttempt(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("", "every word is missing here")
	counts := kindCounts(res)
	if counts[Missing] != 5 || len(res.Words) != 5 {
		t.Fatalf("expected 5 missing words, got %v", counts)
	}
	if res.Stats.Accuracy() != 0 {
		t.Fatalf("expected accuracy 0, got %v", res.Stats.Accuracy())
	}
}

func TestCompareBothEmpty(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("", "   ")
	if len(res.Words) != 0 || res.Stats.Total != 0 {
		t.Fatalf("expected trivial result, got %+v", res)
	}
}

func TestCompareNearMiss(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("tost", "test")
	if len(res.Words) != 1 || res.Words[0].Kind != Mistake {
		t.Fatalf("expected a single mistake, got %+v", res.Words)
	}
	if acc := res.Stats.Accuracy(); math.Abs(acc-0.5) > 1e-9 {
		t.Fatalf("expected half credit, got %v", acc)
	}
}

func TestCompareBelowThresholdIsWrongAndMissing(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("zzz", "test")
	counts := kindCounts(res)
	if counts[Wrong] != 1 || counts[Missing] != 1 {
		t.Fatalf("expected wrong+missing, got %v", counts)
	}
}

func TestCompareSingleInsertion(t *testing.T) {
	c := newTestComparer(t)
	reference := "alpha beta gamma delta epsilon"
	attempt := "alpha beta EXTRA gamma delta epsilon"
	res := c.Compare(attempt, reference)
	counts := kindCounts(res)
	if counts[Wrong] != 1 || counts[Missing] != 0 || counts[Correct] != 5 {
		t.Fatalf("unexpected classification: %v (%+v)", counts, res.Words)
	}
}

func TestCompareSingleDeletion(t *testing.T) {
	c := newTestComparer(t)
	reference := "alpha beta gamma delta epsilon"
	attempt := "alpha beta delta epsilon"
	res := c.Compare(attempt, reference)
	counts := kindCounts(res)
	if counts[Missing] != 1 || counts[Wrong] != 0 || counts[Correct] != 4 {
		t.Fatalf("unexpected classification: %v (%+v)", counts, res.Words)
	}
	for _, w := range res.Words {
		if w.Kind == Missing && w.Text != "gamma" {
			t.Fatalf("expected gamma to be the missing word, got %q", w.Text)
		}
	}
}

func TestCompareRealignsAfterSkippedReferenceSpan(t *testing.T) {
	c := newTestComparer(t)
	attempt := "alpha bravo charlie delta echo"
	reference := "alpha bravo xxray yankee charlie delta echo"
	res := c.Compare(attempt, reference)
	counts := kindCounts(res)
	if counts[Correct] != 5 {
		t.Fatalf("expected charlie/delta/echo to re-synchronize, got %v (%+v)", counts, res.Words)
	}
	if counts[Missing] != 2 || counts[Wrong] != 0 {
		t.Fatalf("expected exactly the skipped span missing, got %v", counts)
	}
}

func TestCompareAttemptStartsMidReference(t *testing.T) {
	c := newTestComparer(t)
	reference := "one two three four five six"
	attempt := "four five six"
	res := c.Compare(attempt, reference)
	if len(res.Words) != 6 {
		t.Fatalf("expected 6 annotated words, got %d", len(res.Words))
	}
	for i, want := range []Kind{Missing, Missing, Missing, Correct, Correct, Correct} {
		if res.Words[i].Kind != want {
			t.Fatalf("word %d: got %v, want %v (%+v)", i, res.Words[i].Kind, want, res.Words)
		}
	}
	if acc := res.Stats.Accuracy(); math.Abs(acc-0.5) > 1e-9 {
		t.Fatalf("expected accuracy 0.5, got %v", acc)
	}
}

func TestCompareContractionEquivalence(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("I can't do it", "I cannot do it")
	for _, w := range res.Words {
		if w.Kind != Correct {
			t.Fatalf("expected contraction to match, got %v for %q", w.Kind, w.Text)
		}
	}
}

func TestComparePreservesSurfaceForms(t *testing.T) {
	c := newTestComparer(t)
	res := c.Compare("Hello, World!", "hello world")
	if res.Words[0].Text != "Hello," || res.Words[1].Text != "World!" {
		t.Fatalf("expected typed surface forms, got %+v", res.Words)
	}
}

func TestCompareForwardProgressOnAdversarialInput(t *testing.T) {
	c := newTestComparer(t)
	// No token on either side ever matches; the forced advance must still
	// terminate in one pass per pair.
	attempt := strings.Repeat("aaaaaaa ", 300)
	reference := strings.Repeat("zzzzzzz ", 300)
	res := c.Compare(attempt, reference)
	counts := kindCounts(res)
	if counts[Wrong] != 300 || counts[Missing] != 300 {
		t.Fatalf("unexpected classification: %v", counts)
	}
}

func TestCompareStatsTotalEqualsReferenceCount(t *testing.T) {
	c := newTestComparer(t)
	cases := [][2]string{
		{"a b c", "a b c"},
		{"a x c", "a b c"},
		{"", "a b c d"},
		{"w x y z", ""},
		{"one three five", "one two three four five"},
		{"start somewhere else entirely", "the real reference text here"},
	}
	for _, tc := range cases {
		res := c.Compare(tc[0], tc[1])
		refCount := len(Tokenize(tc[1]))
		if res.Stats.Total != refCount {
			t.Fatalf("Compare(%q, %q): total %d, want reference count %d",
				tc[0], tc[1], res.Stats.Total, refCount)
		}
		if res.Stats.Correct+res.Stats.Mistake+res.Stats.Missing != refCount {
			t.Fatalf("Compare(%q, %q): reference words classified %d times",
				tc[0], tc[1], res.Stats.Correct+res.Stats.Mistake+res.Stats.Missing)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Correct: "correct", Mistake: "mistake", Missing: "missing", Wrong: "wrong"} {
		if k.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
