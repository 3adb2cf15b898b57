package compare

// Kind classifies one annotated word of a comparison.
type Kind int

const (
	// Correct: the typed word matches the reference word.
	Correct Kind = iota
	// Mistake: the typed word is a near-miss of the reference word.
	Mistake
	// Missing: a reference word the typist never produced.
	Missing
	// Wrong: a typed word with no counterpart in the reference.
	Wrong
)

// String returns the lowercase wire name of the kind.
func (k Kind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Mistake:
		return "mistake"
	case Missing:
		return "missing"
	case Wrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// AnnotatedWord is one output unit of a comparison: the surface form to
// display (the typed word when one exists, otherwise the reference word) and
// its classification.
type AnnotatedWord struct {
	Text string
	Kind Kind
}

// Stats aggregates the per-kind counts of a comparison. Total is the
// reference word count: every reference word lands in exactly one of
// Correct, Mistake, or Missing.
type Stats struct {
	Correct int
	Mistake int
	Missing int
	Wrong   int
	Total   int
}

// Tally counts annotated words into Stats.
func Tally(words []AnnotatedWord) Stats {
	var s Stats
	for _, w := range words {
		switch w.Kind {
		case Correct:
			s.Correct++
		case Mistake:
			s.Mistake++
		case Missing:
			s.Missing++
		case Wrong:
			s.Wrong++
		}
	}
	s.Total = s.Correct + s.Mistake + s.Missing
	return s
}

// Accuracy is (correct + 0.5*mistake) / total, with mistakes credited as
// half-correct. It is 0 when the reference is empty.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return (float64(s.Correct) + 0.5*float64(s.Mistake)) / float64(s.Total)
}

// Result is the full outcome of one comparison: the annotated word sequence
// in emission order plus its aggregate stats.
type Result struct {
	Words []AnnotatedWord
	Stats Stats
}
