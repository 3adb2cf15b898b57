package compare

import "fmt"

// Defaults for Config.
const (
	DefaultMistakeThreshold = 0.75
	DefaultWindowSize       = 20
	DefaultMaxSearch        = 200
)

// Config bounds the comparison. MistakeThreshold is the similarity ratio at
// or above which a non-equivalent pair counts as a Mistake; WindowSize is the
// width of each reference scan window during realignment; MaxSearch caps how
// far ahead a realignment pass looks before giving up.
type Config struct {
	MistakeThreshold float64
	WindowSize       int
	MaxSearch        int
}

// DefaultConfig returns the standard comparison bounds.
func DefaultConfig() Config {
	return Config{
		MistakeThreshold: DefaultMistakeThreshold,
		WindowSize:       DefaultWindowSize,
		MaxSearch:        DefaultMaxSearch,
	}
}

// Validate rejects unusable bounds. It is the only error surface of the
// package: comparison itself never fails on any UTF-8 input.
func (c Config) Validate() error {
	if c.MistakeThreshold <= 0 || c.MistakeThreshold > 1 {
		return fmt.Errorf("mistake threshold must be in (0,1], got %v", c.MistakeThreshold)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be > 0, got %d", c.WindowSize)
	}
	if c.MaxSearch <= 0 {
		return fmt.Errorf("max search must be > 0, got %d", c.MaxSearch)
	}
	return nil
}

// Comparer grades attempts against references. It holds no per-comparison
// state and is safe for concurrent use.
type Comparer struct {
	cfg   Config
	table *Table
}

// New returns a Comparer after validating cfg. A nil table uses the built-in
// equivalents.
func New(cfg Config, table *Table) (*Comparer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comparer config: %w", err)
	}
	if table == nil {
		table = DefaultTable()
	}
	return &Comparer{cfg: cfg, table: table}, nil
}

// Compare tokenizes both texts and grades the attempt against the reference.
func (c *Comparer) Compare(attempt, reference string) Result {
	return c.CompareTokens(Tokenize(attempt), Tokenize(reference))
}

// CompareTokens grades pre-tokenized sequences. The token slices are read
// only; the result is owned by the caller.
func (c *Comparer) CompareTokens(user, ref []Token) Result {
	s := &session{cmp: c, user: user, ref: ref}
	s.run()
	return Result{Words: s.out, Stats: Tally(s.out)}
}

type state int

const (
	stateScanning state = iota
	stateRealigning
	stateDraining
	stateDone
)

// session is the in-progress context of one comparison: the two cursors, the
// matchedOnce flag, and the emitted output. It lives for a single
// CompareTokens call.
type session struct {
	cmp         *Comparer
	user        []Token
	ref         []Token
	u           int
	r           int
	matchedOnce bool
	out         []AnnotatedWord
}

func (s *session) run() {
	st := stateScanning
	for st != stateDone {
		switch st {
		case stateScanning:
			st = s.scan()
		case stateRealigning:
			st = s.realign()
		case stateDraining:
			st = s.drain()
		}
	}
}

// scan advances both cursors in lockstep while the current pair matches
// exactly or as a near-miss. The reference cursor never skips a token during
// scanning, so the first-match backfill of skipped reference words happens
// only inside realignment.
func (s *session) scan() state {
	if s.u >= len(s.user) || s.r >= len(s.ref) {
		return stateDraining
	}
	uw, rw := s.user[s.u], s.ref[s.r]
	if s.cmp.table.Equivalent(uw.Normalized, rw.Normalized) {
		s.matchedOnce = true
		s.emit(uw.Text, Correct)
		s.u++
		s.r++
		return stateScanning
	}
	if IsMistake(uw.Normalized, rw.Normalized, s.cmp.cfg.MistakeThreshold) {
		s.matchedOnce = true
		s.emit(uw.Text, Mistake)
		s.u++
		s.r++
		return stateScanning
	}
	return stateRealigning
}

// realign asks the pair-window aligner for a re-sync point, falling back to a
// single-token scan. When neither makes progress the current pair is written
// off as Wrong/Missing and both cursors advance one step, so every outer
// iteration moves forward.
func (s *session) realign() state {
	if s.u >= len(s.user) || s.r >= len(s.ref) {
		return stateDraining
	}
	if s.realignPairs() || s.realignSingle() {
		return stateScanning
	}
	s.emit(s.user[s.u].Text, Wrong)
	s.u++
	s.emit(s.ref[s.r].Text, Missing)
	s.r++
	return stateScanning
}

// drain flushes whatever one-sided remainder is left once the other sequence
// is exhausted: typed words as Wrong, reference words as Missing.
func (s *session) drain() state {
	for ; s.u < len(s.user); s.u++ {
		s.emit(s.user[s.u].Text, Wrong)
	}
	for ; s.r < len(s.ref); s.r++ {
		s.emit(s.ref[s.r].Text, Missing)
	}
	return stateDone
}

func (s *session) emit(text string, kind Kind) {
	s.out = append(s.out, AnnotatedWord{Text: text, Kind: kind})
}

func (s *session) equivalent(a, b Token) bool {
	return s.cmp.table.Equivalent(a.Normalized, b.Normalized)
}

func (s *session) mistake(a, b Token) bool {
	return IsMistake(a.Normalized, b.Normalized, s.cmp.cfg.MistakeThreshold)
}
