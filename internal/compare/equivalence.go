package compare

// Table is an immutable, symmetric word-equivalence lookup. Two normalized
// words are equivalent when they are equal or when either direction of the
// pair appears in the table. The table is data: extending it never touches
// the alignment algorithm.
type Table struct {
	pairs map[string]map[string]struct{}
}

// builtinEquivalents lists normalized word pairs treated as the same word.
// Contractions mostly collapse during normalization ("it's" -> "its"), so the
// entries that matter are the ones normalization cannot unify.
var builtinEquivalents = [][2]string{
	{"cant", "cannot"},
	{"ok", "okay"},
	{"mr", "mister"},
	{"mrs", "missus"},
	{"dr", "doctor"},
	{"st", "saint"},
	{"vs", "versus"},
	{"etc", "etcetera"},
	{"colour", "color"},
	{"favourite", "favorite"},
	{"grey", "gray"},
	{"theatre", "theater"},
	{"centre", "center"},
	{"1", "one"},
	{"2", "two"},
	{"3", "three"},
	{"4", "four"},
	{"5", "five"},
	{"6", "six"},
	{"7", "seven"},
	{"8", "eight"},
	{"9", "nine"},
	{"10", "ten"},
}

// NewTable builds an equivalence table from the built-in pairs plus extra
// caller-supplied pairs. Entries are normalized before insertion, so callers
// may pass surface forms such as "it's".
func NewTable(extra map[string]string) *Table {
	t := &Table{pairs: make(map[string]map[string]struct{}, len(builtinEquivalents)*2)}
	for _, p := range builtinEquivalents {
		t.add(p[0], p[1])
	}
	for a, b := range extra {
		t.add(Normalize(a), Normalize(b))
	}
	return t
}

// DefaultTable returns a table with only the built-in pairs.
func DefaultTable() *Table {
	return NewTable(nil)
}

func (t *Table) add(a, b string) {
	if a == "" || b == "" || a == b {
		return
	}
	t.insert(a, b)
	t.insert(b, a)
}

func (t *Table) insert(key, val string) {
	set, ok := t.pairs[key]
	if !ok {
		set = make(map[string]struct{}, 1)
		t.pairs[key] = set
	}
	set[val] = struct{}{}
}

// Equivalent reports whether two normalized words denote the same word.
// Unknown pairs are simply not equivalent; Equivalent never fails.
func (t *Table) Equivalent(a, b string) bool {
	if a == b {
		return true
	}
	if set, ok := t.pairs[a]; ok {
		if _, ok := set[b]; ok {
			return true
		}
	}
	return false
}
