package compare

// Realignment searches the reference stream for a pair of consecutive tokens
// ("duble") matching a pair from the attempt. A two-token window is the
// smallest unit that makes a coincidental collision on a common word
// unlikely; pairLen is the single tuning point should longer windows ever be
// wanted.
const pairLen = 2

// realignPairs scans the unmatched reference suffix in consecutive
// non-overlapping windows of WindowSize tokens, up to MaxSearch tokens ahead,
// testing every reference pair against every attempt pair (earliest attempt
// pair first). On the first pairwise-equivalent hit it classifies the skipped
// gap, emits the matched pair as Correct, and advances both cursors past the
// match. Returns false when no pair matches inside the bounded search.
func (s *session) realignPairs() bool {
	userRest := s.user[s.u:]
	refRest := s.ref[s.r:]
	limit := len(refRest)
	if limit > s.cmp.cfg.MaxSearch {
		limit = s.cmp.cfg.MaxSearch
	}
	for uo := 0; uo+pairLen <= len(userRest); uo++ {
		for ws := 0; ws < limit; ws += s.cmp.cfg.WindowSize {
			we := ws + s.cmp.cfg.WindowSize
			if we > len(refRest) {
				we = len(refRest)
			}
			window := refRest[ws:we]
			for ro := 0; ro+pairLen <= len(window); ro++ {
				if !s.pairEquivalent(userRest[uo:uo+pairLen], window[ro:ro+pairLen]) {
					continue
				}
				matchRef := s.r + ws + ro
				s.resolveGap(s.u+uo, matchRef)
				for i := 0; i < pairLen; i++ {
					s.emit(userRest[uo+i].Text, Correct)
				}
				s.matchedOnce = true
				s.u += uo + pairLen
				s.r = matchRef + pairLen
				return true
			}
		}
	}
	return false
}

func (s *session) pairEquivalent(a, b []Token) bool {
	for i := range a {
		if !s.equivalent(a[i], b[i]) {
			return false
		}
	}
	return true
}

// realignSingle is the fallback when no pair matches: walk the reference
// suffix comparing each token against the single next attempt token. On the
// first equivalent or near-miss hit, reference tokens skipped on the way are
// emitted as Missing and one classified token is emitted; both cursors
// advance past the hit. Returns false when the bounded walk finds nothing.
func (s *session) realignSingle() bool {
	uw := s.user[s.u]
	limit := s.r + s.cmp.cfg.MaxSearch
	if limit > len(s.ref) {
		limit = len(s.ref)
	}
	for r := s.r; r < limit; r++ {
		var kind Kind
		switch {
		case s.equivalent(uw, s.ref[r]):
			kind = Correct
		case s.mistake(uw, s.ref[r]):
			kind = Mistake
		default:
			continue
		}
		for i := s.r; i < r; i++ {
			s.emit(s.ref[i].Text, Missing)
		}
		s.emit(uw.Text, kind)
		s.matchedOnce = true
		s.u++
		s.r = r + 1
		return true
	}
	return false
}

// resolveGap classifies every token between the current cursors and a found
// re-sync point (attempt tokens up to uEnd, reference tokens up to rEnd).
// Before anything has matched, the skipped reference prefix models an attempt
// that started from the wrong point: it is backfilled as Missing wholesale
// and the attempt-side gap is Wrong. After the first match the gap is
// pairwise-resolved instead.
func (s *session) resolveGap(uEnd, rEnd int) {
	userGap := s.user[s.u:uEnd]
	refGap := s.ref[s.r:rEnd]
	if !s.matchedOnce {
		for _, t := range refGap {
			s.emit(t.Text, Missing)
		}
		for _, t := range userGap {
			s.emit(t.Text, Wrong)
		}
		return
	}
	s.fillGap(userGap, refGap)
}

// fillGap pairwise-matches the two sides of a gap. For each reference token
// it takes the first unconsumed equivalent attempt token, then the first
// unconsumed near-miss, else emits the reference token as Missing; leftover
// attempt tokens are Wrong in original order. O(gap²), bounded by the
// realignment windows rather than input length.
func (s *session) fillGap(userGap, refGap []Token) {
	used := make([]bool, len(userGap))
	for _, rw := range refGap {
		if i := s.takeMatch(userGap, used, rw, s.equivalent); i >= 0 {
			s.emit(userGap[i].Text, Correct)
			continue
		}
		if i := s.takeMatch(userGap, used, rw, s.mistake); i >= 0 {
			s.emit(userGap[i].Text, Mistake)
			continue
		}
		s.emit(rw.Text, Missing)
	}
	for i, u := range used {
		if !u {
			s.emit(userGap[i].Text, Wrong)
		}
	}
}

// takeMatch finds the first unconsumed gap token accepted by match, marks it
// consumed, and returns its index, or -1.
func (s *session) takeMatch(gap []Token, used []bool, rw Token, match func(a, b Token) bool) int {
	for i, uw := range gap {
		if !used[i] && match(uw, rw) {
			used[i] = true
			return i
		}
	}
	return -1
}
