package compare

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Similarity returns a character-level similarity ratio in [0,1] between two
// normalized words, computed as 1 - editDistance/maxLength. Two empty words
// are fully similar; one empty word is fully dissimilar.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	dist := matchr.Levenshtein(a, b)
	if dist > longest {
		dist = longest
	}
	return 1 - float64(dist)/float64(longest)
}

// IsMistake reports whether a non-equivalent pair is still a near-miss:
// similar at or above threshold. Callers check equivalence first; IsMistake
// itself only looks at the ratio.
func IsMistake(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}
