package stats

import (
	"sort"

	"github.com/verte-zerg/dictype/internal/compare"
	"github.com/verte-zerg/dictype/internal/model"
)

// BuildWordStats aggregates annotated words into per-word outcome counts.
// Wrong words are the user's own insertions, not reference words, so they
// carry no per-word record.
func BuildWordStats(words []compare.AnnotatedWord) []model.WordStats {
	byWord := map[string]*model.WordStats{}
	for _, w := range words {
		key := compare.Normalize(w.Text)
		if key == "" {
			continue
		}
		var field *int
		switch w.Kind {
		case compare.Correct:
			ws := ensureWord(byWord, key)
			field = &ws.Correct
		case compare.Mistake:
			ws := ensureWord(byWord, key)
			field = &ws.Mistake
		case compare.Missing:
			ws := ensureWord(byWord, key)
			field = &ws.Missing
		default:
			continue
		}
		*field++
	}
	out := make([]model.WordStats, 0, len(byWord))
	for _, ws := range byWord {
		out = append(out, *ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

func ensureWord(byWord map[string]*model.WordStats, key string) *model.WordStats {
	ws, ok := byWord[key]
	if !ok {
		ws = &model.WordStats{Word: key}
		byWord[key] = ws
	}
	return ws
}
