package stats

import (
	"context"

	"github.com/verte-zerg/dictype/internal/model"
	"github.com/verte-zerg/dictype/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions     []model.SessionAggregate
	TroubleWords []model.WordAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}

	window := cfg.CurveWindow
	if window <= 0 {
		window = len(sessions)
	}
	trouble, err := st.GetTroubleWords(ctx, window, cfg.Transcript)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sessions:     sessions,
		TroubleWords: trouble,
	}, nil
}
