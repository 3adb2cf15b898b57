// Package model defines shared data structures.
package model

import "time"

// PracticeConfig defines settings for a practice run.
type PracticeConfig struct {
	Transcript       string
	MistakeThreshold float64
	WindowSize       int
	MaxSearch        int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Transcript  string
	Since       *time.Time
	Last        int
	CurveWindow int
	Words       int
}

// SessionStats captures one completed dictation attempt.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Transcript string
	Correct    int
	Mistake    int
	Missing    int
	Wrong      int
	Total      int
	Accuracy   float64
	DurationMs int64
}

// WordStats stores per-reference-word outcomes for a session.
type WordStats struct {
	Word    string
	Correct int
	Mistake int
	Missing int
}

// WordAggregate aggregates word outcomes across sessions.
type WordAggregate struct {
	Word    string
	Correct int
	Mistake int
	Missing int
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Transcript string
	Correct    int
	Mistake    int
	Missing    int
	Wrong      int
	Total      int
	Accuracy   float64
	DurationMs int64
}
