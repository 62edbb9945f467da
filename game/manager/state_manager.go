package manager

import (
	"time"
)

// RunRecord holds the outcome of one finished run.
type RunRecord struct {
	Score     int
	Won       bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock length of the run.
func (r RunRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// StateManager tracks scores across the runs of one session. It lives
// in memory only; the session summary is reported through the logger at
// exit, nothing is written to disk.
type StateManager struct {
	highScore int
	history   []RunRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RunRecord, 0),
	}
}

// RecordRun appends a finished run and raises the session high score if
// the run beat it.
func (sm *StateManager) RecordRun(record RunRecord) {
	sm.history = append(sm.history, record)
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
}

// HighScore returns the best score of the session so far.
func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// RunsPlayed returns how many runs have finished this session.
func (sm *StateManager) RunsPlayed() int {
	return len(sm.history)
}

// AverageScore returns the mean score over finished runs, zero when no
// run has finished.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, record := range sm.history {
		sum += record.Score
	}
	return float64(sum) / float64(len(sm.history))
}

// History returns a copy of the recorded runs.
func (sm *StateManager) History() []RunRecord {
	out := make([]RunRecord, len(sm.history))
	copy(out, sm.history)
	return out
}
