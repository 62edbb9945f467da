package manager

import (
	"testing"
	"time"
)

func record(score int) RunRecord {
	now := time.Now()
	return RunRecord{Score: score, StartedAt: now.Add(-time.Minute), EndedAt: now}
}

func TestRecordRunRaisesHighScore(t *testing.T) {
	sm := NewStateManager()

	sm.RecordRun(record(5))
	if sm.HighScore() != 5 {
		t.Errorf("Expected high score 5, got %d", sm.HighScore())
	}

	sm.RecordRun(record(10))
	if sm.HighScore() != 10 {
		t.Errorf("Expected high score 10, got %d", sm.HighScore())
	}
}

func TestLowerScoreKeepsHighScore(t *testing.T) {
	sm := NewStateManager()

	sm.RecordRun(record(10))
	sm.RecordRun(record(3))
	if sm.HighScore() != 10 {
		t.Errorf("Expected high score 10, got %d", sm.HighScore())
	}

	sm.RecordRun(record(10))
	if sm.HighScore() != 10 {
		t.Errorf("Expected high score unchanged at 10, got %d", sm.HighScore())
	}
}

func TestAverageScore(t *testing.T) {
	sm := NewStateManager()

	if got := sm.AverageScore(); got != 0 {
		t.Errorf("Expected average 0 with no runs, got %v", got)
	}

	sm.RecordRun(record(4))
	sm.RecordRun(record(8))
	if got := sm.AverageScore(); got != 6 {
		t.Errorf("Expected average 6, got %v", got)
	}
	if sm.RunsPlayed() != 2 {
		t.Errorf("Expected 2 runs played, got %d", sm.RunsPlayed())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	sm := NewStateManager()
	sm.RecordRun(record(7))

	history := sm.History()
	history[0].Score = 99

	if sm.History()[0].Score != 7 {
		t.Error("Mutating the returned history reached the manager")
	}
}
