package main

import (
	"github.com/rs/zerolog"

	"snake-game/game/manager"
)

// logSessionSummary reports the session aggregates at exit. Per-run
// detail goes out at debug level.
func logSessionSummary(log zerolog.Logger, stats *manager.StateManager) {
	for i, record := range stats.History() {
		log.Debug().
			Int("run", i+1).
			Int("score", record.Score).
			Bool("won", record.Won).
			Dur("duration", record.Duration()).
			Msg("run record")
	}
	log.Info().
		Int("runs", stats.RunsPlayed()).
		Int("high_score", stats.HighScore()).
		Float64("average_score", stats.AverageScore()).
		Msg("session finished")
}
