package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
	"snake-game/ui"
)

// Loop drives one session around the game state: it renders every
// iteration, consumes at most one input event per iteration, and
// commits a simulation tick whenever the current interval has elapsed.
// Everything runs on the calling goroutine; tcell delivers events on a
// channel that the same select consumes.
type Loop struct {
	game     *game.Game
	screen   tcell.Screen
	renderer *ui.Renderer
	stats    *manager.StateManager
	log      zerolog.Logger
}

func NewLoop(g *game.Game, screen tcell.Screen, renderer *ui.Renderer, stats *manager.StateManager, log zerolog.Logger) *Loop {
	return &Loop{
		game:     g,
		screen:   screen,
		renderer: renderer,
		stats:    stats,
		log:      log,
	}
}

// Run blocks until the player quits. Quitting works in any phase; the
// game-over screen additionally accepts R to start a fresh run.
func (l *Loop) Run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go l.screen.ChannelEvents(events, quit)
	defer close(quit)

	lastTick := time.Now()
	runStart := time.Now()

	for {
		l.renderer.Draw(l.game.Snapshot(), l.stats.HighScore())

		// Wait for one event, but never past the tick deadline, so a
		// held-down key cannot stall the simulation.
		timeout := l.game.TickInterval() - time.Since(lastTick)
		if timeout < 0 {
			timeout = 0
		}
		timer := time.NewTimer(timeout)

		select {
		case ev := <-events:
			timer.Stop()
			switch ev := ev.(type) {
			case *tcell.EventResize:
				l.screen.Sync()
			case *tcell.EventKey:
				cmd, dir := ui.TranslateKey(ev)
				switch cmd {
				case ui.CommandQuit:
					return
				case ui.CommandMove:
					l.game.QueueDirection(dir)
				case ui.CommandRestart:
					// Restart only acknowledges the end screen; mid-run
					// it is ignored.
					if l.game.Phase() == types.GameOver {
						l.game.Restart()
						lastTick = time.Now()
						runStart = time.Now()
						l.log.Info().Msg("run restarted")
					}
				}
			}
		case <-timer.C:
		}

		// The tick clock resets even on no-op ticks at game over, which
		// keeps the end screen rendering at tick cadence instead of
		// spinning on a zero timeout.
		if time.Since(lastTick) >= l.game.TickInterval() {
			wasPlaying := l.game.Phase() == types.Playing
			l.game.AdvanceTick()
			lastTick = time.Now()

			if wasPlaying && l.game.Phase() == types.GameOver {
				record := manager.RunRecord{
					Score:     l.game.Score(),
					Won:       l.game.Won(),
					StartedAt: runStart,
					EndedAt:   time.Now(),
				}
				l.stats.RecordRun(record)
				l.log.Info().
					Int("score", record.Score).
					Bool("won", record.Won).
					Dur("duration", record.Duration()).
					Msg("run ended")
			}
		}
	}
}
