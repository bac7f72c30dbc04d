// Package scores detects finished games in a stream of game states and
// records their final scores.
package scores

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// DefaultMinScore is the score a game must exceed to be recorded.
const DefaultMinScore = 500

// Record is one finished game.
type Record struct {
	Value      int
	RecordedAt time.Time
	Settings   config.GameSettings
}

// Sink persists records.
type Sink interface {
	SaveScore(rec Record) (int64, error)
}

// Recorder watches game states and records a score whenever a game with a
// meaningful score is replaced by a new one (a state with score 0).
// A Recorder is not safe for concurrent use; give each session its own.
type Recorder struct {
	sink     Sink
	minScore int
	now      func() time.Time

	primed       bool
	lastScore    int
	lastSettings config.GameSettings
}

// NewRecorder creates a recorder that writes to sink. Scores at or below
// minScore are not recorded.
func NewRecorder(sink Sink, minScore int) *Recorder {
	return &Recorder{
		sink:     sink,
		minScore: minScore,
		now:      time.Now,
	}
}

// SetClock replaces the timestamp source.
func (r *Recorder) SetClock(now func() time.Time) {
	r.now = now
}

// Observe feeds the next state. The first call only primes the recorder.
// A score-0 state after a last score above the minimum records that score
// with the settings it was played under. Returns the record and true when
// one was written.
func (r *Recorder) Observe(st t2048.GameState, settings config.GameSettings) (Record, bool, error) {
	if !r.primed {
		r.prime(st.Score, settings)
		return Record{}, false, nil
	}

	if st.Score != 0 || r.lastScore <= r.minScore {
		r.prime(st.Score, settings)
		return Record{}, false, nil
	}

	rec := Record{
		Value:      r.lastScore,
		RecordedAt: r.now(),
		Settings:   r.lastSettings,
	}
	// Re-prime first so a failed write is not retried by the next state.
	r.prime(0, settings)

	if r.sink == nil {
		return rec, false, nil
	}
	if _, err := r.sink.SaveScore(rec); err != nil {
		return rec, false, fmt.Errorf("scores: cannot record %d: %w", rec.Value, err)
	}
	return rec, true, nil
}

func (r *Recorder) prime(score int, settings config.GameSettings) {
	r.primed = true
	r.lastScore = score
	r.lastSettings = settings
}
