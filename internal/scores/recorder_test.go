package scores

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

type memorySink struct {
	records []Record
	err     error
}

func (m *memorySink) SaveScore(rec Record) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, rec)
	return int64(len(m.records)), nil
}

func state(score int) t2048.GameState {
	b, _ := t2048.NewEmpty(4)
	return t2048.GameState{Board: b, Score: score}
}

func TestRecorder(t *testing.T) {
	classic := config.DefaultGameSettings()
	big := config.GameSettings{BoardSize: 6, FourTilePercent: 25}

	type step struct {
		score    int
		settings config.GameSettings
	}

	tests := []struct {
		name  string
		steps []step
		want  []int
	}{
		{
			name:  "first observation only primes",
			steps: []step{{0, classic}},
			want:  nil,
		},
		{
			name:  "restored high score then new game",
			steps: []step{{1200, classic}, {0, classic}},
			want:  []int{1200},
		},
		{
			name:  "score must exceed the minimum",
			steps: []step{{0, classic}, {500, classic}, {0, classic}},
			want:  nil,
		},
		{
			name:  "just above the minimum",
			steps: []step{{0, classic}, {504, classic}, {0, classic}},
			want:  []int{504},
		},
		{
			name:  "consecutive zero states record once",
			steps: []step{{0, classic}, {900, classic}, {0, classic}, {0, classic}, {0, classic}},
			want:  []int{900},
		},
		{
			name:  "undo to a lower score does not record",
			steps: []step{{0, classic}, {800, classic}, {760, classic}, {0, classic}},
			want:  []int{760},
		},
		{
			name:  "two games",
			steps: []step{{0, classic}, {600, classic}, {0, classic}, {700, big}, {0, big}},
			want:  []int{600, 700},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &memorySink{}
			r := NewRecorder(sink, DefaultMinScore)

			for _, s := range tt.steps {
				if _, _, err := r.Observe(state(s.score), s.settings); err != nil {
					t.Fatalf("Observe(%d): %v", s.score, err)
				}
			}

			if len(sink.records) != len(tt.want) {
				t.Fatalf("recorded %d scores, want %d (%v)", len(sink.records), len(tt.want), sink.records)
			}
			for i, rec := range sink.records {
				if rec.Value != tt.want[i] {
					t.Errorf("record %d = %d, want %d", i, rec.Value, tt.want[i])
				}
			}
		})
	}
}

func TestRecorderKeepsPlayedSettings(t *testing.T) {
	sink := &memorySink{}
	r := NewRecorder(sink, 0)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return at })

	played := config.GameSettings{BoardSize: 5, FourTilePercent: 10}
	next := config.GameSettings{BoardSize: 3, FourTilePercent: 10}

	r.Observe(state(0), played)
	r.Observe(state(64), played)
	rec, ok, err := r.Observe(state(0), next)
	if err != nil || !ok {
		t.Fatalf("Observe = %v, %v", ok, err)
	}

	if rec.Settings != played {
		t.Errorf("Settings = %+v, want the settings the game was played with %+v", rec.Settings, played)
	}
	if !rec.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v, want %v", rec.RecordedAt, at)
	}
}

func TestRecorderSinkError(t *testing.T) {
	boom := errors.New("disk full")
	sink := &memorySink{err: boom}
	r := NewRecorder(sink, 10)

	r.Observe(state(0), config.DefaultGameSettings())
	r.Observe(state(100), config.DefaultGameSettings())
	_, ok, err := r.Observe(state(0), config.DefaultGameSettings())

	if ok || !errors.Is(err, boom) {
		t.Errorf("Observe = %v, %v; want false, wrapped sink error", ok, err)
	}

	// The failed record is not retried by the next new game.
	if _, ok, err := r.Observe(state(0), config.DefaultGameSettings()); ok || err != nil {
		t.Errorf("second Observe = %v, %v; want false, nil", ok, err)
	}
}
