package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a Machine to the platform's tick-driven game interface.
type Game struct {
	id       string
	title    string
	settings config.GameSettings

	machine  *Machine
	pending  *GameState // Restored on the next Reset if the size matches
	onChange func(GameState)
	tick     uint64

	best        int // Best recorded score for these settings
	lastOutcome Outcome
	err         error

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for a registered preset with the preset's own settings.
// Unknown IDs fall back to the default preset.
func New(id string) *Game {
	p, ok := GetPreset(id)
	if !ok {
		p = Presets[0]
	}
	return &Game{
		id:       p.ID,
		title:    p.Name,
		settings: p.Settings,
	}
}

// NewWithSettings creates a game with explicit settings, used for CLI
// overrides and edited boards.
func NewWithSettings(id, title string, s config.GameSettings) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Game{id: id, title: title, settings: s}, nil
}

func init() {
	for _, p := range Presets {
		id := p.ID
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Settings returns the settings of the current game.
func (g *Game) Settings() config.GameSettings {
	if g.machine != nil {
		return g.machine.Settings()
	}
	return g.settings
}

// Reset starts the game: a restored state if one is pending and fits the
// board size, a fresh board otherwise.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.lastOutcome = Moved

	g.err = nil

	rng := rand.New(rand.NewSource(cfg.Seed))
	m, err := NewMachine(g.settings, rng)
	if err != nil {
		// Constructors and ApplySettings validate the settings.
		panic(fmt.Sprintf("t2048: %v", err))
	}
	g.machine = m

	if g.pending != nil {
		// A failed restore leaves the fresh board in place.
		if err := g.restorePending(*g.pending); err != nil {
			g.err = fmt.Errorf("t2048: saved state not restored: %w", err)
		}
		g.pending = nil
	}

	m.OnChange(g.changed)
	g.changed(m.Current())

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) restorePending(s GameState) error {
	if s.Board.Size() != g.settings.BoardSize {
		return fmt.Errorf("%w: board is %dx%d, game is %dx%d", ErrInvalidBoard,
			s.Board.Size(), s.Board.Size(), g.settings.BoardSize, g.settings.BoardSize)
	}
	return g.machine.ResetWith(s)
}

// Err returns the error of the last Reset or Step, if any.
func (g *Game) Err() error {
	return g.err
}

// Restore queues a saved state for the next Reset, or applies it at once
// if the game is already running. States of another board size are rejected
// with ErrInvalidBoard.
func (g *Game) Restore(s GameState) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Board.Size() != g.Settings().BoardSize {
		return fmt.Errorf("%w: board is %dx%d, game is %dx%d", ErrInvalidBoard,
			s.Board.Size(), s.Board.Size(), g.Settings().BoardSize, g.Settings().BoardSize)
	}
	if g.machine == nil {
		clone := s.Clone()
		g.pending = &clone
		return nil
	}
	return g.machine.ResetWith(s)
}

// ApplySettings changes the settings of a running or future game.
// Returns true if the board was reset.
func (g *Game) ApplySettings(s config.GameSettings) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	g.settings = s
	if g.machine == nil {
		return false, nil
	}
	return g.machine.ApplySettings(s)
}

// OnChange registers fn to be called with every new game state.
func (g *Game) OnChange(fn func(GameState)) {
	g.onChange = fn
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Best returns the best score, including the current game.
func (g *Game) Best() int {
	if g.machine != nil {
		return max(g.best, g.machine.Current().Score)
	}
	return g.best
}

// Current returns the current state. The zero state before Reset.
func (g *Game) Current() GameState {
	if g.machine == nil {
		return GameState{}
	}
	return g.machine.Current()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	l := g.layout()
	g.tooSmall = w < l.minW || h < l.minH
}

func (g *Game) changed(s GameState) {
	if g.onChange != nil {
		g.onChange(s)
	}
}

// Step applies the actions of one tick.
// At most one board action is handled per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.err = nil

	if g.machine == nil {
		return core.StepResult{}
	}
	// Cells widen as tiles grow, so the fit can change between resizes.
	g.Resize(g.screenW, g.screenH)
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	changed := false
	switch {
	case in.Has(core.ActionRestart):
		if _, err := g.machine.Reset(); err != nil {
			g.err = err
			break
		}
		g.lastOutcome = Moved
		changed = true

	case in.Has(core.ActionUndo):
		changed = g.machine.Undo()
		if changed {
			g.lastOutcome = Moved
		}

	default:
		if d, ok := directionFor(in); ok {
			res, err := g.machine.ApplyMove(d)
			if err != nil {
				g.err = err
				break
			}
			g.lastOutcome = res.Outcome
			changed = res.Outcome == Moved
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor returns the first move action in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.machine.Current().Score,
		GameOver: g.machine.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
