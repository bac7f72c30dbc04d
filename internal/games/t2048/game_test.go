package t2048

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		g, err := registry.Create(p.ID)
		if err != nil {
			t.Fatalf("preset %q not registered: %v", p.ID, err)
		}
		if g.Title() != p.Name {
			t.Errorf("Title() = %q, want %q", g.Title(), p.Name)
		}
		if err := p.Settings.Validate(); err != nil {
			t.Errorf("preset %q has invalid settings: %v", p.ID, err)
		}
	}

	hard := New("2048_hard")
	if s := hard.Settings(); s.BoardSize != 4 || s.FourTilePercent != 50 {
		t.Errorf("2048_hard settings = %+v", s)
	}
}

func TestPresetSettingsFor(t *testing.T) {
	user := config.GameSettings{BoardSize: 5, FourTilePercent: 10}

	p, _ := GetPreset("2048")
	if s := p.SettingsFor(user); s != user {
		t.Errorf("2048 SettingsFor() = %+v, want %+v", s, user)
	}
	if s := p.SettingsFor(config.GameSettings{BoardSize: 0}); s != p.Settings {
		t.Errorf("invalid user settings should fall back, got %+v", s)
	}
	if s := New("2048").Settings(); s != config.DefaultGameSettings() {
		t.Errorf("New(2048) settings = %+v, want defaults", s)
	}

	// Fixed presets ignore the settings file.
	p, _ = GetPreset("2048_3x3")
	if s := p.SettingsFor(user); s.BoardSize != 3 {
		t.Errorf("2048_3x3 board size = %d", s.BoardSize)
	}
}

func TestGameStepMoves(t *testing.T) {
	g := New("2048_hard")
	g.Reset(testConfig())

	if err := g.Restore(GameState{Board: Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	res := g.Step(frame(core.ActionLeft))
	if !res.Changed {
		t.Fatal("left move should change the board")
	}
	if res.State.Score != 4 {
		t.Errorf("score = %d, want 4", res.State.Score)
	}
	if g.Current().Board[0][0] != 4 {
		t.Errorf("merged tile = %d, want 4", g.Current().Board[0][0])
	}

	// A blocked direction leaves everything alone and is reported in the snapshot.
	before := g.Current()
	for _, d := range MovableDirections(before.Board) {
		if d == DirLeft {
			t.Skip("spawn made left movable again")
		}
	}
	res = g.Step(frame(core.ActionLeft))
	if res.Changed || !g.Current().Equal(before) {
		t.Error("blocked move changed the game")
	}
	if g.Snapshot().LastOutcome != NotMovable {
		t.Errorf("LastOutcome = %s, want not_movable", g.Snapshot().LastOutcome)
	}
}

func TestGameUndoAndRestart(t *testing.T) {
	g := New("2048")
	g.Reset(testConfig())
	initial := g.Current()

	moved := false
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if g.Step(frame(a)).Changed {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("no direction moved a fresh board")
	}

	if !g.Step(frame(core.ActionUndo)).Changed {
		t.Error("undo should report a change")
	}
	if !g.Current().Equal(initial) {
		t.Error("undo did not restore the initial state")
	}
	if g.Step(frame(core.ActionUndo)).Changed {
		t.Error("undo at the first state should be a no-op")
	}

	_ = g.Restore(GameState{Board: Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, Score: 900})
	if !g.State().GameOver {
		t.Fatal("checkerboard should be game over")
	}

	res := g.Step(frame(core.ActionRestart))
	if !res.Changed || res.State.Score != 0 || res.State.GameOver {
		t.Errorf("restart result = %+v", res)
	}
}

func TestGamePause(t *testing.T) {
	g := New("2048")
	g.Reset(testConfig())
	before := g.Current()

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		g.Step(frame(a))
	}
	if !g.Current().Equal(before) {
		t.Error("moves while paused changed the board")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should be resumed")
	}
}

func TestGameRestorePending(t *testing.T) {
	saved := GameState{Board: Board{
		{0, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}, Score: 1500}

	g := New("2048_hard")
	if err := g.Restore(saved); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	var seen []GameState
	g.OnChange(func(s GameState) { seen = append(seen, s) })
	g.Reset(testConfig())

	if !g.Current().Equal(saved) {
		t.Errorf("Current() = %+v, want restored %+v", g.Current(), saved)
	}
	if len(seen) != 1 || !seen[0].Equal(saved) {
		t.Errorf("OnChange after Reset = %v", seen)
	}

	small := GameState{Board: Board{{2, 0}, {0, 0}}}
	if err := g.Restore(small); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Restore(2x2) on 4x4 error = %v, want ErrInvalidBoard", err)
	}
}

func TestGameApplySettings(t *testing.T) {
	g := New("2048")
	g.Reset(testConfig())

	reset, err := g.ApplySettings(config.GameSettings{BoardSize: 6, FourTilePercent: 25})
	if err != nil || !reset {
		t.Fatalf("ApplySettings = %v, %v; want reset", reset, err)
	}
	if g.Current().Board.Size() != 6 {
		t.Errorf("board size = %d, want 6", g.Current().Board.Size())
	}
	if _, err := g.ApplySettings(config.GameSettings{BoardSize: 40}); err == nil {
		t.Error("oversized board should be rejected")
	}
}

func TestGameResizeKeepsBoard(t *testing.T) {
	g := New("2048")
	g.Reset(testConfig())
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionDown))
	before := g.Current()

	g.Resize(20, 8)
	if !g.State().Paused {
		t.Error("tiny window should pause the game")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	g.Resize(100, 40)
	if g.State().Paused {
		t.Error("large window should resume the game")
	}
	if !g.Current().Equal(before) {
		t.Error("resize changed the board")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New("2048")
	g.Reset(cfg)
	_ = g.Restore(GameState{Board: Board{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16},
	}, Score: 20000})
	g.SetBest(12000)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 20000", "Best: 20000", "16", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	// Tile cells carry their tile color.
	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == '1' && c.Color == core.Tile16 {
				found = true
			}
		}
	}
	if !found {
		t.Error("16 tile not rendered with Tile16 color")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	cfg := testConfig()
	g := New("2048_3x3")
	g.Reset(cfg)
	_ = g.Restore(GameState{Board: Board{
		{2, 4, 2},
		{4, 2, 4},
		{2, 4, 2},
	}})

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("expected game over overlay:\n%s", screen.String())
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %s, want game_over", g.Snapshot().State)
	}
}

func TestGameErr(t *testing.T) {
	g := New("2048_3x3")
	saved := GameState{Board: Board{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}, Score: 12}

	if err := g.Restore(saved); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	g.Reset(testConfig())
	if g.Err() != nil || !g.Current().Equal(saved) {
		t.Fatalf("restore failed: err %v, current %v", g.Err(), g.Current())
	}

	// The size changes between queueing and starting.
	g = New("2048_3x3")
	if err := g.Restore(saved); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if _, err := g.ApplySettings(config.DefaultGameSettings()); err != nil {
		t.Fatalf("ApplySettings() failed: %v", err)
	}
	g.Reset(testConfig())
	if !errors.Is(g.Err(), ErrInvalidBoard) {
		t.Errorf("Err() = %v, want ErrInvalidBoard", g.Err())
	}
	if g.Current().Board.Size() != 4 || g.Current().Score != 0 {
		t.Errorf("expected a fresh 4x4 game, got %v", g.Current())
	}

	g.Step(frame(core.ActionRestart))
	if g.Err() != nil {
		t.Errorf("Step() should clear the error, got %v", g.Err())
	}
}

func TestGameRenderBlockedMove(t *testing.T) {
	cfg := testConfig()
	g := New("2048")
	g.Reset(cfg)
	_ = g.Restore(GameState{Board: Board{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}})

	if g.Step(frame(core.ActionLeft)).Changed {
		t.Fatal("left should be blocked")
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Blocked. Try right/down") {
		t.Errorf("HUD should list the open directions:\n%s", screen.String())
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() Snapshot {
		g := New("2048")
		g.Reset(testConfig())
		actions := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := range 100 {
			g.Step(frame(actions[i%len(actions)]))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !a.Board.Equal(b.Board) || a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}
