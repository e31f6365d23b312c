package screens

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/gametime"
	"github.com/milk9111/sokoban/input"
	"github.com/milk9111/sokoban/levels"
	"github.com/milk9111/sokoban/transition"
)

func testEnv(t *testing.T) *Env {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	lvls, err := levels.LoadAll()
	if err != nil {
		t.Fatalf("levels.LoadAll: %v", err)
	}
	return NewEnv(cfg, lvls)
}

func press(k input.Key) input.State {
	return input.State{Down: input.KeySet(k), Pressed: input.KeySet(k)}
}

// run updates the stack for n frames with no input and fails on any error.
func run(t *testing.T, env *Env, clock *gametime.Clock, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := env.Stack.Update(clock.Tick(), input.State{}); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}

func TestGameplayOpensWithWipe(t *testing.T) {
	env := testEnv(t)
	gp, err := NewGameplay(env)
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	env.Stack.Push(gp)
	clock := gametime.NewClock(60)

	run(t, env, clock, 1)
	if gp.Transition().State() != transition.StateRunning {
		t.Fatalf("expected the wipe to start on the first frame, got %v", gp.Transition().State())
	}
	if gp.Levels().Visible() {
		t.Fatalf("no level should show before the screen is covered")
	}

	// cover, swap, reveal
	run(t, env, clock, 300)
	if gp.Transition().State() != transition.StateIdle {
		t.Fatalf("expected idle wipe, got %v", gp.Transition().State())
	}
	if gp.Transition().Direction() != 1 {
		t.Fatalf("expected direction reset to forward, got %d", gp.Transition().Direction())
	}
	if !gp.Levels().Visible() || gp.Levels().Index() != 0 {
		t.Fatalf("expected first level on screen, visible=%v index=%d", gp.Levels().Visible(), gp.Levels().Index())
	}
	for i, s := range gp.Transition().Strips() {
		if s.Progress() != 0 {
			t.Fatalf("strip %d still covering the level: %v", i, s.Progress())
		}
	}
}

func TestGameplayStartAdvancesLevel(t *testing.T) {
	env := testEnv(t)
	gp, err := NewGameplay(env)
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	env.Stack.Push(gp)
	clock := gametime.NewClock(60)
	run(t, env, clock, 300)

	if err := env.Stack.Update(clock.Tick(), press(input.KeyStart)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gp.Transition().State() == transition.StateIdle {
		t.Fatalf("start should begin the wipe")
	}

	// pressing again mid-wipe is ignored
	if err := env.Stack.Update(clock.Tick(), press(input.KeyStart)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	run(t, env, clock, 300)

	if gp.Levels().Index() != 1 {
		t.Fatalf("expected second level, got %d", gp.Levels().Index())
	}
	if gp.Transition().State() != transition.StateIdle {
		t.Fatalf("expected idle wipe, got %v", gp.Transition().State())
	}
}

func TestGameplayBackReturnsToMenu(t *testing.T) {
	env := testEnv(t)
	gp, err := NewGameplay(env)
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	env.Stack.Push(gp)
	clock := gametime.NewClock(60)

	// ignored while the wipe runs
	if err := env.Stack.Update(clock.Tick(), press(input.KeyBack)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if env.Stack.Top() != gp {
		t.Fatalf("back must be ignored during the wipe")
	}

	run(t, env, clock, 300)
	if err := env.Stack.Update(clock.Tick(), press(input.KeyBack)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, ok := env.Stack.Top().(*MainMenu); !ok {
		t.Fatalf("expected main menu on top, got %T", env.Stack.Top())
	}
	if env.Stack.Len() != 2 {
		t.Fatalf("expected background and menu, got %d scenes", env.Stack.Len())
	}
}

func TestNewGameplayRejectsBadTransition(t *testing.T) {
	env := testEnv(t)
	env.Config.Transition.Columns = 0
	if _, err := NewGameplay(env); !errors.Is(err, transition.ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestLevelManager(t *testing.T) {
	lvls := []*levels.Level{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	cases := []struct {
		name  string
		start int
		loads int
		want  string
	}{
		{"hidden", 0, 0, ""},
		{"first_load_shows_start", 0, 1, "a"},
		{"advances", 0, 2, "b"},
		{"wraps", 0, 4, "a"},
		{"custom_start", 2, 1, "c"},
		{"custom_start_wraps", 2, 2, "a"},
		{"start_out_of_range", 4, 1, "b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewLevelManager(lvls, c.start)
			for i := 0; i < c.loads; i++ {
				m.LoadNextLevel()
			}
			got := ""
			if lvl := m.Current(); lvl != nil {
				got = lvl.Name
			}
			if got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		m := NewLevelManager(nil, 3)
		m.LoadNextLevel()
		if m.Current() != nil || m.Visible() {
			t.Fatalf("empty manager must show nothing")
		}
	})
}

func TestMainMenuNavigation(t *testing.T) {
	env := testEnv(t)
	m := NewMainMenu(env)
	env.Stack.Push(m)
	clock := gametime.NewClock(60)

	steps := []struct {
		key  input.Key
		want string
	}{
		{input.KeyDown, "options"},
		{input.KeyDown, "quit"},
		{input.KeyDown, "play sokoban"},
		{input.KeyUp, "quit"},
		{input.KeyUp, "options"},
	}
	for i, s := range steps {
		if err := env.Stack.Update(clock.Tick(), press(s.key)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := m.Selected(); got != s.want {
			t.Fatalf("step %d: expected %q, got %q", i, s.want, got)
		}
	}
}

func TestMainMenuPlay(t *testing.T) {
	env := testEnv(t)
	m := NewMainMenu(env)
	env.Stack.Push(m)
	clock := gametime.NewClock(60)

	if err := env.Stack.Update(clock.Tick(), press(input.KeyStart)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if env.Stack.Top() != m {
		t.Fatalf("menu should fade out before switching")
	}

	run(t, env, clock, 60)
	if _, ok := env.Stack.Top().(*Gameplay); !ok {
		t.Fatalf("expected gameplay on top, got %T", env.Stack.Top())
	}
}

func TestMainMenuQuitConfirmation(t *testing.T) {
	env := testEnv(t)
	m := NewMainMenu(env)
	env.Stack.Push(m)
	clock := gametime.NewClock(60)

	if err := env.Stack.Update(clock.Tick(), press(input.KeyBack)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	confirm, ok := env.Stack.Top().(*ConfirmQuit)
	if !ok {
		t.Fatalf("expected confirmation popup, got %T", env.Stack.Top())
	}

	// a second cancel from the menu must not stack another popup
	m.cancel()
	if env.Stack.Len() != 3 {
		t.Fatalf("expected a single popup, got %d scenes", env.Stack.Len())
	}

	if err := env.Stack.Update(clock.Tick(), press(input.KeyBack)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if env.Stack.Top() != m {
		t.Fatalf("back should dismiss the popup, top is %T", env.Stack.Top())
	}

	env.Stack.Push(confirm)
	err := env.Stack.Update(clock.Tick(), press(input.KeyStart))
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestSplashFadesIntoMenu(t *testing.T) {
	env := testEnv(t)
	env.Stack.Push(NewSplash(env))
	clock := gametime.NewClock(60)

	run(t, env, clock, 120)
	if _, ok := env.Stack.Top().(*Splash); !ok {
		t.Fatalf("splash must wait for start, top is %T", env.Stack.Top())
	}

	if err := env.Stack.Update(clock.Tick(), press(input.KeyStart)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	run(t, env, clock, 60)
	if _, ok := env.Stack.Top().(*MainMenu); !ok {
		t.Fatalf("expected main menu after the fade, got %T", env.Stack.Top())
	}
}

func TestGameplayConfigReload(t *testing.T) {
	cases := []struct {
		name string
		// settle runs the opening wipe to idle before the reload arrives.
		settle      bool
		columns     int
		wantColumns int
		// wantHeld means the reload is still pending after one frame.
		wantHeld bool
	}{
		{"held_while_wiping", false, 8, 16, true},
		{"applied_when_idle", true, 8, 8, false},
		{"invalid_grid_keeps_old", true, 0, 16, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := testEnv(t)
			gp, err := NewGameplay(env)
			if err != nil {
				t.Fatalf("NewGameplay: %v", err)
			}
			env.Stack.Push(gp)
			clock := gametime.NewClock(60)

			if c.settle {
				run(t, env, clock, 300)
			} else {
				run(t, env, clock, 1)
			}
			old := gp.Transition()

			cfg := env.Config
			cfg.Transition.Columns = c.columns
			gp.reload = &cfg
			run(t, env, clock, 1)

			if got := gp.Transition().Config().Columns; got != c.wantColumns {
				t.Fatalf("expected %d columns, got %d", c.wantColumns, got)
			}
			if held := gp.reload != nil; held != c.wantHeld {
				t.Fatalf("expected pending reload=%v, got %v", c.wantHeld, held)
			}
			if c.wantHeld && gp.Transition().State() == transition.StateIdle {
				t.Fatalf("wipe should still be running")
			}
			if c.wantColumns != c.columns && gp.Transition() != old {
				t.Fatalf("transition must not be replaced")
			}
			if env.Config.Transition.Columns != c.wantColumns {
				t.Fatalf("env config has %d columns, want %d", env.Config.Transition.Columns, c.wantColumns)
			}

			// whatever is installed must still run the full cover, swap, reveal
			run(t, env, clock, 300)
			if gp.reload != nil {
				t.Fatalf("reload still pending after the wipe finished")
			}
			before := gp.Levels().Index()
			if err := env.Stack.Update(clock.Tick(), press(input.KeyStart)); err != nil {
				t.Fatalf("Update: %v", err)
			}
			run(t, env, clock, 300)

			tt := gp.Transition()
			if tt.StripCount() != tt.Config().Columns+tt.Config().Rows-1 {
				t.Fatalf("strip count %d does not match grid", tt.StripCount())
			}
			if tt.State() != transition.StateIdle || tt.Direction() != 1 {
				t.Fatalf("expected idle forward wipe, state=%v dir=%d", tt.State(), tt.Direction())
			}
			if want := (before + 1) % len(env.Levels); gp.Levels().Index() != want {
				t.Fatalf("expected level %d after the wipe, got %d", want, gp.Levels().Index())
			}
		})
	}
}
