package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1 := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g1.Reset(cfg)
	g2 := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch {
		case i >= 20 && i < 30:
			input.Set(core.KeyD)
		case i >= 60 && i < 70:
			input.Set(core.KeyArrowDown)
		case i >= 200 && i < 210:
			input.Set(core.KeyA)
		}

		r1 := g1.Step(input)
		r2 := g2.Step(input)
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("step %d: results diverged: %+v vs %+v", i, r1, r2)
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestGameStepReportsState(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	var last core.StepResult
	for i := 0; i < 61; i++ {
		last = g.Step(core.NewInputFrame())
	}

	if last.State.Frame != 61 {
		t.Errorf("Frame = %d, expected 61", last.State.Frame)
	}
	if last.State.Length != 2 {
		t.Errorf("Length = %d, expected 2", last.State.Length)
	}
	// 61 frames at 60 FPS cover just over one second, so the spawner ran once.
	if last.State.Food != 1 {
		t.Errorf("Food = %d, expected 1", last.State.Food)
	}
	if pos, _ := g.Snake().Head(); pos.Y <= 3 {
		t.Errorf("head should have moved up from (3,3), got %v", pos)
	}
}

func TestGameResetEvent(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})

	// Heading up from (3,3) the head leaves the arena on the move to y = 11.
	resetSeen := false
	for i := 0; i < 600 && !resetSeen; i++ {
		res := g.Step(core.NewInputFrame())
		resetSeen = res.Has(core.EventReset)
	}

	if !resetSeen {
		t.Fatal("expected a reset after running into the top wall")
	}
	if st := g.State(); st.Resets != 1 || st.Length != 2 || st.Food != 0 {
		t.Errorf("state after reset = %+v", st)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	if st := g.State(); st != (core.GameState{}) {
		t.Errorf("State() before Reset = %+v, expected zero", st)
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Frame != 1 || res.State.Length != 2 {
		t.Errorf("Step() before Reset = %+v", res.State)
	}
}

func TestVariants(t *testing.T) {
	for _, id := range []string{"snake", "snake_large"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	g, err := registry.Create("snake_large")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "snake_large" || g.Title() != "Snake (Large)" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	large := NewWithConfig(VariantLarge, config.DefaultSnakeConfig())
	large.Reset(core.DefaultConfig())
	if got := large.Snake().Arena(); got != (grid.Arena{Width: 20, Height: 20}) {
		t.Errorf("large arena = %+v, expected 20x20", got)
	}

	classic := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	classic.Reset(core.DefaultConfig())
	if got := classic.Snake().Arena(); got != (grid.Arena{Width: 10, Height: 10}) {
		t.Errorf("classic arena = %+v, expected 10x10", got)
	}
}

func TestSetConfigAppliesToNewGames(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Arena.Width = 14
	SetConfig(cfg)
	defer SetConfig(config.DefaultSnakeConfig())

	g := New()
	g.Reset(core.DefaultConfig())
	if got := g.Snake().Arena().Width; got != 14 {
		t.Errorf("arena width = %d, expected 14", got)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g.Reset(core.DefaultConfig())
	g.Snake().spawnFoodAt(grid.Position{X: 0, Y: 0})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Length: 2") {
		t.Errorf("HUD missing length: %q", screen.Row(0))
	}

	l := newLayout(grid.Arena{Width: 10, Height: 10}, 2, 80)
	checks := []struct {
		name  string
		pos   grid.Position
		glyph rune
		color core.Color
	}{
		{"head", grid.Position{X: 3, Y: 3}, '█', core.ColorBrightWhite},
		{"tail", grid.Position{X: 3, Y: 2}, '▓', core.ColorGray},
		{"food", grid.Position{X: 0, Y: 0}, '█', core.ColorMagenta},
	}
	for _, c := range checks {
		x, y, ok := l.project(c.pos)
		if !ok {
			t.Fatalf("%s: %v not projectable", c.name, c.pos)
		}
		for i := 0; i < 2; i++ {
			cell := screen.GetCell(x+i, y)
			if cell.Rune != c.glyph || cell.Color != c.color {
				t.Errorf("%s at column %d = %+v, expected %q/%v", c.name, i, cell, c.glyph, c.color)
			}
		}
	}

	if got := screen.Get(l.box.X, l.box.Y); got != '┌' {
		t.Errorf("border corner = %q, expected ┌", got)
	}
}

func TestLayoutFlipsRows(t *testing.T) {
	l := newLayout(grid.Arena{Width: 10, Height: 10}, 2, 80)

	_, top, _ := l.project(grid.Position{X: 0, Y: 10})
	_, bottom, _ := l.project(grid.Position{X: 0, Y: 0})
	if top != l.box.Y+1 {
		t.Errorf("y = H should be the first row inside the border, got %d", top)
	}
	if bottom != l.box.Bottom()-2 {
		t.Errorf("y = 0 should be the last row inside the border, got %d", bottom)
	}

	if _, _, ok := l.project(grid.Position{X: 11, Y: 0}); ok {
		t.Error("positions past the wall should not project")
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		size Size
		want rune
	}{
		{HeadSize, '█'},
		{SegmentSize, '▓'},
		{FoodSize, '█'},
		{Square(0.3), '░'},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.size); got != tt.want {
			t.Errorf("glyphFor(%v) = %q, expected %q", tt.size, got, tt.want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultSnakeConfig())
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}
