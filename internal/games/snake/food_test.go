package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

func foodOptions(arena grid.Arena) Options {
	opts := testOptions()
	opts.Arena = arena
	opts.MoveInterval = 0
	opts.FoodInterval = time.Second
	return opts
}

func TestFoodSpawnerIsTimeGated(t *testing.T) {
	s := NewState(foodOptions(grid.Arena{Width: 10, Height: 10}))

	s.Frame(999*time.Millisecond, nil)
	if len(s.Food()) != 0 {
		t.Fatalf("food spawned before the interval: %v", s.Food())
	}

	s.Frame(time.Millisecond, nil)
	if len(s.Food()) != 1 {
		t.Fatalf("expected one food after 1s, got %v", s.Food())
	}
}

func TestFoodAccumulates(t *testing.T) {
	s := NewState(foodOptions(grid.Arena{Width: 10, Height: 10}))

	s.Frame(time.Second, nil)
	s.Frame(time.Second, nil)

	food := s.Food()
	if len(food) != 2 {
		t.Fatalf("expected two coexisting foods, got %v", food)
	}
	for _, f := range food {
		if !s.Arena().Contains(f) {
			t.Errorf("food %v outside the arena", f)
		}
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		opts := foodOptions(grid.Arena{Width: 3, Height: 2})
		opts.Seed = seed
		s := NewState(opts)
		setChain(s, grid.Up, false,
			grid.Position{X: 0, Y: 0},
			grid.Position{X: 1, Y: 0},
			grid.Position{X: 2, Y: 0},
			grid.Position{X: 2, Y: 1},
		)

		for i := 0; i < 10; i++ {
			s.Frame(time.Second, nil)
		}

		for _, f := range s.Food() {
			if f != (grid.Position{X: 0, Y: 1}) && f != (grid.Position{X: 1, Y: 1}) {
				t.Fatalf("seed %d: food at occupied or invalid cell %v", seed, f)
			}
		}
	}
}

func TestFoodMayStack(t *testing.T) {
	s := NewState(foodOptions(grid.Arena{Width: 3, Height: 1}))
	setChain(s, grid.Up, false,
		grid.Position{X: 0, Y: 0},
		grid.Position{X: 1, Y: 0},
	)

	s.Frame(time.Second, nil)
	s.Frame(time.Second, nil)

	food := s.Food()
	if len(food) != 2 {
		t.Fatalf("expected two foods, got %v", food)
	}
	for _, f := range food {
		if f != (grid.Position{X: 2, Y: 0}) {
			t.Errorf("food at %v, expected the only free cell (2,0)", f)
		}
	}
}

func TestFoodSkippedWhenArenaFull(t *testing.T) {
	s := NewState(foodOptions(grid.Arena{Width: 2, Height: 1}))
	setChain(s, grid.Up, false,
		grid.Position{X: 0, Y: 0},
		grid.Position{X: 1, Y: 0},
	)

	if s.spawnFood() {
		t.Error("spawnFood() should report false on a full arena")
	}
	s.Frame(time.Second, nil)

	if len(s.Food()) != 0 {
		t.Errorf("no food expected on a full arena, got %v", s.Food())
	}
}

func TestFoodSpawnIsUniform(t *testing.T) {
	const spawns = 12000
	s := NewState(foodOptions(grid.Arena{Width: 3, Height: 2}))
	setChain(s, grid.Up, false,
		grid.Position{X: 0, Y: 0},
		grid.Position{X: 1, Y: 0},
	)

	for i := 0; i < spawns; i++ {
		if !s.spawnFood() {
			t.Fatalf("spawn %d found no free cell", i)
		}
	}

	counts := make(map[grid.Position]int)
	for _, f := range s.Food() {
		counts[f]++
	}
	free := []grid.Position{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}}
	if len(counts) != len(free) {
		t.Fatalf("food landed on %d cells, expected the %d free ones: %v", len(counts), len(free), counts)
	}

	// Each free cell expects spawns/4 = 3000 hits with a standard deviation near 47.
	expected := spawns / len(free)
	for _, c := range free {
		if n := counts[c]; n < expected*9/10 || n > expected*11/10 {
			t.Errorf("cell %v got %d spawns, expected about %d", c, n, expected)
		}
	}
}

func TestFreeCellsOrder(t *testing.T) {
	s := NewState(foodOptions(grid.Arena{Width: 2, Height: 2}))
	setChain(s, grid.Up, false,
		grid.Position{X: 0, Y: 1},
		grid.Position{X: 1, Y: 1},
	)

	got := s.freeCells()
	want := []grid.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("freeCells() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("freeCells()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestFoodSpawnDeterministic(t *testing.T) {
	a := NewState(foodOptions(grid.Arena{Width: 10, Height: 10}))
	b := NewState(foodOptions(grid.Arena{Width: 10, Height: 10}))

	for i := 0; i < 20; i++ {
		a.Frame(time.Second, nil)
		b.Frame(time.Second, nil)
	}

	fa, fb := a.Food(), b.Food()
	if len(fa) != len(fb) {
		t.Fatalf("food count mismatch: %d vs %d", len(fa), len(fb))
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Errorf("food[%d] mismatch: %v vs %v", i, fa[i], fb[i])
		}
	}
}
