package snake

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant selects the arena the game is played on.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantLarge   Variant = "snake_large"
)

// Package-level defaults applied to every new game (set once by the CLI).
var (
	defaultsMu    sync.RWMutex
	defaultConfig = config.DefaultSnakeConfig()
	defaultLogger *log.Logger
)

// SetConfig sets the configuration new games are created with.
func SetConfig(cfg config.SnakeConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultConfig = cfg
}

// SetLogger sets the logger new games report resets and spawns to.
func SetLogger(l *log.Logger) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLogger = l
}

func defaults() (config.SnakeConfig, *log.Logger) {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultConfig, defaultLogger
}

// Game adapts State to the registry.Game interface.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	logger  *log.Logger

	state *State
	dt    time.Duration
}

// New creates a snake game on the configured arena.
func New() *Game {
	return newVariant(VariantClassic)
}

// NewLarge creates a snake game on an arena twice the configured size.
func NewLarge() *Game {
	return newVariant(VariantLarge)
}

func newVariant(v Variant) *Game {
	cfg, logger := defaults()
	return NewWithConfig(v, cfg).WithLogger(logger)
}

// NewWithConfig creates a game of the given variant with an explicit configuration.
func NewWithConfig(v Variant, cfg config.SnakeConfig) *Game {
	if v == VariantLarge {
		cfg.Arena.Width *= 2
		cfg.Arena.Height *= 2
	}
	return &Game{
		variant: v,
		cfg:     cfg,
	}
}

// WithLogger sets the logger and returns the game for chaining.
func (g *Game) WithLogger(l *log.Logger) *Game {
	g.logger = l
	return g
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantLarge), func() registry.Game {
		return NewLarge()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLarge {
		return "Snake (Large)"
	}
	return "Snake"
}

// Reset starts a new session. The tick rate fixes how much game time one
// Step represents.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := OptionsFromConfig(g.cfg, cfg.Seed)
	opts.Logger = g.logger
	g.state = NewState(opts)
	g.dt = cfg.FrameDuration()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}
	events := g.state.Frame(g.dt, in)
	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Length: len(g.state.chain),
		Food:   len(g.state.entitiesOf(KindFood)),
		Frame:  g.state.Frames(),
		Resets: g.state.Resets(),
	}
}

// Snake exposes the underlying state machine.
func (g *Game) Snake() *State {
	return g.state
}
