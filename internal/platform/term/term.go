// Package term runs a game directly on a tcell screen, without Bubble Tea.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options tunes a session.
type Options struct {
	HoldFrames int
	Logger     *log.Logger
	OnStep     func(core.StepResult)
}

// palette maps core colours onto the 256-colour palette.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorGray:          tcell.PaletteColor(245),
	core.ColorDarkGray:      tcell.PaletteColor(240),
}

func styleFor(c core.Color) tcell.Style {
	if fg, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(fg)
	}
	return tcell.StyleDefault
}

// Runner drives one game on one tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	config core.RuntimeConfig
	opts   Options
	buf    *core.Screen
	keys   *core.KeyState
	logger *log.Logger
}

// NewRunner prepares a game for an already initialised screen.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return &Runner{
		screen: screen,
		game:   game,
		config: cfg,
		opts:   opts,
		buf:    core.NewScreen(w, h),
		keys:   core.NewKeyState(opts.HoldFrames),
		logger: logger,
	}
}

// logicalKey maps a tcell key event to a game key.
func logicalKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.KeyArrowLeft
	case tcell.KeyRight:
		return core.KeyArrowRight
	case tcell.KeyUp:
		return core.KeyArrowUp
	case tcell.KeyDown:
		return core.KeyArrowDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return core.KeyA
		case 'd', 'D':
			return core.KeyD
		case 'w', 'W':
			return core.KeyW
		case 's', 'S':
			return core.KeyS
		}
	}
	return core.KeyNone
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// HandleEvent applies one terminal event. It returns false on a quit request.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		r.keys.Press(logicalKey(ev))

	case *tcell.EventResize:
		w, h := ev.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		r.screen.Sync()
	}
	return true
}

// Step advances the game by one frame.
func (r *Runner) Step() core.StepResult {
	result := r.game.Step(r.keys.Frame())
	r.keys.Advance()

	if len(result.Events) > 0 {
		r.logger.Debug("frame events", "frame", result.State.Frame, "events", result.Events)
	}
	if r.opts.OnStep != nil {
		r.opts.OnStep(result)
	}
	return result
}

// Draw renders the game and copies the buffer to the terminal.
func (r *Runner) Draw() {
	r.game.Render(r.buf)
	r.screen.Clear()
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	r.screen.Show()
}

// Loop runs frames until ctx is done or the player quits.
func (r *Runner) Loop(ctx context.Context) error {
	ticker := time.NewTicker(r.config.FrameDuration())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !r.HandleEvent(ev) {
				st := r.game.State()
				r.logger.Info("game ended", "game", r.game.ID(), "frames", st.Frame, "resets", st.Resets)
				return nil
			}
		case <-ticker.C:
			r.Step()
			r.Draw()
		}
	}
}

// Run opens the terminal, plays the game until the player quits and
// restores the terminal.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	r := NewRunner(screen, game, cfg, opts)
	r.logger.Info("game started", "game", game.ID(), "seed", r.config.Seed, "backend", "tcell")
	return r.Loop(ctx)
}
