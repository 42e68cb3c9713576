package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	tcellterm "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: snake).

Controls:
  W/A/S/D      - Steer
  Arrow keys   - Steer
  Ctrl+S       - Save a text screenshot (tea backend)
  Q/Ctrl+C     - Quit

Backends:
  tea    - Bubble Tea with a help line (default)
  tcell  - Plain tcell screen

Examples:
  snake play
  snake play snake_large
  snake play --backend tcell
  snake play --sound --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues on eating and reset")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake list' to see available variants", gameID)
	}
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	// The game owns the terminal, so logs only go somewhere with --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	snakeCfg, err := setupGames(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var onStep func(core.StepResult)
	if flagSound {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: sound disabled: %v\n", err)
		} else {
			defer player.Close()
			onStep = player.HandleStep
		}
	}

	switch flagBackend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = tcellterm.Run(ctx, game, cfg, tcellterm.Options{
			HoldFrames: snakeCfg.Input.HoldFrames,
			Logger:     logger,
			OnStep:     onStep,
		})
	default:
		err = tui.Run(game, cfg, tui.Options{
			HoldFrames: snakeCfg.Input.HoldFrames,
			Logger:     logger,
			OnStep:     onStep,
		})
	}

	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
