package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagFrames int
	flagKeys   string
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless simulation",
	Long: `Run a game without a terminal for a fixed number of frames and print
the final state as YAML. With the same seed, fps, config and key schedule
the output is identical between runs.

The key schedule is a comma separated list of frame:key pairs. Keys are
a, d, w, s (letters) or left, right, up, down (arrows). A pressed key is
held for the configured hold_frames.

Examples:
  snake sim --frames 600
  snake sim --seed 7 --frames 1200 --keys "30:right,90:down,150:left"
  snake sim snake_large --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", `Key schedule, e.g. "12:up,40:left"`)
}

// keyNames maps schedule names to logical keys.
var keyNames = map[string]core.Key{
	"a":     core.KeyA,
	"d":     core.KeyD,
	"w":     core.KeyW,
	"s":     core.KeyS,
	"left":  core.KeyArrowLeft,
	"right": core.KeyArrowRight,
	"up":    core.KeyArrowUp,
	"down":  core.KeyArrowDown,
}

type keyPress struct {
	frame uint64
	key   core.Key
}

// parseKeySchedule parses "frame:key,..." into presses ordered by frame.
func parseKeySchedule(s string) ([]keyPress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var presses []keyPress
	for _, item := range strings.Split(s, ",") {
		frameStr, name, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("key schedule: %q is not frame:key", item)
		}
		frame, err := strconv.ParseUint(strings.TrimSpace(frameStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("key schedule: bad frame in %q: %w", item, err)
		}
		key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("key schedule: unknown key %q", name)
		}
		presses = append(presses, keyPress{frame: frame, key: key})
	}

	sort.SliceStable(presses, func(i, j int) bool {
		return presses[i].frame < presses[j].frame
	})
	return presses, nil
}

// simReport is what sim prints.
type simReport struct {
	Game   string          `yaml:"game"`
	Seed   int64           `yaml:"seed"`
	FPS    int             `yaml:"fps"`
	Frames int             `yaml:"frames"`
	Ate    int             `yaml:"ate"`
	Resets int             `yaml:"resets"`
	Final  *snake.Snapshot `yaml:"final,omitempty"`
}

type snapshotter interface {
	Snapshot() snake.Snapshot
}

// simulate runs game for frames frames, pressing keys per the schedule.
func simulate(game registry.Game, cfg core.RuntimeConfig, holdFrames, frames int, presses []keyPress) simReport {
	game.Reset(cfg)
	keys := core.NewKeyState(holdFrames)

	report := simReport{
		Game:   game.ID(),
		Seed:   cfg.Seed,
		FPS:    cfg.TickRate,
		Frames: frames,
	}

	next := 0
	for frame := uint64(0); frame < uint64(frames); frame++ {
		for next < len(presses) && presses[next].frame == frame {
			keys.Press(presses[next].key)
			next++
		}

		result := game.Step(keys.Frame())
		keys.Advance()
		for _, e := range result.Events {
			switch e {
			case core.EventAte:
				report.Ate++
			case core.EventReset:
				report.Resets++
			}
		}
	}

	if s, ok := game.(snapshotter); ok {
		snap := s.Snapshot()
		report.Final = &snap
	}
	return report
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	snakeCfg, err := setupGames(logger)
	if err != nil {
		return err
	}

	presses, err := parseKeySchedule(flagKeys)
	if err != nil {
		return err
	}
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	report := simulate(game, cfg, snakeCfg.Input.HoldFrames, flagFrames, presses)
	logger.Info("simulation finished", "game", gameID, "frames", flagFrames, "resets", report.Resets)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
