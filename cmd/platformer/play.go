package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRemote     string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level",
	Long: `Start a run of the level.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (Space or Enter also starts)
  P/Esc            - Pause / resume
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, 500 seconds
  normal - lives and time from the config
  hard   - 2 lives, 300 seconds

Remote controllers connect to ws://<host><addr>/ws when --remote is set.

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --config ./my-level.yaml --watch
  platformer play --remote :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagRemote, "remote", "", "Serve WebSocket remote controllers on this address (e.g. :8080)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change; applies on the next restart")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("platformer")
	if err != nil {
		return err
	}
	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch needs --config")
	}
	if err := checkConfig(flagConfig); err != nil {
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

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(platformer.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, runs will not be saved", "error", err)
		store = nil
	}

	opts := []tui.RunOption{tui.WithLogger(logger)}
	if flagRemote != "" {
		opts = append(opts, tui.WithRemote(flagRemote))
	}
	if flagWatch {
		opts = append(opts, tui.WithConfigWatch(flagConfig))
	}

	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
